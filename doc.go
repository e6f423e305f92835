// Package keypad implements the expression entry of a pocket calculator.
//
// A Builder holds the expression typed so far and applies one rule per key:
// digits append, operators append unless one is already pending, the sign key
// wraps the expression or its last operand as "(-X)" and unwraps it again,
// and compute hands the expression to an Evaluator and replaces it with the
// result. Keys that would break the expression are silently ignored.
//
// The Evaluator may be loaded after the Builder starts taking input. A
// Deferred stands in for it until then, and computing before it is resolved
// does nothing.
package keypad
