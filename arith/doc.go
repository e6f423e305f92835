// Package arith implements the arbitrary-precision evaluator behind the keypad.
//
// Expressions are numbers joined by + - * / and ^, with round brackets for
// grouping and unary + and - where an operand is expected. The keypad's
// negation form "(-5)" is just a bracketed unary minus. Terms must be joined
// by an operator; "(-5)3" is an error rather than a multiplication.
//
// Results are formatted by Format so that they can be fed back into the
// keypad as the start of a new expression.
package arith
