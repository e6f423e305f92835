package arith

import (
	"math/big"
	"strconv"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid rune, or the whole number token if the number is
	// malformed.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the column just past the invalid text.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not
// understood by the parser in its position, e.g. the second / in 5//. It
// implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets. Exactly one of
// Left and Right is set. It implements InputError.
type BracketError struct {
	// Col is the position of the token where the imbalance was found.
	Col int
	// Left is the unclosed opening bracket.
	Left string
	// Right is the unopened closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, such as
// the end of 5+ or the inside of (). It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string for
	// the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operand that follows another with no
// operator between them. It implements InputError.
type OperandError struct {
	// Col is the position of the second operand.
	Col int
	// Text is the token starting the second operand.
	Text string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OperandError)(nil)
)

// DomainError is an error returned when an operator is applied to arguments
// outside its domain, like division by zero.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Op is the operator.
	Op string
}

func (err DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Op
}

// RangeError is an error indicating a result that cannot be written as a
// finite decimal.
type RangeError struct {
	X *big.Float
}

func (err *RangeError) Error() string {
	return "result out of range: " + err.X.String()
}
