package keypad

import (
	"errors"
	"strconv"
)

var (
	// ErrUnavailable is returned by Compute when there is no evaluator to
	// compute with yet.
	ErrUnavailable = errors.New("keypad: evaluator unavailable")
	// ErrNoResult indicates an evaluator that reported success with an empty
	// result.
	ErrNoResult = errors.New("keypad: evaluator gave no result")
)

// EvalError is an error from an evaluator rejecting an expression.
type EvalError struct {
	// Expr is the expression that could not be computed.
	Expr string
	// Err is the evaluator's error.
	Err error
}

func (err *EvalError) Error() string {
	return "computing " + strconv.Quote(err.Expr) + ": " + err.Err.Error()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// KeyError is an error indicating a key that has no action.
type KeyError struct {
	Key rune
}

func (err *KeyError) Error() string {
	return "no action for key " + strconv.QuoteRune(err.Key)
}
