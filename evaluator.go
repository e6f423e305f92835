package keypad

import (
	"context"
	"errors"
	"sync/atomic"
)

// Evaluator computes the value of an expression. The result is the text of
// the value, which becomes the new expression. An evaluator signals any
// failure, from a malformed expression to an unrepresentable value, with a
// non-nil error.
type Evaluator interface {
	Evaluate(expr string) (string, error)
}

// EvaluatorFunc adapts a function to an Evaluator.
type EvaluatorFunc func(expr string) (string, error)

// Evaluate returns f(expr).
func (f EvaluatorFunc) Evaluate(expr string) (string, error) {
	return f(expr)
}

// Deferred is an Evaluator that becomes available once it is resolved,
// typically by loading the real evaluator in the background at startup.
// Until then, Evaluate returns ErrUnavailable. Resolve and Evaluate may be
// called concurrently. A Deferred must be created with NewDeferred.
type Deferred struct {
	ev    atomic.Pointer[resolved]
	ready chan struct{}
}

type resolved struct {
	e Evaluator
}

// NewDeferred creates an unresolved Deferred.
func NewDeferred() *Deferred {
	return &Deferred{ready: make(chan struct{})}
}

// Resolve calls load and, if it succeeds, makes its evaluator available.
// It returns load's error without making anything available. Panics if d has
// already been resolved.
func (d *Deferred) Resolve(load func() (Evaluator, error)) error {
	if d.ready == nil {
		panic("keypad: Resolve on Deferred not created by NewDeferred")
	}
	e, err := load()
	if err != nil {
		return err
	}
	if e == nil {
		return errors.New("keypad: loader returned no evaluator")
	}
	if !d.ev.CompareAndSwap(nil, &resolved{e}) {
		panic("keypad: Deferred resolved twice")
	}
	close(d.ready)
	return nil
}

// Ready reports whether d has been resolved.
func (d *Deferred) Ready() bool {
	return d.ev.Load() != nil
}

// Wait blocks until d is resolved or ctx is done.
func (d *Deferred) Wait(ctx context.Context) error {
	select {
	case <-d.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Evaluate evaluates expr with the resolved evaluator, or returns
// ErrUnavailable if d is not resolved yet.
func (d *Deferred) Evaluate(expr string) (string, error) {
	r := d.ev.Load()
	if r == nil {
		return "", ErrUnavailable
	}
	return r.e.Evaluate(expr)
}
