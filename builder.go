package keypad

import (
	"errors"
	"io"
	"log"
	"strings"
)

// Builder assembles an arithmetic expression one key at a time. It is the
// only owner of the expression text. A Builder is not safe to use
// concurrently.
//
// Every input method reports whether it changed the expression. Input that
// would make the expression implausible, like a second operator in a row, is
// ignored and reported as false, with no change and nothing rendered.
type Builder struct {
	// text is the current expression. It is never empty.
	text string
	// last is the expression that produced text by Compute, if any.
	last string
	// hasOp records whether a binary operator has been appended since the
	// last clear. It decides the scope of ToggleSign.
	hasOp bool

	disp Display
	eval Evaluator
	log  *log.Logger
}

// Option is an option used when creating a Builder.
type Option interface {
	builderOption(*Builder)
}

type (
	dispopt struct{ d Display }
	evalopt struct{ e Evaluator }
	logopt  struct{ l *log.Logger }
)

func (o dispopt) builderOption(b *Builder) { b.disp = o.d }
func (o evalopt) builderOption(b *Builder) { b.eval = o.e }
func (o logopt) builderOption(b *Builder)  { b.log = o.l }

// WithDisplay sets the display that renders the expression.
func WithDisplay(d Display) Option {
	return dispopt{d}
}

// WithEvaluator sets the evaluator used by Compute. Without one, Compute
// always declines with ErrUnavailable.
func WithEvaluator(e Evaluator) Option {
	return evalopt{e}
}

// Logger sets the logger for diagnostics. The default discards them.
func Logger(l *log.Logger) Option {
	return logopt{l}
}

// New creates a Builder holding "0" and renders it.
func New(opts ...Option) *Builder {
	b := Builder{text: zero}
	for _, opt := range opts {
		if opt != nil {
			opt.builderOption(&b)
		}
	}
	if b.disp == nil {
		b.disp = nopDisplay{}
	}
	if b.log == nil {
		b.log = log.New(io.Discard, "", 0)
	}
	b.disp.Show(b.text)
	return &b
}

// zero is the text of an empty expression.
const zero = "0"

// Text returns the current expression.
func (b *Builder) Text() string {
	return b.text
}

// Last returns the expression that Compute last replaced with its result, or
// the empty string if nothing has been computed.
func (b *Builder) Last() string {
	return b.last
}

// HasOperator reports whether an operator has been entered since the last
// clear.
func (b *Builder) HasOperator() bool {
	return b.hasOp
}

// State characterizes the current expression.
func (b *Builder) State() State {
	switch {
	case b.text == zero:
		return Zero
	case endsInOperator(b.text):
		return PendingOperator
	default:
		return Operand
	}
}

// set replaces the expression and renders it.
func (b *Builder) set(text string) bool {
	b.text = text
	b.disp.Show(text)
	return true
}

// Clear resets the expression to "0" and forgets any operators. It always
// changes the expression.
func (b *Builder) Clear() bool {
	b.hasOp = false
	return b.set(zero)
}

// Press enters a decimal digit. A digit replaces the expression "0" instead
// of following it. Values outside 0 to 9 are ignored.
func (b *Builder) Press(digit int) bool {
	if digit < 0 || digit > 9 {
		return false
	}
	d := string(rune('0' + digit))
	if b.text == zero {
		return b.set(d)
	}
	return b.set(b.text + d)
}

// Operator enters one of the binary operators + - * /. It is ignored if the
// expression already ends in an operator.
func (b *Builder) Operator(op rune) bool {
	if !isOperator(op) || endsInOperator(b.text) {
		return false
	}
	b.hasOp = true
	return b.set(b.text + string(op))
}

// ToggleSign negates the expression, or only its last operand once an
// operator has been entered. Negation wraps the operand as (-X); toggling a
// wrapped operand unwraps it. It is ignored for "0" and when the expression
// ends in an operator. After Compute, a result with no operator in it is
// toggled as a whole.
func (b *Builder) ToggleSign() bool {
	if b.text == zero || endsInOperator(b.text) {
		return false
	}
	if !b.hasOp {
		return b.set(toggle(b.text))
	}
	before, after := splitOperand(b.text)
	return b.set(before + toggle(after))
}

// Point enters a decimal point in the last operand. After an operator it
// enters "0.". It is ignored if the operand already has a point or is a
// complete negation.
func (b *Builder) Point() bool {
	if endsInOperator(b.text) {
		return b.set(b.text + "0.")
	}
	_, after := splitOperand(b.text)
	if strings.ContainsRune(after, '.') || strings.HasSuffix(after, ")") {
		return false
	}
	return b.set(b.text + ".")
}

// Compute evaluates the expression. On success, the result replaces the
// expression and the old expression becomes Last. If the evaluator rejects
// the expression, the display is alerted, the expression is unchanged, and
// the returned error is an *EvalError. If no evaluator is available yet, the
// result is ErrUnavailable and nothing else happens.
func (b *Builder) Compute() error {
	if b.eval == nil {
		b.log.Print("compute: no evaluator")
		return ErrUnavailable
	}
	r, err := b.eval.Evaluate(b.text)
	if errors.Is(err, ErrUnavailable) {
		b.log.Printf("compute %q: evaluator not loaded yet", b.text)
		return err
	}
	if err == nil && r == "" {
		err = ErrNoResult
	}
	if err != nil {
		err = &EvalError{Expr: b.text, Err: err}
		b.disp.Alert(err)
		return err
	}
	b.last = b.text
	b.disp.ShowLast(b.last)
	b.set(r)
	return nil
}

// State is a characterization of an expression's text.
type State int

//go:generate go run golang.org/x/tools/cmd/stringer -type=State

const (
	// Zero is the empty expression "0".
	Zero State = iota
	// Operand is an expression that can be followed by an operator.
	Operand
	// PendingOperator is an expression ending in an operator, waiting for
	// its right operand.
	PendingOperator
)
