package arith

import (
	"errors"
	"math/big"
	"strings"
)

// Format writes x in fixed-point notation with at most digits digits after
// the decimal point and no trailing zeros. Negative values are written in the
// negation form (-X) so that the result can be used as an operand in a longer
// expression. Infinities are a *RangeError.
func Format(x *big.Float, digits int) (string, error) {
	if x.IsInf() {
		return "", &RangeError{X: x}
	}
	if digits < 0 {
		digits = 0
	}
	s := x.Text('f', digits)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	m := strings.TrimPrefix(s, "-")
	if m == s || m == "0" {
		return m, nil
	}
	return "(-" + m + ")", nil
}

// Evaluator computes expressions to formatted results. It is not safe to use
// an Evaluator concurrently.
type Evaluator struct {
	ctx    *Context
	digits int
}

// Load creates an Evaluator that computes at prec bits of precision and
// formats results with at most digits fractional digits. It checks that the
// evaluator produces correct results before returning it.
func Load(prec uint, digits int) (*Evaluator, error) {
	if prec == 0 || prec > big.MaxPrec {
		return nil, errors.New("arith: precision out of range")
	}
	if digits < 0 {
		return nil, errors.New("arith: negative digits")
	}
	ev := &Evaluator{ctx: NewContext(Prec(prec)), digits: digits}
	r, err := ev.Evaluate(selfcheck)
	if err != nil {
		return nil, err
	}
	if r != "42" {
		return nil, errors.New("arith: self check " + selfcheck + " gave " + r)
	}
	return ev, nil
}

const selfcheck = "6*7"

// Evaluate parses and computes src, returning the formatted result.
func (ev *Evaluator) Evaluate(src string) (string, error) {
	a, err := ParseString(src)
	if err != nil {
		return "", err
	}
	r := ev.ctx.Eval(a)
	if r == nil {
		return "", ev.ctx.Err()
	}
	return Format(r, ev.digits)
}
