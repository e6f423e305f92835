package arith

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("arith: unknown option type")
		}
	}
	return &ctx
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero, then the result is nil and ctx.Err returns the
// error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		// The previous result belongs to the caller now.
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("arith: Eval during Eval")
	}
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Returns
// nil if an error occurred during evaluation. Panics if ctx has not been used
// to evaluate an expression.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("arith: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error from the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		r = new(big.Float).SetInf(false)
	default:
		panic("arith: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push().Set(ctx.num(n.num))
		return nil
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
		return nil
	case nodeNop:
		return n.left.eval(ctx)
	case nodeNone:
		panic("arith: invalid AST node " + n.kind.String())
	}
	if err := n.left.eval(ctx); err != nil {
		return err
	}
	if err := n.right.eval(ctx); err != nil {
		return err
	}
	r := ctx.pop()
	l := ctx.top()
	switch n.kind {
	case nodeAdd:
		if l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit() {
			return DomainError{X: r, Op: "+"}
		}
		l.Add(l, r)
	case nodeSub:
		if l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit() {
			return DomainError{X: r, Op: "-"}
		}
		l.Sub(l, r)
	case nodeMul:
		if l.IsInf() && r.Sign() == 0 || l.Sign() == 0 && r.IsInf() {
			return DomainError{X: r, Op: "*"}
		}
		l.Mul(l, r)
	case nodeDiv:
		if r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return DomainError{X: r, Op: "/"}
		}
		l.Quo(l, r)
	case nodePow:
		return pow(l, l, r)
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
	return nil
}

// pow sets z to x^y. x and z may alias.
func pow(z, x, y *big.Float) (err error) {
	switch {
	case x.IsInf() || y.IsInf():
		return DomainError{X: x, Op: "^"}
	case y.Sign() == 0:
		z.SetInt64(1)
		return nil
	case x.Sign() == 0:
		if y.Signbit() {
			return DomainError{X: x, Op: "^"}
		}
		z.SetInt64(0)
		return nil
	}
	neg := false
	base := new(big.Float).SetPrec(z.Prec()).Abs(x)
	if x.Signbit() {
		// A negative base needs an integer exponent.
		if !y.IsInt() {
			return DomainError{X: x, Op: "^"}
		}
		k, _ := y.Int(nil)
		neg = k.Bit(0) == 1
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, _ := r.(error)
		if errors.As(e, &big.ErrNaN{}) {
			err = DomainError{X: x, Op: "^"}
			return
		}
		panic(r)
	}()
	// Pow doesn't always write its result to its first argument.
	z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), base, y))
	if neg {
		z.Neg(z)
	}
	return nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (*big.Float, error) {
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	if r := ctx.Eval(a); r != nil {
		return r, nil
	}
	return nil, ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}
