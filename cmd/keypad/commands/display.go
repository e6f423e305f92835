package commands

import (
	"fmt"
	"io"
)

// console is a keypad display for a terminal. Expressions are rendered on
// request so that a line of keys produces one line of output; alerts are
// written immediately.
type console struct {
	w    io.Writer
	expr string
	last string
	// fresh is set when last has not been rendered yet.
	fresh bool
}

func newConsole(w io.Writer) *console {
	return &console{w: w}
}

func (c *console) Show(expr string) {
	c.expr = expr
}

func (c *console) ShowLast(expr string) {
	c.last = expr
	c.fresh = true
}

func (c *console) Alert(err error) {
	fmt.Fprintf(c.w, "! %v\n", err)
}

// render writes the last computation, if it is new, and the expression.
func (c *console) render() {
	if c.fresh {
		fmt.Fprintf(c.w, "  %s =\n", c.last)
		c.fresh = false
	}
	fmt.Fprintln(c.w, c.expr)
}
