package keypad

// Display renders a Builder's state. A Builder calls its display after every
// change; the display never reads back from it.
type Display interface {
	// Show renders the current expression.
	Show(expr string)
	// ShowLast renders the expression whose result is now shown.
	ShowLast(expr string)
	// Alert tells the user that an expression could not be computed.
	Alert(err error)
}

type nopDisplay struct{}

func (nopDisplay) Show(string)     {}
func (nopDisplay) ShowLast(string) {}
func (nopDisplay) Alert(error)     {}
