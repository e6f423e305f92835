package keypad

import "unicode"

// Key applies the action bound to a key and reports whether the expression
// changed. Digits, operators (including × and ÷), n ~ ± for sign, . or , for
// the decimal point, c or C to clear, and = to compute are bound. Whitespace
// is ignored. Any other key is a *KeyError.
//
// Errors from computing are not returned; the display has already been
// alerted or the computation silently declined.
func (b *Builder) Key(r rune) (bool, error) {
	switch {
	case '0' <= r && r <= '9':
		return b.Press(int(r - '0')), nil
	case isOperator(r):
		return b.Operator(r), nil
	case unicode.IsSpace(r):
		return false, nil
	}
	switch r {
	case '×':
		return b.Operator('*'), nil
	case '÷':
		return b.Operator('/'), nil
	case 'n', '~', '±':
		return b.ToggleSign(), nil
	case '.', ',':
		return b.Point(), nil
	case 'c', 'C':
		return b.Clear(), nil
	case '=':
		return b.Compute() == nil, nil
	default:
		return false, &KeyError{Key: r}
	}
}

// Keys applies each key in s in order. It stops at the first key with no
// action and returns its error.
func (b *Builder) Keys(s string) error {
	for _, r := range s {
		if _, err := b.Key(r); err != nil {
			return err
		}
	}
	return nil
}
