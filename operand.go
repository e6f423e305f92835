package keypad

import "strings"

// Operators are the binary operators the keypad enters.
const Operators = "+-*/"

func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

func endsInOperator(text string) bool {
	return text != "" && strings.IndexByte(Operators, text[len(text)-1]) >= 0
}

// splitOperand splits text after the operator preceding its last operand.
// The scan runs right to left and takes the first *, /, or +, or a - that
// does not follow an open bracket. It does not track bracket depth, so an
// operator inside a bracketed operand can be taken for the split. If there is
// no such operator, the whole text is the operand.
func splitOperand(text string) (before, after string) {
	for i := len(text) - 1; i >= 0; i-- {
		switch text[i] {
		case '*', '/', '+':
			return text[:i+1], text[i+1:]
		case '-':
			if i == 0 || text[i-1] != '(' {
				return text[:i+1], text[i+1:]
			}
		}
	}
	return "", text
}

// toggle negates an operand by wrapping it as (-X), or unwraps it if it is
// already in that form.
func toggle(operand string) string {
	if len(operand) > 3 && strings.HasPrefix(operand, "(-") && strings.HasSuffix(operand, ")") {
		return operand[2 : len(operand)-1]
	}
	return "(-" + operand + ")"
}
