package arith

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^×÷"

// Open and Close are the grouping brackets.
const (
	Open  = '('
	Close = ')'
)

// lexer splits a rune stream into tokens, with one token of pushback.
type lexer struct {
	src io.RuneScanner
	// col is the column of the next rune, counting from 1.
	col  int
	back lexToken
	done bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src, col: 1}
}

// push returns a token to the stream so that next returns it again. Panics if
// a token is already pushed.
func (l *lexer) push(tok lexToken) {
	if l.back.kind != tokenNone {
		panic("arith: double push")
	}
	l.back = tok
}

// must takes back the pushed token. Panics if there is none.
func (l *lexer) must() lexToken {
	tok := l.back
	if tok.kind == tokenNone {
		panic("arith: no pushed token")
	}
	l.back = lexToken{}
	return tok
}

// next scans the next token. The end of input is an EOF token once; after
// that, unless the EOF token is pushed back, next returns io.EOF. On a
// *LexError, the returned token has only its position set, and scanning
// resumes after the invalid text.
func (l *lexer) next() (lexToken, error) {
	if l.back.kind != tokenNone {
		return l.must(), nil
	}
	if l.done {
		return lexToken{}, io.EOF
	}
	for {
		tok := lexToken{pos: l.col}
		r, _, err := l.src.ReadRune()
		switch {
		case errors.Is(err, io.EOF):
			l.done = true
			tok.kind = tokenEOF
			return tok, nil
		case err != nil:
			return tok, err
		}
		l.col++
		switch {
		case unicode.IsSpace(r):
			continue
		case r == Open:
			tok.kind = tokenOpen
		case r == Close:
			tok.kind = tokenClose
		case strings.ContainsRune(Operators, r):
			tok.kind = tokenOp
		case '0' <= r && r <= '9', r == '.':
			return l.number(tok, r)
		default:
			return tok, &LexError{Text: string(r), Col: l.col}
		}
		tok.text = string(r)
		return tok, nil
	}
}

// numRE matches decimal numbers with an optional exponent.
var numRE = regexp.MustCompile(`^(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// number scans the remainder of a number token that begins with first. The
// token runs to the next space, bracket, or operator, except that a sign
// directly after an exponent marker belongs to the number.
func (l *lexer) number(tok lexToken, first rune) (lexToken, error) {
	var b strings.Builder
	b.WriteRune(first)
	prev := first
	for {
		r, _, err := l.src.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return lexToken{pos: tok.pos}, err
		}
		sign := (r == '+' || r == '-') && (prev == 'e' || prev == 'E')
		if !sign && delimits(r) {
			if err := l.src.UnreadRune(); err != nil {
				return lexToken{pos: tok.pos}, err
			}
			break
		}
		b.WriteRune(r)
		l.col++
		prev = r
	}
	s := b.String()
	if !numRE.MatchString(s) {
		return lexToken{pos: tok.pos}, &LexError{Text: s, Kind: "number", Col: l.col}
	}
	tok.kind, tok.text = tokenNum, s
	return tok, nil
}

// delimits reports whether r ends a number.
func delimits(r rune) bool {
	return unicode.IsSpace(r) || r == Open || r == Close || strings.ContainsRune(Operators, r)
}
