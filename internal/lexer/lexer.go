package lexer

import (
	"fmt"
	"math/big"
	"unicode"
	"unicode/utf8"
)

// Error reports an input character that cannot start any token.
type Error struct {
	Char rune
}

func (e *Error) Error() string { return fmt.Sprintf("invalid character %q", e.Char) }

// Lexer produces tokens on demand from a source string.
type Lexer struct {
	src string
	pos int
	ch  rune // rune at pos, or -1 at end of input
	w   int
}

func New(src string) *Lexer {
	l := &Lexer{src: src}
	l.read()
	return l
}

func (l *Lexer) read() {
	if l.pos >= len(l.src) {
		l.ch, l.w = -1, 0
		return
	}
	l.ch, l.w = utf8.DecodeRuneInString(l.src[l.pos:])
}

func (l *Lexer) advance() {
	l.pos += l.w
	l.read()
}

// peek returns the rune after the current one without consuming anything.
func (l *Lexer) peek() rune {
	j := l.pos + l.w
	if j >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[j:])
	return r
}

// Next returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) Next() (Token, error) {
	for l.ch >= 0 && unicode.IsSpace(l.ch) {
		l.advance()
	}
	if l.ch < 0 {
		return Token{Kind: EOF}, nil
	}

	ch := l.ch

	if unicode.IsLetter(ch) {
		start := l.pos
		for l.ch >= 0 && (unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch)) {
			l.advance()
		}
		word := l.src[start:l.pos]
		if k, ok := keywords[word]; ok {
			return Token{Kind: k}, nil
		}
		return Token{Kind: ID, Lit: word}, nil
	}

	if isDigit(ch) {
		start := l.pos
		for isDigit(l.ch) {
			l.advance()
		}
		n, _ := new(big.Int).SetString(l.src[start:l.pos], 10)
		return Token{Kind: INTEGER, Int: n}, nil
	}

	if ch == ':' && l.peek() == '=' {
		l.advance()
		l.advance()
		return Token{Kind: ASSIGN}, nil
	}

	var k Kind
	switch ch {
	case ';':
		k = SEMI
	case '.':
		k = DOT
	case '+':
		k = PLUS
	case '-':
		k = MINUS
	case '*':
		k = MUL
	case '/':
		k = DIV
	case '(':
		k = LPAREN
	case ')':
		k = RPAREN
	default:
		return Token{}, &Error{Char: ch}
	}
	l.advance()
	return Token{Kind: k}, nil
}

// Lex tokenizes the whole source, including the trailing EOF token.
func Lex(src string) ([]Token, error) {
	l := New(src)
	var out []Token
	for {
		t, err := l.Next()
		if err != nil {
			return out, err
		}
		out = append(out, t)
		if t.Kind == EOF {
			return out, nil
		}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
