package lexer

import (
	"fmt"
	"math/big"
)

type Kind int

const (
	EOF Kind = iota
	INTEGER
	PLUS
	MINUS
	MUL
	DIV
	LPAREN
	RPAREN
	BEGIN
	END
	ASSIGN
	SEMI
	DOT
	ID
)

var kindNames = [...]string{
	EOF:     "EOF",
	INTEGER: "INTEGER",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	MUL:     "MUL",
	DIV:     "DIV",
	LPAREN:  "(",
	RPAREN:  ")",
	BEGIN:   "BEGIN",
	END:     "END",
	ASSIGN:  "ASSIGN",
	SEMI:    "SEMI",
	DOT:     "DOT",
	ID:      "ID",
}

// lexemes for tokens whose text is fixed by their kind
var kindText = [...]string{
	PLUS:   "+",
	MINUS:  "-",
	MUL:    "*",
	DIV:    "/",
	LPAREN: "(",
	RPAREN: ")",
	BEGIN:  "BEGIN",
	END:    "END",
	ASSIGN: ":=",
	SEMI:   ";",
	DOT:    ".",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

var keywords = map[string]Kind{
	"BEGIN": BEGIN,
	"END":   END,
}

// Token is one lexical unit. Int is set only for INTEGER and Lit only for ID.
type Token struct {
	Kind Kind
	Lit  string
	Int  *big.Int
}

// Text returns the source form of the token.
func (t Token) Text() string {
	switch t.Kind {
	case INTEGER:
		return t.Int.String()
	case ID:
		return t.Lit
	case EOF:
		return ""
	}
	return kindText[t.Kind]
}

// String renders the token as Token(INTEGER, 3) or Token(PLUS, '+').
func (t Token) String() string {
	switch t.Kind {
	case INTEGER:
		return fmt.Sprintf("Token(%s, %s)", t.Kind, t.Int)
	case EOF:
		return "Token(EOF, None)"
	}
	return fmt.Sprintf("Token(%s, '%s')", t.Kind, t.Text())
}
