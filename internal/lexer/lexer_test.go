package lexer

import (
	"errors"
	"math/big"
	"reflect"
	"testing"
)

func kinds(t *testing.T, src string) []Kind {
	t.Helper()
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", src, err)
	}
	out := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexProgram(t *testing.T) {
	got := kinds(t, "BEGIN a := 2; b := 10 * a + 10 / 5; END.")
	want := []Kind{
		BEGIN, ID, ASSIGN, INTEGER, SEMI,
		ID, ASSIGN, INTEGER, MUL, ID, PLUS, INTEGER, DIV, INTEGER, SEMI,
		END, DOT, EOF,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v\n got %v", want, got)
	}
}

func TestLexArithmetic(t *testing.T) {
	got := kinds(t, " 7 +3*(10/ (12 -\t1))\n")
	want := []Kind{INTEGER, PLUS, INTEGER, MUL, LPAREN, INTEGER, DIV, LPAREN, INTEGER, MINUS, INTEGER, RPAREN, RPAREN, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v\n got %v", want, got)
	}
}

func TestLexPayloads(t *testing.T) {
	toks, err := Lex("x1 := 1234")
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != ID || toks[0].Lit != "x1" {
		t.Errorf("identifier: got %v", toks[0])
	}
	if toks[2].Kind != INTEGER || toks[2].Int.Cmp(big.NewInt(1234)) != 0 {
		t.Errorf("integer: got %v", toks[2])
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks, err := Lex("begin BEGIN End END BEGINx")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: ID, Lit: "begin"},
		{Kind: BEGIN},
		{Kind: ID, Lit: "End"},
		{Kind: END},
		{Kind: ID, Lit: "BEGINx"},
		{Kind: EOF},
	}
	if !reflect.DeepEqual(toks, want) {
		t.Fatalf("want %v\n got %v", want, toks)
	}
}

func TestIdentifierStopsAtNonAlnum(t *testing.T) {
	// underscores are not part of identifiers
	_, err := Lex("a_b")
	var lexErr *Error
	if !errors.As(err, &lexErr) || lexErr.Char != '_' {
		t.Fatalf("expected lex error on '_', got %v", err)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New("1")
	if tok, _ := l.Next(); tok.Kind != INTEGER {
		t.Fatalf("got %v", tok)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil || tok.Kind != EOF {
			t.Fatalf("call %d: got %v, %v", i, tok, err)
		}
	}
}

func TestLexErrors(t *testing.T) {
	for _, src := range []string{"1 @ 2", "a : b", "a :", "#", "x = 1"} {
		_, err := Lex(src)
		var lexErr *Error
		if !errors.As(err, &lexErr) {
			t.Errorf("Lex(%q): expected *Error, got %v", src, err)
		}
	}
}

func TestLargeIntegerLiteral(t *testing.T) {
	src := "123456789012345678901234567890"
	toks, err := Lex(src)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != INTEGER || toks[0].Int.String() != src {
		t.Fatalf("got %v", toks[0])
	}
	if got := toks[0].String(); got != "Token(INTEGER, "+src+")" {
		t.Fatalf("got %s", got)
	}
}

func TestTokenString(t *testing.T) {
	cases := map[string]Token{
		"Token(INTEGER, 3)":     {Kind: INTEGER, Int: big.NewInt(3)},
		"Token(PLUS, '+')":      {Kind: PLUS},
		"Token(ASSIGN, ':=')":   {Kind: ASSIGN},
		"Token(ID, 'alpha')":    {Kind: ID, Lit: "alpha"},
		"Token(BEGIN, 'BEGIN')": {Kind: BEGIN},
		"Token((, '(')":         {Kind: LPAREN},
		"Token(EOF, None)":      {Kind: EOF},
	}
	for want, tok := range cases {
		if got := tok.String(); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}
}
