package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"spi/internal/interp"
)

type scriptedInput struct {
	lines   []string
	history []string
}

func (s *scriptedInput) Prompt(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func (s *scriptedInput) AppendHistory(item string) { s.history = append(s.history, item) }

func newTestREPL(lines ...string) (*repl, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	r := &repl{
		in:     &scriptedInput{lines: lines},
		out:    &out,
		errOut: &errOut,
		prompt: "spi> ",
		sess:   interp.NewSession(interp.ModeAuto),
	}
	return r, &out, &errOut
}

func TestREPLSession(t *testing.T) {
	r, out, errOut := newTestREPL(
		"BEGIN a := 2; b := 10 * a + 10 / 5; END.",
		"",
		"a + b",
		"7 / 2",
		"BEGIN x := y END.",
		"1 / 0",
		"BEGIN a := 1 END",
		"a",
		":env",
	)
	r.loop()

	wantOut := "24\n3.5\n2\na = 2\nb = 22\n\n"
	if out.String() != wantOut {
		t.Errorf("stdout:\n%q\nwant:\n%q", out.String(), wantOut)
	}
	for _, want := range []string{"[undefined variable]", "[arithmetic error]", "[syntax error]"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %s:\n%s", want, errOut.String())
		}
	}
	if n := len(r.in.(*scriptedInput).history); n != 8 {
		t.Errorf("history has %d entries", n)
	}
}

func TestREPLCommands(t *testing.T) {
	r, out, errOut := newTestREPL(
		":mode program",
		"1 + 1",
		":mode expr",
		"1 + 1",
		":mode",
		":mode lisp",
		"BEGIN k := 1 END.",
		":mode auto",
		"BEGIN k := 1 END.",
		":reset",
		":env",
		":bogus",
		":quit",
		"99",
	)
	r.loop()

	if got, want := out.String(), "2\nmode is expr\n"; got != want {
		t.Errorf("stdout %q, want %q", got, want)
	}
	if r.sess.Env().Len() != 0 {
		t.Errorf("reset left %v", r.sess.Env().Names())
	}
	for _, want := range []string{"[syntax error]", "unknown mode", "unknown command :bogus"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
}

func TestRunSource(t *testing.T) {
	var buf bytes.Buffer
	if err := runSource(&buf, "7 + 3 * (10 / (12 / (3 + 1) - 1))", interp.ModeAuto); err != nil {
		t.Fatal(err)
	}
	if err := runSource(&buf, "BEGIN\n  a := 1;\n  b := a\nEND.\n", interp.ModeAuto); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "22\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPrintTokens(t *testing.T) {
	var buf bytes.Buffer
	if err := printTokens(&buf, "BEGIN x := 12 END."); err != nil {
		t.Fatal(err)
	}
	want := `{"type":"BEGIN","value":"BEGIN"}
{"type":"ID","value":"x"}
{"type":"ASSIGN","value":":="}
{"type":"INTEGER","value":"12"}
{"type":"END","value":"END"}
{"type":"DOT","value":"."}
{"type":"EOF","value":""}
`
	if buf.String() != want {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestPrintAST(t *testing.T) {
	var buf bytes.Buffer
	if err := printAST(&buf, "-1", interp.ModeAuto); err != nil {
		t.Fatal(err)
	}
	want := `{
  "operator": "-",
  "operand": {
    "type": "Num",
    "value": 1
  },
  "type": "UnaryOp"
}
`
	if buf.String() != want {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestRunExitCodes(t *testing.T) {
	t.Setenv("SPI_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	color.NoColor = true

	dir := t.TempDir()
	good := filepath.Join(dir, "good.pas")
	bad := filepath.Join(dir, "bad.pas")
	if err := os.WriteFile(good, []byte("BEGIN a := 1 END."), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("BEGIN a := 1 END"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		args []string
		want int
	}{
		{[]string{"spi", "-n", "-e", "1 + 1"}, 0},
		{[]string{"spi", "-n", "-e", "1 / 0"}, 1},
		{[]string{"spi", "-m", "expr", "-e", "BEGIN END."}, 1},
		{[]string{"spi", "-m", "cobol", "-e", "1"}, 2},
		{[]string{"spi", "-x"}, 2},
		{[]string{"spi", good}, 0},
		{[]string{"spi", "run", bad}, 1},
		{[]string{"spi", "tokens"}, 2},
		{[]string{"spi", filepath.Join(dir, "missing.pas")}, 1},
		{[]string{"spi", "-c", filepath.Join(dir, "missing.yaml"), "-e", "1"}, 2},
	}
	for _, c := range cases {
		if got := run(c.args); got != c.want {
			t.Errorf("run(%v) = %d, want %d", c.args, got, c.want)
		}
	}
}
