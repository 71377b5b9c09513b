// Package interp ties the lexer, parser and evaluator into one call per input.
package interp

import (
	"errors"
	"fmt"

	"fortio.org/log"

	"spi/internal/evaluator"
	"spi/internal/lexer"
	"spi/internal/parser"
)

// Mode selects which grammar an input is parsed with.
type Mode int

const (
	ModeAuto Mode = iota
	ModeExpr
	ModeProgram
)

var modeNames = map[Mode]string{
	ModeAuto:    "auto",
	ModeExpr:    "expr",
	ModeProgram: "program",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown mode %q (want auto, expr or program)", s)
}

// Resolve picks a concrete dialect for src. Auto chooses the statement
// dialect when the first token is BEGIN and the expression dialect otherwise.
func Resolve(src string, m Mode) Mode {
	if m != ModeAuto {
		return m
	}
	t, err := lexer.New(src).Next()
	if err == nil && t.Kind == lexer.BEGIN {
		return ModeProgram
	}
	return ModeExpr
}

// Run parses src in the given mode and evaluates it against env. The
// expression dialect returns its value; the statement dialect returns nil.
// Nothing is evaluated unless the whole input parses.
func Run(src string, env *evaluator.Env, mode Mode) (evaluator.Value, error) {
	mode = Resolve(src, mode)
	log.Debugf("run %s: %q", mode, src)
	ev := evaluator.New(env)
	switch mode {
	case ModeExpr:
		node, err := parser.ParseExpr(src)
		if err != nil {
			return nil, err
		}
		return ev.Eval(node)
	case ModeProgram:
		prog, err := parser.Parse(src)
		if err != nil {
			return nil, err
		}
		_, err = ev.Eval(prog)
		return nil, err
	}
	return nil, fmt.Errorf("unsupported mode %s", mode)
}

// Kind classifies a pipeline error.
type Kind int

const (
	KindNone Kind = iota
	KindLex
	KindSyntax
	KindUndefined
	KindArithmetic
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex error"
	case KindSyntax:
		return "syntax error"
	case KindUndefined:
		return "undefined variable"
	case KindArithmetic:
		return "arithmetic error"
	case KindInternal:
		return "internal error"
	}
	return "error"
}

func KindOf(err error) Kind {
	var (
		lexErr   *lexer.Error
		synErr   *parser.SyntaxError
		undefErr *evaluator.UndefinedError
		arithErr *evaluator.ArithmeticError
		intErr   *evaluator.InternalError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &lexErr):
		return KindLex
	case errors.As(err, &synErr):
		return KindSyntax
	case errors.As(err, &undefErr):
		return KindUndefined
	case errors.As(err, &arithErr):
		return KindArithmetic
	case errors.As(err, &intErr):
		return KindInternal
	}
	return KindNone
}
