package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"spi/internal/config"
	"spi/internal/evaluator"
	"spi/internal/interp"
	"spi/internal/lexer"
	"spi/internal/parser"
)

type tokenOut struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func printTokens(w io.Writer, src string) error {
	toks, err := lexer.Lex(src)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, t := range toks {
		if err := enc.Encode(tokenOut{Type: t.Kind.String(), Value: t.Text()}); err != nil {
			return err
		}
	}
	return err
}

func printAST(w io.Writer, src string, mode interp.Mode) error {
	var (
		root parser.Node
		err  error
	)
	if interp.Resolve(src, mode) == interp.ModeProgram {
		root, err = parser.Parse(src)
	} else {
		root, err = parser.ParseExpr(src)
	}
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	return bw.Flush()
}

// runSource runs src as one input and prints its value, if it has one.
func runSource(w io.Writer, src string, mode interp.Mode) error {
	val, err := interp.Run(src, evaluator.NewEnv(), mode)
	if err != nil {
		return err
	}
	if val != nil {
		fmt.Fprintln(w, evaluator.Format(val))
	}
	return nil
}

func usage(prog string) {
	fmt.Fprintf(os.Stderr, "Usage: %s [-c config] [-m auto|expr|program] [-e source] [-n] [-v] [tokens|ast|run] [file]\n", filepath.Base(prog))
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("[%s] %v", interp.KindOf(err), err))
}

func main() { os.Exit(run(os.Args)) }

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "c:e:m:nvh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(args[0])
		return 2
	}

	var (
		cfgPath  = config.DefaultPath()
		explicit bool
		evalSrc  string
		haveEval bool
		modeFlag string
		noColor  bool
		verbose  bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			cfgPath, explicit = opt.Value, true
		case 'e':
			evalSrc, haveEval = opt.Value, true
		case 'm':
			modeFlag = opt.Value
		case 'n':
			noColor = true
		case 'v':
			verbose = true
		case 'h':
			usage(args[0])
			return 0
		}
	}
	rest := args[optind:]

	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if modeFlag != "" {
		cfg.Mode = modeFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	mode, err := cfg.ParsedMode()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if verbose {
		log.SetLogLevel(log.Verbose)
	}
	if noColor || !cfg.Color {
		color.NoColor = true
	}

	if haveEval {
		if err := runSource(os.Stdout, evalSrc, mode); err != nil {
			reportError(err)
			return 1
		}
		return 0
	}

	if len(rest) == 0 {
		return runREPL(cfg, mode)
	}

	// Subcommands: tokens <file>, ast <file>, run <file>; default: run <file>
	cmd, path := "run", rest[0]
	if rest[0] == "tokens" || rest[0] == "ast" || rest[0] == "run" {
		if len(rest) < 2 {
			usage(args[0])
			return 2
		}
		cmd, path = rest[0], rest[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errf("cannot read %s: %v", path, err)
		return 1
	}
	src := string(data)

	switch cmd {
	case "tokens":
		err = printTokens(os.Stdout, src)
	case "ast":
		err = printAST(os.Stdout, src, mode)
	default:
		err = runSource(os.Stdout, src, mode)
	}
	if err != nil {
		reportError(err)
		return 1
	}
	return 0
}
