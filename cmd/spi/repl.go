package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"spi/internal/config"
	"spi/internal/evaluator"
	"spi/internal/interp"
)

const helpText = `REPL commands:
  :help                       Show this help
  :quit / :exit               Exit the REPL
  :env                        Print every variable binding
  :reset                      Start over with an empty environment
  :mode auto|expr|program     Choose how lines are parsed
`

// prompter is the part of liner.State the loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	in     prompter
	out    io.Writer
	errOut io.Writer
	prompt string
	sess   *interp.Session
}

func runREPL(cfg config.Config, mode interp.Mode) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				log.Warnf("cannot save history to %s: %v", histPath, err)
			}
		}()
	}

	r := &repl{
		in:     ln,
		out:    os.Stdout,
		errOut: os.Stderr,
		prompt: cfg.Prompt,
		sess:   interp.NewSession(mode),
	}
	r.loop()
	return 0
}

// loop reads lines until end of input. Errors are reported and never end
// the session.
func (r *repl) loop() {
	for {
		line, err := r.in.Prompt(r.prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Errf("read: %v", err)
			}
			fmt.Fprintln(r.out)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.in.AppendHistory(line)

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			if done := r.command(strings.TrimSpace(line)); done {
				return
			}
			continue
		}
		r.eval(line)
	}
}

func (r *repl) eval(line string) {
	v, err := r.sess.Run(line)
	if err != nil {
		fmt.Fprintln(r.errOut, color.RedString("[%s] %v", interp.KindOf(err), err))
		return
	}
	if v != nil {
		fmt.Fprintln(r.out, color.BlueString("%s", evaluator.Format(v)))
	}
}

func (r *repl) command(line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprint(r.out, helpText)
	case ":env":
		env := r.sess.Env()
		for _, name := range env.Names() {
			v, _ := env.Get(name)
			fmt.Fprintf(r.out, "%s = %s\n", name, evaluator.Format(v))
		}
	case ":reset":
		r.sess.Reset()
	case ":mode":
		if len(fields) != 2 {
			fmt.Fprintf(r.out, "mode is %s\n", r.sess.Mode)
			return false
		}
		m, err := interp.ParseMode(fields[1])
		if err != nil {
			fmt.Fprintln(r.errOut, color.RedString("%v", err))
			return false
		}
		r.sess.Mode = m
	default:
		fmt.Fprintf(r.errOut, "unknown command %s. Type :help for commands.\n", fields[0])
	}
	return false
}
