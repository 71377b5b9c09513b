package interp

import "spi/internal/evaluator"

// Session keeps one environment alive across inputs, the way a REPL does.
// A Session is not safe for concurrent use; run independent sessions instead.
type Session struct {
	Mode Mode
	env  *evaluator.Env
}

func NewSession(mode Mode) *Session {
	return &Session{Mode: mode, env: evaluator.NewEnv()}
}

func (s *Session) Env() *evaluator.Env { return s.env }

// Run evaluates one input in the session's mode.
func (s *Session) Run(src string) (evaluator.Value, error) {
	return Run(src, s.env, s.Mode)
}

// Reset drops every binding.
func (s *Session) Reset() { s.env = evaluator.NewEnv() }
