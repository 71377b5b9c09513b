package evaluator

import "fmt"

// UndefinedError is returned when a variable is read before any assignment.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string { return fmt.Sprintf("undefined variable %q", e.Name) }

type ArithmeticError struct {
	Msg string
}

func (e *ArithmeticError) Error() string { return e.Msg }

// InternalError means the evaluator met a node it has no rule for.
type InternalError struct {
	Node any
}

func (e *InternalError) Error() string { return fmt.Sprintf("no evaluation rule for %T", e.Node) }
