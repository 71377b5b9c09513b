package evaluator

import (
	"fortio.org/log"

	"spi/internal/parser"
)

// Evaluator walks an AST against the environment it owns.
type Evaluator struct {
	env *Env
}

// New returns an evaluator over env, or over a fresh environment if env is nil.
func New(env *Env) *Evaluator {
	if env == nil {
		env = NewEnv()
	}
	return &Evaluator{env: env}
}

func (ev *Evaluator) Env() *Env { return ev.env }

// Eval evaluates n. Expression nodes yield their value; statements
// (Assign, Compound, NoOp) yield a nil Value and act on the environment.
func (ev *Evaluator) Eval(n parser.Node) (Value, error) {
	switch x := n.(type) {
	case parser.Num:
		return newBigInt(x.Value), nil
	case parser.UnaryOp:
		log.LogVf("eval unary %s", x.Operator)
		v, err := ev.value(x.Operand)
		if err != nil {
			return nil, err
		}
		switch x.Operator {
		case "+":
			return v, nil
		case "-":
			return neg(v), nil
		}
		return nil, &InternalError{Node: n}
	case parser.BinOp:
		log.LogVf("eval binary %s", x.Operator)
		l, err := ev.value(x.Left)
		if err != nil {
			return nil, err
		}
		r, err := ev.value(x.Right)
		if err != nil {
			return nil, err
		}
		switch x.Operator {
		case "+":
			return add(l, r), nil
		case "-":
			return sub(l, r), nil
		case "*":
			return mul(l, r), nil
		case "/":
			return div(l, r)
		}
		return nil, &InternalError{Node: n}
	case parser.Var:
		return ev.env.Get(x.Name)
	case parser.Assign:
		v, err := ev.value(x.Value)
		if err != nil {
			return nil, err
		}
		log.LogVf("assign %s := %s", x.Target.Name, Format(v))
		ev.env.Set(x.Target.Name, v)
		return nil, nil
	case parser.Compound:
		log.LogVf("eval compound of %d statements", len(x.Statements))
		for _, st := range x.Statements {
			if _, err := ev.Eval(st); err != nil {
				return nil, err
			}
		}
		return nil, nil
	case parser.NoOp:
		return nil, nil
	default:
		return nil, &InternalError{Node: n}
	}
}

// value evaluates a node that must produce a number.
func (ev *Evaluator) value(n parser.Node) (Value, error) {
	v, err := ev.Eval(n)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &InternalError{Node: n}
	}
	return v, nil
}
