package parser

import "math/big"

// Ordered JSON fields are ensured by struct field order.

// Node is implemented by every AST variant; the set is closed to this package.
type Node interface{ isNode() }

type Num struct {
	Type  string   `json:"type"`
	Value *big.Int `json:"value"`
}

func (Num) isNode() {}

// UnaryOp is a prefix + or - applied to its operand.
type UnaryOp struct {
	Operator string `json:"operator"`
	Operand  Node   `json:"operand"`
	Type     string `json:"type"`
}

func (UnaryOp) isNode() {}

type BinOp struct {
	Left     Node   `json:"left"`
	Operator string `json:"operator"`
	Right    Node   `json:"right"`
	Type     string `json:"type"`
}

func (BinOp) isNode() {}

type Var struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (Var) isNode() {}

type Assign struct {
	Target Var    `json:"target"`
	Type   string `json:"type"`
	Value  Node   `json:"value"`
}

func (Assign) isNode() {}

// Compound is a BEGIN ... END block; statements run in order.
type Compound struct {
	Statements []Node `json:"statements"`
	Type       string `json:"type"`
}

func (Compound) isNode() {}

// NoOp is the empty statement.
type NoOp struct {
	Type string `json:"type"`
}

func (NoOp) isNode() {}

func newNum(v *big.Int) Num { return Num{Type: "Num", Value: v} }

func newUnary(op string, operand Node) UnaryOp {
	return UnaryOp{Operator: op, Operand: operand, Type: "UnaryOp"}
}

func newBinary(left Node, op string, right Node) BinOp {
	return BinOp{Left: left, Operator: op, Right: right, Type: "BinOp"}
}

func newVar(name string) Var { return Var{Name: name, Type: "Var"} }

func newAssign(target Var, value Node) Assign {
	return Assign{Target: target, Type: "Assign", Value: value}
}

func newCompound(stmts []Node) Compound {
	if stmts == nil {
		stmts = []Node{}
	}
	return Compound{Statements: stmts, Type: "Compound"}
}

func newNoOp() NoOp { return NoOp{Type: "NoOp"} }
