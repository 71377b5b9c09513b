package parser

import (
	"fmt"

	"spi/internal/lexer"
)

// SyntaxError reports a token that does not fit the grammar where it appears.
type SyntaxError struct {
	Expected string
	Found    lexer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax: expected %s, found %s", e.Expected, e.Found.Kind)
}

// Parser is a recursive-descent parser with one token of lookahead,
// pulled from the lexer only when the grammar needs it.
type Parser struct {
	lx  *lexer.Lexer
	cur lexer.Token
}

func New(lx *lexer.Lexer) *Parser { return &Parser{lx: lx} }

func (p *Parser) next() error {
	t, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *Parser) expect(k lexer.Kind) error {
	if p.cur.Kind != k {
		return &SyntaxError{Expected: k.String(), Found: p.cur}
	}
	return p.next()
}

// ParseProgram parses the statement dialect:
//
//	program : compound_statement DOT EOF
func (p *Parser) ParseProgram() (Compound, error) {
	if err := p.next(); err != nil {
		return Compound{}, err
	}
	node, err := p.compoundStatement()
	if err != nil {
		return Compound{}, err
	}
	if err := p.expect(lexer.DOT); err != nil {
		return Compound{}, err
	}
	if p.cur.Kind != lexer.EOF {
		return Compound{}, &SyntaxError{Expected: lexer.EOF.String(), Found: p.cur}
	}
	return node, nil
}

// ParseExpression parses the expression-only dialect: a single expr
// followed by end of input.
func (p *Parser) ParseExpression() (Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.EOF {
		return nil, &SyntaxError{Expected: lexer.EOF.String(), Found: p.cur}
	}
	return node, nil
}

func (p *Parser) compoundStatement() (Compound, error) {
	if err := p.expect(lexer.BEGIN); err != nil {
		return Compound{}, err
	}
	stmts, err := p.statementList()
	if err != nil {
		return Compound{}, err
	}
	if err := p.expect(lexer.END); err != nil {
		return Compound{}, err
	}
	return newCompound(stmts), nil
}

func (p *Parser) statementList() ([]Node, error) {
	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	out := []Node{first}
	for p.cur.Kind == lexer.SEMI {
		if err := p.next(); err != nil {
			return nil, err
		}
		st, err := p.statement()
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (p *Parser) statement() (Node, error) {
	switch p.cur.Kind {
	case lexer.BEGIN:
		return p.compoundStatement()
	case lexer.ID:
		return p.assignmentStatement()
	default:
		return newNoOp(), nil
	}
}

func (p *Parser) assignmentStatement() (Node, error) {
	target, err := p.variable()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	return newAssign(target, value), nil
}

func (p *Parser) variable() (Var, error) {
	name := p.cur.Lit
	if err := p.expect(lexer.ID); err != nil {
		return Var{}, err
	}
	return newVar(name), nil
}

// expr : term ((PLUS | MINUS) term)*
func (p *Parser) expr() (Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
		op := p.cur.Text()
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = newBinary(node, op, right)
	}
	return node, nil
}

// term : factor ((MUL | DIV) factor)*
func (p *Parser) term() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.MUL || p.cur.Kind == lexer.DIV {
		op := p.cur.Text()
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = newBinary(node, op, right)
	}
	return node, nil
}

// factor : (PLUS | MINUS) factor | INTEGER | LPAREN expr RPAREN | variable
func (p *Parser) factor() (Node, error) {
	t := p.cur
	switch t.Kind {
	case lexer.PLUS, lexer.MINUS:
		if err := p.next(); err != nil {
			return nil, err
		}
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return newUnary(t.Text(), operand), nil
	case lexer.INTEGER:
		if err := p.next(); err != nil {
			return nil, err
		}
		return newNum(t.Int), nil
	case lexer.LPAREN:
		if err := p.next(); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return node, nil
	case lexer.ID:
		return p.variable()
	default:
		return nil, &SyntaxError{Expected: "factor", Found: t}
	}
}

// Parse runs the statement dialect over src.
func Parse(src string) (Compound, error) {
	return New(lexer.New(src)).ParseProgram()
}

// ParseExpr runs the expression dialect over src.
func ParseExpr(src string) (Node, error) {
	return New(lexer.New(src)).ParseExpression()
}
