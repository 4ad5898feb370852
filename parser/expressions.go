package parser

import (
	"github.com/pontaoski/lovego/ast"
	"github.com/pontaoski/lovego/token"
)

// Binding power, loosest first: assignment, or, and, equality, comparison,
// term, factor, unary, primary.

func (p *Parser) expression() ast.Node {
	return p.assignment()
}

func (p *Parser) assignment() ast.Node {
	expr := p.or()

	if p.peekIs(token.MATCH) {
		p.advance()
		value := p.assignment()

		if v, ok := expr.(ast.Variable); ok {
			return ast.Assign{Name: v.Name, Value: value}
		}
		p.fail("Invalid assignment target")
	}

	return expr
}

// binaryLevel parses a left-associative chain of the given operators whose
// operands are produced by next.
func (p *Parser) binaryLevel(next func() ast.Node, ops map[token.Kind]ast.Operator) ast.Node {
	expr := next()

	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return expr
		}
		p.advance()
		expr = ast.Binary{Left: expr, Operator: op, Right: next()}
	}
}

var (
	orOps         = map[token.Kind]ast.Operator{token.OR: ast.Or}
	andOps        = map[token.Kind]ast.Operator{token.AND: ast.And}
	equalityOps   = map[token.Kind]ast.Operator{token.SOULMATE: ast.Equal, token.HEARTBREAK: ast.NotEqual}
	comparisonOps = map[token.Kind]ast.Operator{
		token.ENVIES:  ast.Less,
		token.ADMIRES: ast.Greater,
		token.YEARNS:  ast.LessEqual,
		token.ADORES:  ast.GreaterEqual,
	}
	termOps   = map[token.Kind]ast.Operator{token.CUDDLE: ast.Add, token.BREAKUP: ast.Subtract}
	factorOps = map[token.Kind]ast.Operator{token.KISS: ast.Multiply, token.SPLIT: ast.Divide}
)

func (p *Parser) or() ast.Node         { return p.binaryLevel(p.and, orOps) }
func (p *Parser) and() ast.Node        { return p.binaryLevel(p.equality, andOps) }
func (p *Parser) equality() ast.Node   { return p.binaryLevel(p.comparison, equalityOps) }
func (p *Parser) comparison() ast.Node { return p.binaryLevel(p.term, comparisonOps) }
func (p *Parser) term() ast.Node       { return p.binaryLevel(p.factor, termOps) }
func (p *Parser) factor() ast.Node     { return p.binaryLevel(p.unary, factorOps) }

func (p *Parser) unary() ast.Node {
	if p.peekIs(token.NOT) {
		p.advance()
		return ast.Unary{Operator: ast.Not, Operand: p.unary()}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Node {
	tok := p.peek()

	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return ast.Lit{Literal: ast.NumberLiteral(tok.Number)}
	case token.TEXT:
		p.advance()
		return ast.Lit{Literal: ast.TextLiteral(tok.Name)}
	case token.YES:
		p.advance()
		return ast.Lit{Literal: ast.BooleanLiteral(true)}
	case token.NO:
		p.advance()
		return ast.Lit{Literal: ast.BooleanLiteral(false)}
	case token.LONELY:
		p.advance()
		return ast.Lit{Literal: ast.NullLiteral{}}
	case token.LPAREN:
		p.advance()
		expr := p.expression()
		p.expect(token.RPAREN, "Expected ')' after expression")
		return ast.Grouping{Inner: expr}
	case token.IDENT:
		p.advance()
		if p.peekIs(token.LPAREN) {
			return p.call(tok.Name)
		}
		return ast.Variable{Name: tok.Name}
	}

	p.fail("Expected expression")
	return nil
}

// call is entered with the callee name consumed and the parser at '('.
func (p *Parser) call(callee string) ast.Node {
	p.advance()

	var args []ast.Node
	if !p.peekIs(token.RPAREN) {
		for {
			args = append(args, p.expression())
			if !p.peekIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RPAREN, "Expected ')' after arguments")

	return ast.Call{Callee: callee, Arguments: args}
}
