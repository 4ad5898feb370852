package parser

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lovego/ast"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/token"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lovego", "parser")

type Parser struct {
	tokens  []token.Token
	current int
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse turns a complete token sequence into a Program.
func Parse(tokens []token.Token) (ast.Program, error) {
	return NewParser(tokens).Parse()
}

// Parse consumes every token. It stops at the first syntax error; there is
// no recovery.
func (p *Parser) Parse() (prog ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(errors.SyntaxError)
			if !ok {
				panic(r)
			}
			plog.Debugf("syntax error at token %d: %s", p.current, serr.Message)
			prog = ast.Program{}
			err = tracerr.Wrap(serr)
		}
	}()

	for !p.atEnd() {
		prog.Statements = append(prog.Statements, p.declaration())
	}

	return prog, nil
}

func (p *Parser) atEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *Parser) peek() token.Token {
	if p.atEnd() {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) peekIs(k ...token.Kind) bool {
	return p.peek().Is(k...)
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) fail(msg string) {
	panic(errors.SyntaxError{Message: msg, Got: p.peek().Kind})
}

func (p *Parser) expect(k token.Kind, msg string) token.Token {
	if !p.peekIs(k) {
		p.fail(msg)
	}
	return p.advance()
}

func (p *Parser) expectIdent(msg string) string {
	return p.expect(token.IDENT, msg).Name
}

func (p *Parser) declaration() ast.Node {
	switch p.peek().Kind {
	case token.HEART, token.FOREVER:
		return p.varDeclaration()
	case token.DEVOTION:
		return p.functionDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Node {
	isConstant := p.advance().Kind == token.FOREVER
	name := p.expectIdent("Expected variable name")

	var declared *ast.DeclaredType
	if p.peekIs(token.COLON) {
		p.advance()
		t := p.parseType()
		declared = &t
	}

	p.expect(token.MATCH, "Expected 'match' after variable name")
	init := p.expression()
	p.expect(token.SEMICOLON, "Expected ';' after variable declaration")

	return ast.VariableDecl{
		Name:        name,
		IsConstant:  isConstant,
		Declared:    declared,
		Initializer: init,
	}
}

func (p *Parser) functionDeclaration() ast.Node {
	p.advance()
	name := p.expectIdent("Expected function name")
	p.expect(token.LPAREN, "Expected '(' after function name")

	var params []ast.Param
	if !p.peekIs(token.RPAREN) {
		for {
			param := p.expectIdent("Expected parameter name")
			p.expect(token.COLON, "Expected ':' after parameter name")
			params = append(params, ast.Param{Name: param, Kind: p.parseType()})

			if !p.peekIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RPAREN, "Expected ')' after parameters")

	var ret *ast.DeclaredType
	if p.peekIs(token.ARROW) {
		p.advance()
		t := p.parseType()
		ret = &t
	}

	return ast.FunctionDecl{
		Name:    name,
		Params:  params,
		Returns: ret,
		Body:    p.block(),
	}
}

func (p *Parser) parseType() ast.DeclaredType {
	var t ast.DeclaredType
	switch p.peek().Kind {
	case token.TYPE_NUMBER:
		t = ast.DeclaredNumber
	case token.TYPE_TEXT:
		t = ast.DeclaredText
	case token.TYPE_FEELING:
		t = ast.DeclaredFeeling
	default:
		p.fail("Expected type")
	}
	p.advance()
	return t
}

func (p *Parser) statement() ast.Node {
	switch p.peek().Kind {
	case token.WHISPER:
		p.advance()
		value := p.expression()
		p.expect(token.SEMICOLON, "Expected ';' after value")
		return ast.PrintStmt{Expr: value}
	case token.CRUSH:
		return p.ifStatement()
	case token.DATING:
		return p.whileStatement()
	case token.PROMISE:
		return p.returnStatement()
	case token.LBRACE:
		return ast.Block(p.block())
	}

	expr := p.expression()
	p.expect(token.SEMICOLON, "Expected ';' after expression")
	return ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) ifStatement() ast.Node {
	p.advance()
	p.expect(token.LPAREN, "Expected '(' after 'crush'")
	cond := p.expression()
	p.expect(token.RPAREN, "Expected ')' after condition")

	node := ast.If{Condition: cond, Then: p.block()}
	if p.peekIs(token.BUTTERFLIES) {
		p.advance()
		node.Else = p.block()
		if node.Else == nil {
			node.Else = []ast.Node{}
		}
	}
	return node
}

func (p *Parser) whileStatement() ast.Node {
	p.advance()
	p.expect(token.LPAREN, "Expected '(' after 'dating'")
	cond := p.expression()
	p.expect(token.RPAREN, "Expected ')' after condition")

	return ast.While{Condition: cond, Body: p.block()}
}

func (p *Parser) returnStatement() ast.Node {
	p.advance()

	var value ast.Node
	if !p.peekIs(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "Expected ';' after return value")
	return ast.ReturnStmt{Value: value}
}

// block parses a brace delimited statement list, braces included.
func (p *Parser) block() []ast.Node {
	p.expect(token.LBRACE, "Expected '{' before block")

	var statements []ast.Node
	for !p.peekIs(token.RBRACE, token.EOF) {
		statements = append(statements, p.declaration())
	}

	p.expect(token.RBRACE, "Expected '}' after block")
	return statements
}
