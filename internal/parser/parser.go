package parser

import (
	"fmt"
	"lispy/internal/ast"
	"lispy/internal/lexer"
	"lispy/internal/token"
	"lispy/internal/util"
)

type Parser struct {
	l      *lexer.Lexer
	src    string // source code here
	errors []string

	curToken token.Token

	depth    int
	maxDepth int // 0 means unbounded

	errLine, errCol int // position of the first error
}

func New(l *lexer.Lexer, source string) *Parser {
	p := &Parser{
		l:      l,
		src:    source,
		errors: []string{},
	}

	// Read one token, so curToken is set
	p.nextToken()

	return p
}

// SetMaxDepth bounds how deeply groups may nest before parsing fails.
func (p *Parser) SetMaxDepth(n int) {
	p.maxDepth = n
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) position() (int, int) {
	return util.GetLineAndColumn(p.src, p.curToken.Position)
}

func (p *Parser) addError(message string, args ...interface{}) {
	line, col := p.position()
	if len(p.errors) == 0 {
		p.errLine, p.errCol = line, col
	}
	m := fmt.Sprintf(message, args...)
	msg := fmt.Sprintf("[%3d:%2d] %s", line, col, m)
	p.errors = append(p.errors, msg)
}

func (p *Parser) Errors() []string {
	return p.errors
}

// ErrorPosition returns the line and column of the first error, or 0, 0.
func (p *Parser) ErrorPosition() (int, int) {
	return p.errLine, p.errCol
}

// ParseProgram parses `/^/ <expr>* /$/`. On failure the returned tree is partial
// and Errors is non-empty.
func (p *Parser) ParseProgram() *ast.Tree {
	program := ast.Branch(ast.TagRoot, 1, 1)
	program.Add(ast.Leaf(ast.TagAnchor, "", 1, 1))

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.RPAREN) {
			p.addError("unexpected %s, expected one of '(', number, symbol or end of input", p.curToken)
			return program
		}
		expr := p.parseExpression()
		if expr == nil {
			return program
		}
		program.Add(expr)
	}

	line, col := p.position()
	program.Add(ast.Leaf(ast.TagAnchor, "", line, col))
	return program
}

func (p *Parser) parseExpression() ast.Node {
	line, col := p.position()

	switch p.curToken.Type {
	case token.NUMBER:
		n := ast.Leaf(ast.TagNumber, p.curToken.Literal, line, col)
		p.nextToken()
		return n

	case token.SYMBOL:
		n := ast.Leaf(ast.TagOperator, p.curToken.Literal, line, col)
		p.nextToken()
		return n

	case token.IDENT:
		n := ast.Leaf(ast.TagIdentifier, p.curToken.Literal, line, col)
		p.nextToken()
		return n

	case token.LPAREN:
		return p.parseSexpr()

	case token.ILLEGAL:
		p.addError("unexpected character %s", p.curToken)
		return nil

	default:
		p.addError("unexpected %s, expected one of '(', number or symbol", p.curToken)
		return nil
	}
}

func (p *Parser) parseSexpr() ast.Node {
	line, col := p.position()

	p.depth++
	defer func() { p.depth-- }()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.addError("expressions nested deeper than %d", p.maxDepth)
		return nil
	}

	sexpr := ast.Branch(ast.TagSexpr, line, col)
	sexpr.Add(ast.Leaf(ast.TagChar, token.LPAREN, line, col))
	p.nextToken()

	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.addError("unexpected %s, expected ')'", p.curToken)
			return nil
		}
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		sexpr.Add(expr)
	}

	rl, rc := p.position()
	sexpr.Add(ast.Leaf(ast.TagChar, token.RPAREN, rl, rc))
	p.nextToken()

	return sexpr
}
