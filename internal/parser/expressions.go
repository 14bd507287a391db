package parser

import (
	"github.com/ashlang/ash/internal/ast"
	"github.com/ashlang/ash/internal/diagnostics"
	"github.com/ashlang/ash/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"expression is nested too deeply",
		))
		return nil
	}

	if p.curTokenIs(token.ILLEGAL) {
		p.reportIllegal(p.curToken)
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.SEMICOLON) &&
		precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, _ := p.curToken.Literal.(int64)
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	value, _ := p.curToken.Literal.(string)
	return &ast.StringLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Lexeme}

	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseFallibleExpression parses '? expr'. The operand binds at AND
// precedence, so '? m["k"] == 1 && other' marks only the comparison.
func (p *Parser) parseFallibleExpression() ast.Expression {
	expr := &ast.FallibleExpression{Token: p.curToken}

	p.nextToken()
	expr.Inner = p.parseExpression(AND)
	if expr.Inner == nil {
		return nil
	}

	return expr
}

// parseFunctionLiteral parses an anonymous 'fn(params) { body }'. Named
// declarations are handled as statements.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Params = p.parseFunctionParams()
	if lit.Params == nil {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	p.skipNewlines()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	p.skipNewlines()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}

func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListLiteral{Token: p.curToken}
	list.Elements = p.parseExpressionList(token.RBRACKET)
	if list.Elements == nil {
		return nil
	}
	return list
}

// parseExpressionList parses a comma-separated expression list ending at the
// given closing token. Newlines between elements are ignored, so literals may
// span multiple lines.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	p.skipPeekNewlines()
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	elem := p.parseExpression(LOWEST)
	if elem == nil {
		return nil
	}
	list = append(list, elem)

	for {
		p.skipPeekNewlines()
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.skipPeekNewlines()
		if p.peekTokenIs(end) {
			// Trailing comma.
			break
		}
		p.nextToken()
		elem := p.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		list = append(list, elem)
	}

	p.skipPeekNewlines()
	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseMapLiteral parses '{"key": value, ...}'. Keys are string literals or
// bare identifiers, both of which denote string keys.
func (p *Parser) parseMapLiteral() ast.Expression {
	m := &ast.MapLiteral{Token: p.curToken}

	p.skipPeekNewlines()
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return m
	}

	for {
		p.skipPeekNewlines()
		p.nextToken()

		var key string
		switch p.curToken.Type {
		case token.STRING:
			key, _ = p.curToken.Literal.(string)
		case token.IDENT:
			key = p.curToken.Lexeme
		default:
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP001,
				p.curToken,
				"map keys must be strings, got '%s'", p.curToken.Lexeme,
			))
			return nil
		}
		keyTok := p.curToken

		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		p.skipNewlines()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		m.Pairs = append(m.Pairs, &ast.MapPair{Token: keyTok, Key: key, Value: value})

		p.skipPeekNewlines()
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.skipPeekNewlines()
			if p.peekTokenIs(token.RBRACE) {
				break
			}
			continue
		}
		break
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	return m
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}

	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if expr.Index == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return expr
}

// parsePropertyExpression parses 'left.name', shorthand for left["name"].
func (p *Parser) parsePropertyExpression(left ast.Expression) ast.Expression {
	expr := &ast.PropertyExpression{Token: p.curToken, Left: left}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	expr.Name = p.curToken.Lexeme

	return expr
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: fn}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	if expr.Arguments == nil {
		return nil
	}
	return expr
}

// parseChainExpression parses 'value -> f(args)'. The chain is left
// associative, so 'a -> f -> g' threads a through f and then g.
func (p *Parser) parseChainExpression(left ast.Expression) ast.Expression {
	expr := &ast.ChainExpression{Token: p.curToken, Left: left}

	p.nextToken()
	p.skipNewlines()
	expr.Right = p.parseExpression(CHAIN)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseSpawnExpression parses '$prog(args)' or '$"path/to/prog"(args)'.
func (p *Parser) parseSpawnExpression() ast.Expression {
	expr := &ast.SpawnExpression{Token: p.curToken}

	switch p.peekToken.Type {
	// Keywords are fine as program names: $true() and $false() run the
	// real commands.
	case token.IDENT, token.TRUE, token.FALSE, token.IF, token.ELSE,
		token.WHILE, token.FOR, token.IN, token.BREAK, token.CONTINUE,
		token.FUNCTION, token.RETURN:
		p.nextToken()
		expr.Program = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.STRING:
		p.nextToken()
		value, _ := p.curToken.Literal.(string)
		expr.Program = &ast.StringLiteral{Token: p.curToken, Value: value}
	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.peekToken,
			"expected a program name after '$', got '%s'", p.peekToken.Lexeme,
		))
		return nil
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	expr.Args = p.parseExpressionList(token.RPAREN)
	if expr.Args == nil {
		return nil
	}

	return expr
}

// parsePipelineExpression parses '$a() | $b() | ...'. Every stage must be a
// spawn expression; anything else is rejected at parse time.
func (p *Parser) parsePipelineExpression(left ast.Expression) ast.Expression {
	expr := &ast.PipelineExpression{Token: p.curToken}

	switch l := left.(type) {
	case *ast.SpawnExpression:
		expr.Stages = append(expr.Stages, l)
	case *ast.PipelineExpression:
		expr.Stages = append(expr.Stages, l.Stages...)
	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005,
			left.GetToken(),
			"pipeline stages must be process spawns",
		))
		return nil
	}

	p.nextToken()
	p.skipNewlines()
	right := p.parseExpression(PIPELINE)
	if right == nil {
		return nil
	}
	stage, ok := right.(*ast.SpawnExpression)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005,
			right.GetToken(),
			"pipeline stages must be process spawns",
		))
		return nil
	}
	expr.Stages = append(expr.Stages, stage)

	return expr
}

// skipNewlines advances while the current token is a newline.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipPeekNewlines advances while the next token is a newline, keeping the
// current token one step behind.
func (p *Parser) skipPeekNewlines() {
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}
