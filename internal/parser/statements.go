package parser

import (
	"github.com/ashlang/ash/internal/ast"
	"github.com/ashlang/ash/internal/diagnostics"
	"github.com/ashlang/ash/internal/token"
)

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.ILLEGAL:
		p.reportIllegal(p.curToken)
		p.skipToStatementBoundary()
		return nil
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case token.CONTINUE:
		return &ast.ContinueStatement{Token: p.curToken}
	case token.FUNCTION:
		// 'fn name(...)' declares; a bare 'fn(...)' is an anonymous
		// function expression.
		if p.peekTokenIs(token.IDENT) {
			return p.parseFuncStatement()
		}
		return p.parseSimpleStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement parses an expression statement, a declaration, an
// assignment, or a compound assignment. The left side is parsed as an
// expression first; when a ':='/'='/op-assign follows, it is converted into a
// target of the appropriate shape.
func (p *Parser) parseSimpleStatement() ast.Statement {
	startToken := p.curToken

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		p.skipToStatementBoundary()
		return nil
	}

	switch p.peekToken.Type {
	case token.DECLARE:
		target := p.exprToTarget(expr)
		if target == nil {
			p.skipToStatementBoundary()
			return nil
		}
		p.nextToken() // at ':='
		opTok := p.curToken
		value := p.parseStatementValue()
		if value == nil {
			return nil
		}
		return &ast.DeclareStatement{Token: opTok, Target: target, Value: value}

	case token.ASSIGN:
		target := p.exprToTarget(expr)
		if target == nil {
			p.skipToStatementBoundary()
			return nil
		}
		p.nextToken() // at '='
		opTok := p.curToken
		value := p.parseStatementValue()
		if value == nil {
			return nil
		}
		return &ast.AssignStatement{Token: opTok, Target: target, Value: value}

	case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.ASTERISK_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
		target := p.exprToTarget(expr)
		if target == nil {
			p.skipToStatementBoundary()
			return nil
		}
		if target.Kind == ast.TargetDestructure {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP004,
				p.peekToken,
				"compound assignment cannot use a destructuring target",
			))
			p.skipToStatementBoundary()
			return nil
		}
		p.nextToken() // at the op-assign token
		opTok := p.curToken
		op := opTok.Lexeme[:1] // "+=" -> "+"
		value := p.parseStatementValue()
		if value == nil {
			return nil
		}
		return &ast.OpAssignStatement{Token: opTok, Target: target, Operator: op, Value: value}
	}

	return &ast.ExpressionStatement{Token: startToken, Expression: expr}
}

// parseStatementValue parses the right side of ':='/'='/op-assign. The
// current token is the operator; newlines after it are allowed.
func (p *Parser) parseStatementValue() ast.Expression {
	p.nextToken()
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	value := p.parseExpression(LOWEST)
	if value == nil {
		p.skipToStatementBoundary()
	}
	return value
}

// exprToTarget converts a parsed left-side expression into a declaration or
// assignment target, diagnosing shapes that cannot be assigned to.
func (p *Parser) exprToTarget(expr ast.Expression) *ast.Target {
	switch e := expr.(type) {
	case *ast.Identifier:
		return &ast.Target{Token: e.Token, Kind: ast.TargetName, Name: e}

	case *ast.ListLiteral:
		names := make([]*ast.Identifier, 0, len(e.Elements))
		for _, el := range e.Elements {
			ident, ok := el.(*ast.Identifier)
			if !ok {
				p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
					diagnostics.ErrP004,
					e.Token,
					"destructuring targets must be identifiers",
				))
				return nil
			}
			names = append(names, ident)
		}
		if len(names) == 0 {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP004,
				e.Token,
				"destructuring target must name at least one binding",
			))
			return nil
		}
		return &ast.Target{Token: e.Token, Kind: ast.TargetDestructure, Names: names}

	case *ast.IndexExpression:
		return &ast.Target{Token: e.Token, Kind: ast.TargetPath, Path: e}

	case *ast.PropertyExpression:
		return &ast.Target{Token: e.Token, Kind: ast.TargetPath, Path: e}
	}

	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP004,
		expr.GetToken(),
		"cannot assign to this expression",
	))
	return nil
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			block.Token,
			"unbalanced '{': block is never closed",
		))
	}

	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		p.skipToStatementBoundary()
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Branches = append(stmt.Branches, &ast.Branch{Cond: cond, Body: p.parseBlockStatement()})

	for p.peekTokenIs(token.ELSE) {
		p.nextToken() // at 'else'
		if p.peekTokenIs(token.IF) {
			p.nextToken() // at 'if'
			p.nextToken() // at condition start
			cond := p.parseExpression(LOWEST)
			if cond == nil {
				p.skipToStatementBoundary()
				return nil
			}
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			stmt.Branches = append(stmt.Branches, &ast.Branch{Cond: cond, Body: p.parseBlockStatement()})
			continue
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Else = p.parseBlockStatement()
		break
	}

	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	p.nextToken()
	stmt.Cond = p.parseExpression(LOWEST)
	if stmt.Cond == nil {
		p.skipToStatementBoundary()
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	p.nextToken()
	switch p.curToken.Type {
	case token.IDENT:
		stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.LBRACKET:
		names := p.parseIdentifierList()
		if names == nil {
			return nil
		}
		stmt.Names = names
	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP004,
			p.curToken,
			"for loop expects a binding name or a '[key, value]' pair",
		))
		p.skipToStatementBoundary()
		return nil
	}

	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	stmt.Iter = p.parseExpression(LOWEST)
	if stmt.Iter == nil {
		p.skipToStatementBoundary()
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

// parseFuncStatement parses 'fn name(params) { body }'.
func (p *Parser) parseFuncStatement() ast.Statement {
	stmt := &ast.FuncStatement{Token: p.curToken}

	p.nextToken() // at the name
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Params = p.parseFunctionParams()
	if stmt.Params == nil {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

// parseFunctionParams parses '(a, b, ...)' with the current token at '(',
// leaving the current token at ')'. Parameter names must be distinct.
func (p *Parser) parseFunctionParams() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	seen := map[string]bool{}
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		if seen[p.curToken.Lexeme] {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP004,
				p.curToken,
				"duplicate parameter '%s'", p.curToken.Lexeme,
			))
			return nil
		}
		seen[p.curToken.Lexeme] = true
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return params
}

// parseReturnStatement parses 'return expr' and bare 'return'.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMICOLON) ||
		p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		p.skipToStatementBoundary()
		return nil
	}

	return stmt
}

// parseIdentifierList parses '[a, b, ...]' with the current token at '[',
// leaving the current token at ']'.
func (p *Parser) parseIdentifierList() []*ast.Identifier {
	var names []*ast.Identifier

	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		names = append(names, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return names
}
