package syntax

import (
	"github.com/ImGajeed76/bfscript/ast"
)

// parseStmt parses a single statement.
//
// stmt = var_decl | func_def | stack_decl | if_stmt | while_loop | block
//      | push_stmt | pop_stmt | return_stmt | assignment | expr_stmt
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_SIZET:
		return p.parseVarDeclOrFuncDef()
	case TOK_STACK:
		return p.parseStackDecl()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileLoop()
	case TOK_LBRACE:
		return p.parseBlock()
	case TOK_PUSH:
		return p.parsePushStmt()
	case TOK_POP:
		return p.parsePopStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_IDENT:
		// Distinguish an assignment from an expression statement beginning
		// with a name by peeking past the identifier.
		identTok := p.tok
		p.next()

		if p.got(TOK_ASSIGN) {
			return p.parseAssignRest(identTok)
		}

		p.backup(identTok)
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// backup pushes the current token back and re-centers the parser on the given
// previously-consumed token.  Only one token of pushback is supported.
func (p *Parser) backup(tok *Token) {
	p.ahead = p.tok
	p.tok = tok
}

// -----------------------------------------------------------------------------

// parseVarDeclOrFuncDef parses a scalar variable declaration or a function
// definition; both begin with `size_t name`.
//
// var_decl = 'size_t' 'IDENT' ['=' expr] ';'
// func_def = 'size_t' 'IDENT' '(' [param_list] ')' block
// param_list = 'size_t' 'IDENT' {',' 'size_t' 'IDENT'}
func (p *Parser) parseVarDeclOrFuncDef() ast.Stmt {
	startTok := p.want(TOK_SIZET)
	nameTok := p.want(TOK_IDENT)

	if p.got(TOK_LPAREN) {
		p.next()

		var params []string
		for !p.got(TOK_RPAREN) {
			if len(params) > 0 {
				p.want(TOK_COMMA)
			}

			p.want(TOK_SIZET)
			params = append(params, p.want(TOK_IDENT).Value)
		}
		p.next()

		body := p.parseBlock()

		return &ast.FuncDef{
			StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, body.Span())},
			Name:     nameTok.Value,
			Params:   params,
			Body:     body,
		}
	}

	var init ast.Expr
	if p.got(TOK_ASSIGN) {
		p.next()
		init = p.parseExpr()
	}

	endTok := p.want(TOK_SEMICOLON)

	return &ast.VarDecl{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span)},
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Init:     init,
	}
}

// parseStackDecl parses a stack declaration.
//
// stack_decl = 'stack' 'IDENT' '[' expr ']' ';'
func (p *Parser) parseStackDecl() ast.Stmt {
	startTok := p.want(TOK_STACK)
	nameTok := p.want(TOK_IDENT)

	p.want(TOK_LBRACKET)
	size := p.parseExpr()
	p.want(TOK_RBRACKET)
	endTok := p.want(TOK_SEMICOLON)

	return &ast.StackDecl{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span)},
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Size:     size,
	}
}

// parseAssignRest parses the remainder of an assignment statement after its
// target name and with the parser centered on the `=`.
//
// assignment = 'IDENT' '=' expr ';'
func (p *Parser) parseAssignRest(nameTok *Token) ast.Stmt {
	p.want(TOK_ASSIGN)
	value := p.parseExpr()
	endTok := p.want(TOK_SEMICOLON)

	return &ast.Assign{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(nameTok.Span, endTok.Span)},
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Value:    value,
	}
}

// parseIfStmt parses an if statement.
//
// if_stmt = 'if' '(' expr ')' block ['else' (block | if_stmt)]
func (p *Parser) parseIfStmt() ast.Stmt {
	startTok := p.want(TOK_IF)

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	then := p.parseBlock()

	var els *ast.Block
	end := then.Span()
	if p.got(TOK_ELSE) {
		p.next()

		if p.got(TOK_IF) {
			// `else if` desugars to an else block containing one if statement.
			nested := p.parseIfStmt()
			els = &ast.Block{
				StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOn(nested.Span())},
				Stmts:    []ast.Stmt{nested},
			}
		} else {
			els = p.parseBlock()
		}

		end = els.Span()
	}

	return &ast.IfStmt{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, end)},
		Cond:     cond,
		Then:     then,
		Else:     els,
	}
}

// parseWhileLoop parses a while loop.
//
// while_loop = 'while' '(' expr ')' block
func (p *Parser) parseWhileLoop() ast.Stmt {
	startTok := p.want(TOK_WHILE)

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	body := p.parseBlock()

	return &ast.WhileLoop{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, body.Span())},
		Cond:     cond,
		Body:     body,
	}
}

// parseBlock parses a braced statement block.
//
// block = '{' {stmt} '}'
func (p *Parser) parseBlock() *ast.Block {
	startTok := p.want(TOK_LBRACE)

	var stmts []ast.Stmt
	for !p.got(TOK_RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	endTok := p.want(TOK_RBRACE)

	return &ast.Block{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span)},
		Stmts:    stmts,
	}
}

// parsePushStmt parses a stack push statement.
//
// push_stmt = 'push' '(' 'IDENT' ',' expr ')' ';'
func (p *Parser) parsePushStmt() ast.Stmt {
	startTok := p.want(TOK_PUSH)

	p.want(TOK_LPAREN)
	nameTok := p.want(TOK_IDENT)
	p.want(TOK_COMMA)
	value := p.parseExpr()
	p.want(TOK_RPAREN)
	endTok := p.want(TOK_SEMICOLON)

	return &ast.PushStmt{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span)},
		Name:     nameTok.Value,
		Value:    value,
	}
}

// parsePopStmt parses a stack pop statement.
//
// pop_stmt = 'pop' '(' 'IDENT' ')' ';'
func (p *Parser) parsePopStmt() ast.Stmt {
	startTok := p.want(TOK_POP)

	p.want(TOK_LPAREN)
	nameTok := p.want(TOK_IDENT)
	p.want(TOK_RPAREN)
	endTok := p.want(TOK_SEMICOLON)

	return &ast.PopStmt{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span)},
		Name:     nameTok.Value,
	}
}

// parseReturnStmt parses a return statement.
//
// return_stmt = 'return' [expr] ';'
func (p *Parser) parseReturnStmt() ast.Stmt {
	startTok := p.want(TOK_RETURN)

	var value ast.Expr
	if !p.got(TOK_SEMICOLON) {
		value = p.parseExpr()
	}

	endTok := p.want(TOK_SEMICOLON)

	return &ast.ReturnStmt{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span)},
		Value:    value,
	}
}

// parseExprStmt parses a bare expression statement.
//
// expr_stmt = expr ';'
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	endTok := p.want(TOK_SEMICOLON)

	return &ast.ExprStmt{
		StmtBase: ast.StmtBase{ASTBase: ast.NewASTBaseOver(expr.Span(), endTok.Span)},
		Expr:     expr,
	}
}
