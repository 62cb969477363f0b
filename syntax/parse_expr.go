package syntax

import (
	"github.com/ImGajeed76/bfscript/ast"
)

// parseExpr parses an expression.
//
// expr = comparison
func (p *Parser) parseExpr() ast.Expr {
	return p.parseComparison()
}

// compOps is the set of comparison operator token kinds.
var compOps = []int{TOK_EQ, TOK_NEQ, TOK_LT, TOK_GT, TOK_LTEQ, TOK_GTEQ}

// parseComparison parses a comparison expression.
//
// comparison = arith {('==' | '!=' | '<' | '>' | '<=' | '>=') arith}
func (p *Parser) parseComparison() ast.Expr {
	lhs := p.parseArith()

	for p.gotOneOf(compOps...) {
		opTok := p.tok
		p.next()

		rhs := p.parseArith()
		lhs = p.makeBinaryOp(opTok, lhs, rhs)
	}

	return lhs
}

// parseArith parses an additive expression.
//
// arith = term {('+' | '-') term}
func (p *Parser) parseArith() ast.Expr {
	lhs := p.parseTerm()

	for p.gotOneOf(TOK_PLUS, TOK_MINUS) {
		opTok := p.tok
		p.next()

		rhs := p.parseTerm()
		lhs = p.makeBinaryOp(opTok, lhs, rhs)
	}

	return lhs
}

// parseTerm parses a multiplicative expression.
//
// term = factor {('*' | '/') factor}
func (p *Parser) parseTerm() ast.Expr {
	lhs := p.parseFactor()

	for p.gotOneOf(TOK_STAR, TOK_DIV) {
		opTok := p.tok
		p.next()

		rhs := p.parseFactor()
		lhs = p.makeBinaryOp(opTok, lhs, rhs)
	}

	return lhs
}

// parseFactor parses a unary expression.
//
// factor = ('+' | '-' | '!') factor | atom
func (p *Parser) parseFactor() ast.Expr {
	if p.gotOneOf(TOK_PLUS, TOK_MINUS, TOK_NOT) {
		opTok := p.tok
		p.next()

		operand := p.parseFactor()

		return &ast.UnaryOp{
			ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOver(opTok.Span, operand.Span())},
			Op:       opTok.Value,
			Operand:  operand,
		}
	}

	return p.parseAtom()
}

// parseAtom parses an atomic expression.
//
// atom = 'NUMBER' | 'CHARLIT' | 'IDENT' ['(' [expr {',' expr}] ')'] | '(' expr ')'
func (p *Parser) parseAtom() ast.Expr {
	switch p.tok.Kind {
	case TOK_NUMBER:
		tok := p.tok
		p.next()

		return &ast.NumberLit{
			ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOn(tok.Span)},
			Text:     tok.Value,
		}
	case TOK_CHARLIT:
		tok := p.tok
		p.next()

		return &ast.CharLit{
			ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOn(tok.Span)},
			Value:    []rune(tok.Value)[0],
		}
	case TOK_IDENT:
		tok := p.tok
		p.next()

		if p.got(TOK_LPAREN) {
			return p.parseCallRest(tok)
		}

		return &ast.Identifier{
			ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOn(tok.Span)},
			Name:     tok.Value,
		}
	case TOK_LPAREN:
		p.next()

		expr := p.parseExpr()
		p.want(TOK_RPAREN)
		return expr
	default:
		p.reject(TOK_NUMBER)

		// unreachable
		return nil
	}
}

// parseCallRest parses the argument list of a function call after its name
// and with the parser centered on the `(`.  Function calls are rejected later
// by the walker; parsing them here keeps the error a language-support error
// rather than a syntax error.
func (p *Parser) parseCallRest(nameTok *Token) ast.Expr {
	p.want(TOK_LPAREN)

	var args []ast.Expr
	for !p.got(TOK_RPAREN) {
		if len(args) > 0 {
			p.want(TOK_COMMA)
		}

		args = append(args, p.parseExpr())
	}

	endTok := p.want(TOK_RPAREN)

	return &ast.FuncCall{
		ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOver(nameTok.Span, endTok.Span)},
		Name:     nameTok.Value,
		Args:     args,
	}
}

// makeBinaryOp builds a binary operator node spanning its two operands.
func (p *Parser) makeBinaryOp(opTok *Token, lhs, rhs ast.Expr) ast.Expr {
	return &ast.BinaryOp{
		ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOver(lhs.Span(), rhs.Span())},
		Op:       opTok.Value,
		OpSpan:   opTok.Span,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}
