package ast

import "github.com/ImGajeed76/bfscript/report"

// Expr is the marker interface for all expression nodes.
type Expr interface {
	ASTNode
	exprNode()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

func (eb ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

// NumberLit represents an unsigned integer literal.  The literal text is kept
// verbatim: the walker converts it using the configured cell width.
type NumberLit struct {
	ExprBase

	Text string
}

// CharLit represents a single-character literal such as `'a'`.  The stored
// value is the character's code point.
type CharLit struct {
	ExprBase

	Value rune
}

// Identifier represents a name reference: a macro, a variable, or (in
// erroneous programs) a stack or function name.
type Identifier struct {
	ExprBase

	Name string
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// The operator symbol as written: one of `+ - * / == != < > <= >=`.
	Op string

	// The span of the operator token, used for error reporting.
	OpSpan *report.TextSpan

	Lhs, Rhs Expr
}

// UnaryOp represents a prefix operator application: `+`, `-`, or `!`.
type UnaryOp struct {
	ExprBase

	Op      string
	Operand Expr
}

// FuncCall represents a function call expression.  Function calls are not a
// supported language feature: the walker rejects them.
type FuncCall struct {
	ExprBase

	Name string
	Args []Expr
}
