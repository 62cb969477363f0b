package ast

import "github.com/ImGajeed76/bfscript/report"

// Stmt is the marker interface for all statement nodes.
type Stmt interface {
	ASTNode
	stmtNode()
}

// StmtBase is the base struct for all statements.
type StmtBase struct {
	ASTBase
}

func (sb StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// VarDecl represents a scalar variable declaration: `size_t name [= init];`.
type VarDecl struct {
	StmtBase

	Name     string
	NameSpan *report.TextSpan

	// The initializer expression.  This may be nil, in which case the
	// variable's cell is zero-initialized.
	Init Expr
}

// Assign represents an assignment statement: `name = value;`.
type Assign struct {
	StmtBase

	Name     string
	NameSpan *report.TextSpan

	Value Expr
}

// IfStmt represents an if statement with an optional else block.
type IfStmt struct {
	StmtBase

	Cond Expr
	Then *Block

	// The else block.  This may be nil.
	Else *Block
}

// WhileLoop represents a while loop.
type WhileLoop struct {
	StmtBase

	Cond Expr
	Body *Block
}

// Block represents a braced sequence of statements with its own lexical scope.
type Block struct {
	StmtBase

	Stmts []Stmt
}

// ExprStmt represents a bare expression used as a statement.
type ExprStmt struct {
	StmtBase

	Expr Expr
}

// -----------------------------------------------------------------------------
// The statements below correspond to declared-but-unsupported language
// features.  The parser accepts them so the walker can reject them with a
// useful message instead of a syntax error.

// StackDecl represents a stack declaration: `stack name[size];`.
type StackDecl struct {
	StmtBase

	Name     string
	NameSpan *report.TextSpan

	Size Expr
}

// PushStmt represents a stack push statement: `push(name, value);`.
type PushStmt struct {
	StmtBase

	Name  string
	Value Expr
}

// PopStmt represents a stack pop statement: `pop(name);`.
type PopStmt struct {
	StmtBase

	Name string
}

// FuncDef represents a function definition.
type FuncDef struct {
	StmtBase

	Name   string
	Params []string
	Body   *Block
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	StmtBase

	// The returned expression.  This may be nil.
	Value Expr
}
