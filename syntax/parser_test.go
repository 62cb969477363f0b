package syntax

import (
	"testing"

	"github.com/ImGajeed76/bfscript/ast"
	"github.com/ImGajeed76/bfscript/report"
)

// parse parses the source and converts any syntax error panic into an
// ordinary error.
func parse(src string) (stmts []ast.Stmt, err error) {
	defer report.CatchErrors(&err)

	stmts = NewParser(src).Parse()
	return
}

// mustParse parses the source, failing the test on a syntax error.
func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()

	stmts, err := parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	return stmts
}

// expectSyntaxError asserts that the source fails to parse with a syntax
// error.
func expectSyntaxError(t *testing.T, src string) {
	t.Helper()

	_, err := parse(src)
	if err == nil {
		t.Fatalf("expected a syntax error for %q", src)
	}

	cerr, ok := err.(*report.CompileError)
	if !ok || cerr.Category != report.ErrSyntax {
		t.Errorf("expected a syntax error for %q, got %v", src, err)
	}
}

// -----------------------------------------------------------------------------

func TestParseVarDecl(t *testing.T) {
	stmts := mustParse(t, "size_t a = 5;")

	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}

	decl, ok := stmts[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected a variable declaration, got %T", stmts[0])
	}

	if decl.Name != "a" {
		t.Errorf("expected name \"a\", got %q", decl.Name)
	}

	lit, ok := decl.Init.(*ast.NumberLit)
	if !ok || lit.Text != "5" {
		t.Errorf("expected initializer literal 5, got %v", decl.Init)
	}
}

func TestParseVarDeclWithoutInit(t *testing.T) {
	stmts := mustParse(t, "size_t a;")

	decl := stmts[0].(*ast.VarDecl)
	if decl.Init != nil {
		t.Errorf("expected no initializer, got %v", decl.Init)
	}
}

func TestParseAssignVersusExprStmt(t *testing.T) {
	stmts := mustParse(t, "a = b + 1; a + 1;")

	if _, ok := stmts[0].(*ast.Assign); !ok {
		t.Errorf("expected an assignment, got %T", stmts[0])
	}

	if _, ok := stmts[1].(*ast.ExprStmt); !ok {
		t.Errorf("expected an expression statement, got %T", stmts[1])
	}
}

func TestParseIfElseChain(t *testing.T) {
	stmts := mustParse(t, `
		if (a > b) { x = 1; }
		else if (a == b) { x = 2; }
		else { x = 3; }
	`)

	outer, ok := stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected an if statement, got %T", stmts[0])
	}

	if outer.Else == nil || len(outer.Else.Stmts) != 1 {
		t.Fatal("expected the else-if to desugar into a one-statement else block")
	}

	inner, ok := outer.Else.Stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected a nested if statement, got %T", outer.Else.Stmts[0])
	}

	if inner.Else == nil || len(inner.Else.Stmts) != 1 {
		t.Error("expected the final else block on the nested if")
	}
}

func TestParseWhileLoop(t *testing.T) {
	stmts := mustParse(t, "while (i < 5) { i = i + 1; }")

	loop, ok := stmts[0].(*ast.WhileLoop)
	if !ok {
		t.Fatalf("expected a while loop, got %T", stmts[0])
	}

	cond, ok := loop.Cond.(*ast.BinaryOp)
	if !ok || cond.Op != "<" {
		t.Errorf("expected a `<` condition, got %v", loop.Cond)
	}

	if len(loop.Body.Stmts) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(loop.Body.Stmts))
	}
}

func TestParseNestedBlocks(t *testing.T) {
	stmts := mustParse(t, "{ size_t a; { size_t b; } }")

	outer := stmts[0].(*ast.Block)
	if len(outer.Stmts) != 2 {
		t.Fatalf("expected 2 statements in the outer block, got %d", len(outer.Stmts))
	}

	if _, ok := outer.Stmts[1].(*ast.Block); !ok {
		t.Errorf("expected a nested block, got %T", outer.Stmts[1])
	}
}

// -----------------------------------------------------------------------------

func TestParsePrecedence(t *testing.T) {
	stmts := mustParse(t, "x = 1 + 2 * 3;")

	assign := stmts[0].(*ast.Assign)

	add, ok := assign.Value.(*ast.BinaryOp)
	if !ok || add.Op != "+" {
		t.Fatalf("expected `+` at the root, got %v", assign.Value)
	}

	mul, ok := add.Rhs.(*ast.BinaryOp)
	if !ok || mul.Op != "*" {
		t.Errorf("expected `*` to bind tighter than `+`, got %v", add.Rhs)
	}
}

func TestParseComparisonBindsLoosest(t *testing.T) {
	stmts := mustParse(t, "x = a + 1 < b - 2;")

	assign := stmts[0].(*ast.Assign)

	cmp, ok := assign.Value.(*ast.BinaryOp)
	if !ok || cmp.Op != "<" {
		t.Fatalf("expected `<` at the root, got %v", assign.Value)
	}

	if lhs, ok := cmp.Lhs.(*ast.BinaryOp); !ok || lhs.Op != "+" {
		t.Errorf("expected `+` on the left of `<`, got %v", cmp.Lhs)
	}
}

func TestParseParensOverridePrecedence(t *testing.T) {
	stmts := mustParse(t, "x = (1 + 2) * 3;")

	assign := stmts[0].(*ast.Assign)

	mul, ok := assign.Value.(*ast.BinaryOp)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected `*` at the root, got %v", assign.Value)
	}

	if lhs, ok := mul.Lhs.(*ast.BinaryOp); !ok || lhs.Op != "+" {
		t.Errorf("expected the parenthesized `+` on the left, got %v", mul.Lhs)
	}
}

func TestParseUnaryOperators(t *testing.T) {
	stmts := mustParse(t, "x = -5; y = !a;")

	neg := stmts[0].(*ast.Assign).Value.(*ast.UnaryOp)
	if neg.Op != "-" {
		t.Errorf("expected unary `-`, got %q", neg.Op)
	}

	not := stmts[1].(*ast.Assign).Value.(*ast.UnaryOp)
	if not.Op != "!" {
		t.Errorf("expected unary `!`, got %q", not.Op)
	}
}

func TestParseCharLitExpr(t *testing.T) {
	stmts := mustParse(t, "x = 'A';")

	lit := stmts[0].(*ast.Assign).Value.(*ast.CharLit)
	if lit.Value != 'A' {
		t.Errorf("expected character value 'A', got %q", lit.Value)
	}
}

// -----------------------------------------------------------------------------

// The declared-but-unsupported constructs must parse cleanly so the walker
// can reject them with a support error instead of a syntax error.

func TestParseStackForms(t *testing.T) {
	stmts := mustParse(t, "stack s[10]; push(s, 5); pop(s);")

	if _, ok := stmts[0].(*ast.StackDecl); !ok {
		t.Errorf("expected a stack declaration, got %T", stmts[0])
	}

	if _, ok := stmts[1].(*ast.PushStmt); !ok {
		t.Errorf("expected a push statement, got %T", stmts[1])
	}

	if _, ok := stmts[2].(*ast.PopStmt); !ok {
		t.Errorf("expected a pop statement, got %T", stmts[2])
	}
}

func TestParseFuncDefAndCall(t *testing.T) {
	stmts := mustParse(t, "size_t add(size_t a, size_t b) { return; } x = add(1, 2);")

	def, ok := stmts[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected a function definition, got %T", stmts[0])
	}

	if len(def.Params) != 2 || def.Params[0] != "a" || def.Params[1] != "b" {
		t.Errorf("expected params [a b], got %v", def.Params)
	}

	call, ok := stmts[1].(*ast.Assign).Value.(*ast.FuncCall)
	if !ok {
		t.Fatalf("expected a call expression, got %T", stmts[1].(*ast.Assign).Value)
	}

	if call.Name != "add" || len(call.Args) != 2 {
		t.Errorf("expected call add with 2 args, got %s with %d", call.Name, len(call.Args))
	}
}

// -----------------------------------------------------------------------------

func TestParseErrors(t *testing.T) {
	expectSyntaxError(t, "size_t a = 5")           // missing semicolon
	expectSyntaxError(t, "size_t = 5;")            // missing name
	expectSyntaxError(t, "if a > b { }")           // missing parens
	expectSyntaxError(t, "while (a) x = 1;")       // missing block braces
	expectSyntaxError(t, "x = (1 + 2;")            // unclosed paren
	expectSyntaxError(t, "x = ;")                  // missing expression
	expectSyntaxError(t, "{ size_t a; ")           // unclosed block
}
