package walk

import (
	"github.com/ImGajeed76/bfscript/ast"
	"github.com/ImGajeed76/bfscript/common"
	"github.com/ImGajeed76/bfscript/ir"
	"github.com/ImGajeed76/bfscript/report"
)

// walkStmt walks a statement node and produces its IR.
func (w *Walker) walkStmt(stmt ast.Stmt) ir.Stmt {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		return w.walkVarDecl(v)
	case *ast.Assign:
		return w.walkAssign(v)
	case *ast.IfStmt:
		return w.walkIfStmt(v)
	case *ast.WhileLoop:
		return w.walkWhileLoop(v)
	case *ast.Block:
		return w.walkBlock(v)
	case *ast.ExprStmt:
		return &ir.ExprStmt{X: w.walkExpr(v.Expr)}
	case *ast.StackDecl:
		report.Raise(v.Span(), report.ErrUnsupported, "stack declarations are not supported")
	case *ast.PushStmt:
		report.Raise(v.Span(), report.ErrUnsupported, "stack push statements are not supported")
	case *ast.PopStmt:
		report.Raise(v.Span(), report.ErrUnsupported, "stack pop statements are not supported")
	case *ast.FuncDef:
		report.Raise(v.Span(), report.ErrUnsupported, "function definitions are not supported")
	case *ast.ReturnStmt:
		report.Raise(v.Span(), report.ErrUnsupported, "return statements are not supported")
	default:
		report.RaiseInternal("unknown statement node %T", stmt)
	}

	// unreachable
	return nil
}

// walkVarDecl walks a scalar variable declaration.  The initializer is walked
// before the symbol is defined, so a declaration cannot reference itself.
func (w *Walker) walkVarDecl(decl *ast.VarDecl) ir.Stmt {
	var init ir.Expr
	if decl.Init != nil {
		init = w.walkExpr(decl.Init)
	}

	sym := &common.Symbol{
		Name:        decl.Name,
		Kind:        common.KindScalar,
		Size:        1,
		Initialized: true,
		DefSpan:     decl.NameSpan,
	}
	w.currScope.Define(sym)

	return &ir.Decl{Addr: sym.Addr, Init: init}
}

// walkAssign walks an assignment statement.
func (w *Walker) walkAssign(assign *ast.Assign) ir.Stmt {
	sym := w.currScope.Lookup(assign.Name)
	if sym == nil {
		report.Raise(assign.NameSpan, report.ErrName, "`%s` is not defined", assign.Name)
	}

	if sym.Kind != common.KindScalar {
		report.Raise(
			assign.NameSpan,
			report.ErrKind,
			"cannot assign to %s `%s`",
			common.KindName(sym.Kind),
			assign.Name,
		)
	}

	value := w.walkExpr(assign.Value)
	sym.Initialized = true

	return &ir.Assign{Addr: sym.Addr, Value: value}
}

// walkIfStmt walks an if statement.
func (w *Walker) walkIfStmt(stmt *ast.IfStmt) ir.Stmt {
	cond := w.walkExpr(stmt.Cond)
	then := w.walkBlock(stmt.Then)

	var els ir.Stmt
	if stmt.Else != nil {
		els = w.walkBlock(stmt.Else)
	}

	return &ir.If{Cond: cond, Then: then, Else: els}
}

// walkWhileLoop walks a while loop.
func (w *Walker) walkWhileLoop(loop *ast.WhileLoop) ir.Stmt {
	return &ir.While{
		Cond: w.walkExpr(loop.Cond),
		Body: w.walkBlock(loop.Body),
	}
}

// walkBlock walks a braced block in a fresh scope.  The scope's storage is
// released as soon as the walk leaves the block: sibling blocks may reuse the
// same addresses since their runtime lifetimes never overlap.
func (w *Walker) walkBlock(block *ast.Block) ir.Stmt {
	w.enterScope()
	defer w.exitScope()

	irBlock := &ir.Block{}
	for _, stmt := range block.Stmts {
		irBlock.Stmts = append(irBlock.Stmts, w.walkStmt(stmt))
	}

	return irBlock
}
