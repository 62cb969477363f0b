package ir

import "strings"

// Decl is a scalar variable declaration.  The symbol's address was assigned by
// the walk; emission either zero-initializes the cell or materializes the
// initializer directly into it.
type Decl struct {
	Addr int

	// The initializer.  This may be nil.
	Init Expr
}

func (d *Decl) Emit(ctx *Context) string {
	if d.Init == nil {
		return ctx.Gen.Set(d.Addr, 0)
	}

	return d.Init.EmitTo(ctx, d.Addr)
}

// Assign materializes a value directly into a resolved target address.
type Assign struct {
	Addr  int
	Value Expr
}

func (a *Assign) Emit(ctx *Context) string {
	return a.Value.EmitTo(ctx, a.Addr)
}

// Block is a statement sequence.  Its scope bookkeeping was fully resolved
// during the walk; by emission time only the statements remain.
type Block struct {
	Stmts []Stmt
}

func (b *Block) Emit(ctx *Context) string {
	var sb strings.Builder
	for _, stmt := range b.Stmts {
		sb.WriteString(stmt.Emit(ctx))
	}

	return sb.String()
}

// If is a structured conditional.  The condition result and the two guard
// cells its encoding requires are leased for exactly the duration of this
// statement's emission.
type If struct {
	Cond Expr
	Then Stmt

	// The else branch.  This may be nil.
	Else Stmt
}

func (i *If) Emit(ctx *Context) string {
	var b strings.Builder

	result := ctx.Mem.LeaseTemp()
	t1 := ctx.Mem.LeaseTemp()
	t2 := ctx.Mem.LeaseTemp()

	b.WriteString(i.Cond.EmitTo(ctx, result))

	var elseBody func() string
	if i.Else != nil {
		elseBody = func() string { return i.Else.Emit(ctx) }
	}

	b.WriteString(ctx.Gen.IfElse(result, func() string { return i.Then.Emit(ctx) }, elseBody, t1, t2))

	ctx.Mem.ReturnTemp(t2)
	ctx.Mem.ReturnTemp(t1)
	ctx.Mem.ReturnTemp(result)

	return b.String()
}

// While is a condition-rechecking loop: the condition expression's code is
// re-emitted into a leased result cell before the first iteration and at the
// end of every iteration.
type While struct {
	Cond Expr
	Body Stmt
}

func (w *While) Emit(ctx *Context) string {
	result := ctx.Mem.LeaseTemp()

	code := ctx.Gen.LoopCond(
		func(dest int) string { return w.Cond.EmitTo(ctx, dest) },
		func() string { return w.Body.Emit(ctx) },
		result,
	)

	ctx.Mem.ReturnTemp(result)

	return code
}

// ExprStmt evaluates an expression for effect only.  The value lands in a
// leased temp that is returned immediately.
type ExprStmt struct {
	X Expr
}

func (e *ExprStmt) Emit(ctx *Context) string {
	dest := ctx.Mem.LeaseTemp()
	code := e.X.EmitTo(ctx, dest)
	ctx.Mem.ReturnTemp(dest)

	return code
}
