package ir

import (
	"strings"

	"github.com/ImGajeed76/bfscript/report"
)

// Const is a value fully known at compile time.  Constant folding guarantees
// that purely-constant expressions reduce to this node and never reach the
// code generator as operation sequences.
type Const struct {
	// The folded value, already wrapped to the configured cell width.
	Value uint64
}

func (c *Const) EmitTo(ctx *Context, dest int) string {
	return ctx.Gen.Set(dest, c.Value)
}

// Load materializes a variable's value into the destination via a
// non-destructive copy, using one leased temp cell for the duration.
type Load struct {
	// The variable's tape address.
	Addr int
}

func (l *Load) EmitTo(ctx *Context, dest int) string {
	// Loading a variable into its own cell (`a = a;`) already holds the value.
	if dest == l.Addr {
		return ""
	}

	scratch := ctx.Mem.LeaseTemp()
	code := ctx.Gen.Copy(l.Addr, dest, scratch)
	ctx.Mem.ReturnTemp(scratch)

	return code
}

// Binary is a binary operator application on at least one non-constant
// operand.  Multiplication and division never appear here: the walker folds
// them on constants and rejects them otherwise.
type Binary struct {
	// The operator symbol: one of `+ - == != < > <= >=`.
	Op string

	Lhs, Rhs Expr
}

func (bin *Binary) EmitTo(ctx *Context, dest int) string {
	var b strings.Builder

	// Materialize both operands into leased cells.
	r1 := ctx.Mem.LeaseTemp()
	r2 := ctx.Mem.LeaseTemp()
	b.WriteString(bin.Lhs.EmitTo(ctx, r1))
	b.WriteString(bin.Rhs.EmitTo(ctx, r2))

	t1 := ctx.Mem.LeaseTemp()
	t2 := ctx.Mem.LeaseTemp()

	switch bin.Op {
	case "+":
		b.WriteString(ctx.Gen.Add(r1, r2, dest, t1, t2))
	case "-":
		b.WriteString(ctx.Gen.Sub(r1, r2, dest, t1, t2))
	case "==":
		b.WriteString(ctx.Gen.Equal(r1, r2, dest, t1, t2))
	case "!=":
		b.WriteString(ctx.Gen.NotEqual(r1, r2, dest, t1, t2))
	default:
		// The ordering operators need two more scratch cells for their
		// working copies.
		t3 := ctx.Mem.LeaseTemp()
		t4 := ctx.Mem.LeaseTemp()

		switch bin.Op {
		case ">":
			b.WriteString(ctx.Gen.Greater(r1, r2, dest, t1, t2, t3, t4))
		case "<":
			b.WriteString(ctx.Gen.Less(r1, r2, dest, t1, t2, t3, t4))
		case ">=":
			b.WriteString(ctx.Gen.GreaterEqual(r1, r2, dest, t1, t2, t3, t4))
		case "<=":
			b.WriteString(ctx.Gen.LessEqual(r1, r2, dest, t1, t2, t3, t4))
		default:
			report.RaiseInternal("unknown binary operator `%s` reached emission", bin.Op)
		}

		ctx.Mem.ReturnTemp(t4)
		ctx.Mem.ReturnTemp(t3)
	}

	ctx.Mem.ReturnTemp(t2)
	ctx.Mem.ReturnTemp(t1)
	ctx.Mem.ReturnTemp(r2)
	ctx.Mem.ReturnTemp(r1)

	return b.String()
}

// Not is logical negation of a non-constant operand: 1 if the operand is 0,
// else 0.
type Not struct {
	Operand Expr
}

func (n *Not) EmitTo(ctx *Context, dest int) string {
	var b strings.Builder

	src := ctx.Mem.LeaseTemp()
	b.WriteString(n.Operand.EmitTo(ctx, src))

	t1 := ctx.Mem.LeaseTemp()
	t2 := ctx.Mem.LeaseTemp()
	b.WriteString(ctx.Gen.Not(src, dest, t1, t2))

	ctx.Mem.ReturnTemp(t2)
	ctx.Mem.ReturnTemp(t1)
	ctx.Mem.ReturnTemp(src)

	return b.String()
}
