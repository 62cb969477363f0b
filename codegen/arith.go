package codegen

import "strings"

// Move drains src into dst: dst receives src's value, src is left at zero.
// Moving a cell onto itself is a no-op.
func (g *Generator) Move(src, dst int) string {
	if src == dst {
		return ""
	}

	var b strings.Builder
	b.WriteString(g.Clear(dst))

	b.WriteString(g.MoveTo(src))
	b.WriteString("[")
	b.WriteString(g.Minus(1))
	b.WriteString(g.MoveTo(dst))
	b.WriteString(g.Plus(1))
	b.WriteString(g.MoveTo(src))
	b.WriteString("]")

	return b.String()
}

// Copy copies src into dst without destroying src, using one scratch cell:
// src is drained into dst and scratch together, then scratch is drained back
// into src.  Net effect: dst holds the original value, src is restored, and
// scratch returns to zero.
func (g *Generator) Copy(src, dst, scratch int) string {
	requireDistinct("Copy", src, dst, scratch)

	var b strings.Builder
	b.WriteString(g.Clear(dst))
	b.WriteString(g.Clear(scratch))

	b.WriteString(g.MoveTo(src))
	b.WriteString("[")
	b.WriteString(g.Minus(1))
	b.WriteString(g.MoveTo(dst))
	b.WriteString(g.Plus(1))
	b.WriteString(g.MoveTo(scratch))
	b.WriteString(g.Plus(1))
	b.WriteString(g.MoveTo(src))
	b.WriteString("]")

	b.WriteString(g.MoveTo(scratch))
	b.WriteString("[")
	b.WriteString(g.Minus(1))
	b.WriteString(g.MoveTo(src))
	b.WriteString(g.Plus(1))
	b.WriteString(g.MoveTo(scratch))
	b.WriteString("]")

	return b.String()
}

// Add computes dst = a + b (unsigned, wrapping) using two scratch cells.
func (g *Generator) Add(a, b, dst, t1, t2 int) string {
	requireDistinct("Add", a, b, dst, t1, t2)

	var sb strings.Builder
	sb.WriteString(g.Clear(dst))
	sb.WriteString(g.Copy(a, dst, t1))
	sb.WriteString(g.Copy(b, t2, t1))

	// Drain t2 into dst.
	sb.WriteString(g.MoveTo(t2))
	sb.WriteString("[")
	sb.WriteString(g.MoveTo(dst))
	sb.WriteString(g.Plus(1))
	sb.WriteString(g.MoveTo(t2))
	sb.WriteString(g.Minus(1))
	sb.WriteString("]")

	return sb.String()
}

// Sub computes dst = a - b (unsigned, wrapping below zero) using two scratch
// cells.
func (g *Generator) Sub(a, b, dst, t1, t2 int) string {
	requireDistinct("Sub", a, b, dst, t1, t2)

	var sb strings.Builder
	sb.WriteString(g.Clear(dst))
	sb.WriteString(g.Copy(a, dst, t1))
	sb.WriteString(g.Copy(b, t2, t1))

	// Drain t2, decrementing dst once per step.
	sb.WriteString(g.MoveTo(t2))
	sb.WriteString("[")
	sb.WriteString(g.MoveTo(dst))
	sb.WriteString(g.Minus(1))
	sb.WriteString(g.MoveTo(t2))
	sb.WriteString(g.Minus(1))
	sb.WriteString("]")

	return sb.String()
}
