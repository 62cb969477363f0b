package codegen

import "strings"

// There is no primitive equality test on the target machine: equality is
// inferred from whether the unsigned difference of the operands drains to
// zero.  Each comparison pre-assumes one outcome in the destination and
// overwrites it with the opposite outcome if the drained scratch is observed
// non-zero.

// Equal computes dst = (a == b) ? 1 : 0 using two scratch cells.
func (g *Generator) Equal(a, b, dst, t1, t2 int) string {
	requireDistinct("Equal", a, b, dst, t1, t2)

	var sb strings.Builder

	// a - b into t1; dst and t2 serve as the subtraction's scratch space.
	sb.WriteString(g.Sub(a, b, t1, dst, t2))

	// Assume equal.
	sb.WriteString(g.Set(dst, 1))

	// If the difference is non-zero, the operands differ.
	sb.WriteString(g.Loop(t1, func() string {
		var lb strings.Builder
		lb.WriteString(g.Clear(t1))
		lb.WriteString(g.Clear(dst))
		return lb.String()
	}))

	return sb.String()
}

// NotEqual computes dst = (a != b) ? 1 : 0 using two scratch cells.
func (g *Generator) NotEqual(a, b, dst, t1, t2 int) string {
	requireDistinct("NotEqual", a, b, dst, t1, t2)

	var sb strings.Builder
	sb.WriteString(g.Sub(a, b, t1, dst, t2))

	// Assume equal.
	sb.WriteString(g.Clear(dst))

	sb.WriteString(g.Loop(t1, func() string {
		var lb strings.Builder
		lb.WriteString(g.Clear(t1))
		lb.WriteString(g.Set(dst, 1))
		return lb.String()
	}))

	return sb.String()
}

// Not computes dst = (src == 0) ? 1 : 0 using two scratch cells.  The source
// is preserved.
func (g *Generator) Not(src, dst, t1, t2 int) string {
	requireDistinct("Not", src, dst, t1, t2)

	var sb strings.Builder
	sb.WriteString(g.Copy(src, t1, t2))

	// Assume zero.
	sb.WriteString(g.Set(dst, 1))

	sb.WriteString(g.Loop(t1, func() string {
		var lb strings.Builder
		lb.WriteString(g.Clear(t1))
		lb.WriteString(g.Clear(dst))
		return lb.String()
	}))

	return sb.String()
}

// -----------------------------------------------------------------------------
// Ordering.  Working copies of both operands are decremented together in a
// loop until one reaches zero; whichever reaches zero first determines the
// outcome, and simultaneous zero is the equal (not-greater) case.  Both copies
// must end at zero regardless of outcome or later code reading stale scratch
// would be wrong -- the drain loop runs until the first copy empties, and the
// per-step guards stop touching the second copy once it has emptied.

// Greater computes dst = (a > b) ? 1 : 0 using four scratch cells.
func (g *Generator) Greater(a, b, dst, t1, t2, t3, t4 int) string {
	requireDistinct("Greater", a, b, dst, t1, t2, t3, t4)

	var sb strings.Builder

	// Default assumption: not greater (covers the equal case).
	sb.WriteString(g.Clear(dst))

	sb.WriteString(g.Copy(a, t1, t3))
	sb.WriteString(g.Copy(b, t2, t3))

	sb.WriteString(g.Loop(t1, func() string {
		var lb strings.Builder

		// If b's copy has already emptied while a's copy is still non-zero,
		// then a > b.
		lb.WriteString(g.IfElse(t2, func() string { return "" }, func() string {
			var eb strings.Builder
			eb.WriteString(g.Clear(t1))
			eb.WriteString(g.Set(dst, 1))
			return eb.String()
		}, t3, t4))

		// Step both copies down while a's copy remains non-zero.
		lb.WriteString(g.IfElse(t1, func() string {
			var db strings.Builder
			db.WriteString(g.MoveTo(t1))
			db.WriteString(g.Minus(1))
			db.WriteString(g.MoveTo(t2))
			db.WriteString(g.Minus(1))
			return db.String()
		}, nil, t3, t4))

		return lb.String()
	}))

	// When a < b the drain loop exits with b's copy still holding b - a;
	// it must not survive as stale scratch.
	sb.WriteString(g.Clear(t2))

	return sb.String()
}

// Less computes dst = (a < b) ? 1 : 0.  It is Greater with the operands
// swapped.
func (g *Generator) Less(a, b, dst, t1, t2, t3, t4 int) string {
	requireDistinct("Less", a, b, dst, t1, t2, t3, t4)

	return g.Greater(b, a, dst, t1, t2, t3, t4)
}

// LessEqual computes dst = (a <= b) ? 1 : 0 by negating the opposite strict
// comparison: a <= b is !(a > b).
func (g *Generator) LessEqual(a, b, dst, t1, t2, t3, t4 int) string {
	requireDistinct("LessEqual", a, b, dst, t1, t2, t3, t4)

	var sb strings.Builder
	sb.WriteString(g.Greater(a, b, t1, t2, t3, t4, dst))
	sb.WriteString(g.Not(t1, dst, t2, t3))
	sb.WriteString(g.Clear(t1))

	return sb.String()
}

// GreaterEqual computes dst = (a >= b) ? 1 : 0.  It is LessEqual with the
// operands swapped.
func (g *Generator) GreaterEqual(a, b, dst, t1, t2, t3, t4 int) string {
	requireDistinct("GreaterEqual", a, b, dst, t1, t2, t3, t4)

	return g.LessEqual(b, a, dst, t1, t2, t3, t4)
}
