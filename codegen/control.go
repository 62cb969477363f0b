package codegen

import "strings"

// BodyFunc produces the instruction sequence for a branch or loop body.  It is
// invoked at the exact point its output will land in the emission stream, so
// the generator's pointer tracking stays consistent through it.
type BodyFunc func() string

// CondFunc re-generates a condition expression's code into the given result
// cell.
type CondFunc func(result int) string

// Loop runs body while the condition cell is non-zero.  The caller's body must
// leave the condition cell updated before each iteration ends; Loop itself
// only moves back to the condition cell and closes the loop.
func (g *Generator) Loop(cond int, body BodyFunc) string {
	var b strings.Builder
	b.WriteString(g.MoveTo(cond))
	b.WriteString("[")
	b.WriteString(body())
	b.WriteString(g.MoveTo(cond))
	b.WriteString("]")

	return b.String()
}

// LoopCond runs body while an arbitrary boolean-producing expression evaluates
// non-zero.  The condition's own code generation is re-run into the result
// cell before the first iteration and again at the end of every iteration,
// giving re-check-before-each-iteration semantics.
func (g *Generator) LoopCond(cond CondFunc, body BodyFunc, result int) string {
	var b strings.Builder
	b.WriteString(cond(result))
	b.WriteString(g.MoveTo(result))
	b.WriteString("[")
	b.WriteString(body())
	b.WriteString(cond(result))
	b.WriteString(g.MoveTo(result))
	b.WriteString("]")

	return b.String()
}

// IfElse branches on a condition cell using two guard cells.  The condition is
// copied into the positive guard; when an else branch is supplied, the
// inverted guard is pre-seeded to 1.  Each branch runs inside a loop that is
// guaranteed to execute at most once because its body clears both guards
// before its single pass ends -- the only conditional primitive the target
// machine offers.  The condition cell itself is preserved.
func (g *Generator) IfElse(cond int, then, els BodyFunc, t1, t2 int) string {
	requireDistinct("IfElse", cond, t1, t2)

	var b strings.Builder

	// t2 is the positive guard, t1 the inverted guard.
	b.WriteString(g.Copy(cond, t2, t1))

	if els != nil {
		b.WriteString(g.Set(t1, 1))
	}

	guarded := func(branch BodyFunc) BodyFunc {
		return func() string {
			var gb strings.Builder
			gb.WriteString(branch())
			gb.WriteString(g.Clear(t1))
			gb.WriteString(g.Clear(t2))
			return gb.String()
		}
	}

	b.WriteString(g.Loop(t2, guarded(then)))

	if els != nil {
		b.WriteString(g.Loop(t1, guarded(els)))
	}

	return b.String()
}
