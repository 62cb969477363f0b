package codegen

import "testing"

func TestLoopCountdown(t *testing.T) {
	g := New()

	// drain cell 0 into cell 1 one step at a time
	code := g.Set(0, 5) + g.Loop(0, func() string {
		body := g.MoveTo(0) + g.Minus(1)
		body += g.MoveTo(1) + g.Plus(1)
		return body
	})

	it := run(t, code)
	expectCells(t, it, 0, 5)
}

func TestLoopSkippedWhenConditionZero(t *testing.T) {
	g := New()

	code := g.Clear(0) + g.Loop(0, func() string {
		return g.Set(1, 99) + g.Clear(0)
	})

	it := run(t, code)
	expectCells(t, it, 0, 0)
}

func TestLoopCondRechecksEachIteration(t *testing.T) {
	g := New()

	// while (cell0 < cell1) { cell0++ } with the condition regenerated into
	// cell 2 before every iteration
	code := g.Set(0, 0) + g.Set(1, 5)
	code += g.LoopCond(
		func(result int) string { return g.Less(0, 1, result, 3, 4, 5, 6) },
		func() string { return g.MoveTo(0) + g.Plus(1) },
		2,
	)

	it := run(t, code)

	if v := it.Cell(0); v != 5 {
		t.Errorf("expected the counter to stop at 5, got %d", v)
	}

	if v := it.Cell(2); v != 0 {
		t.Errorf("expected the final condition value to be 0, got %d", v)
	}
}

func TestLoopCondSkippedWhenInitiallyFalse(t *testing.T) {
	g := New()

	code := g.Set(0, 7) + g.Set(1, 5)
	code += g.LoopCond(
		func(result int) string { return g.Less(0, 1, result, 3, 4, 5, 6) },
		func() string { return g.MoveTo(0) + g.Plus(1) },
		2,
	)

	it := run(t, code)
	expectCells(t, it, 7)
}

// -----------------------------------------------------------------------------

func TestIfElseTakesThenBranch(t *testing.T) {
	g := New()

	code := g.Set(0, 3)
	code += g.IfElse(0,
		func() string { return g.Set(1, 7) },
		func() string { return g.Set(1, 9) },
		2, 3,
	)

	it := run(t, code)
	expectCells(t, it, 3, 7, 0, 0)
}

func TestIfElseTakesElseBranch(t *testing.T) {
	g := New()

	code := g.Clear(0)
	code += g.IfElse(0,
		func() string { return g.Set(1, 7) },
		func() string { return g.Set(1, 9) },
		2, 3,
	)

	it := run(t, code)
	expectCells(t, it, 0, 9, 0, 0)
}

func TestIfWithoutElse(t *testing.T) {
	g := New()

	code := g.Clear(0) + g.Set(1, 1)
	code += g.IfElse(0,
		func() string { return g.Set(1, 7) },
		nil,
		2, 3,
	)

	it := run(t, code)
	expectCells(t, it, 0, 1, 0, 0)
}

func TestIfElsePreservesCondition(t *testing.T) {
	g := New()

	code := g.Set(0, 42)
	code += g.IfElse(0, func() string { return "" }, nil, 1, 2)

	it := run(t, code)
	expectCells(t, it, 42, 0, 0)
}

func TestIfElseRejectsAliasedGuards(t *testing.T) {
	g := New()
	expectInternal(t, func() { g.IfElse(0, func() string { return "" }, nil, 1, 1) })
}
