package codegen

import (
	"testing"

	"github.com/ImGajeed76/bfscript/interp"
	"github.com/ImGajeed76/bfscript/report"
)

// run executes generated code on the interpreter and returns the final
// machine state.
func run(t *testing.T, code string) *interp.Interpreter {
	t.Helper()

	it, err := interp.New(code, interp.WithMemorySize(64), interp.WithCellBits(32))
	if err != nil {
		t.Fatalf("generated code rejected: %v", err)
	}

	if err := it.Run(); err != nil {
		t.Fatalf("generated code crashed: %v", err)
	}

	return it
}

// expectCells asserts the final values of consecutive cells starting at 0.
func expectCells(t *testing.T, it *interp.Interpreter, want ...uint64) {
	t.Helper()

	for addr, value := range want {
		if got := it.Cell(addr); got != value {
			t.Errorf("cell %d: expected %d, got %d", addr, value, got)
		}
	}
}

// expectInternal asserts that f raises an internal error.
func expectInternal(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		x := recover()
		if x == nil {
			t.Fatal("expected an internal error, got none")
		}

		if _, ok := x.(*report.InternalError); !ok {
			t.Fatalf("expected an internal error, got panic: %v", x)
		}
	}()

	f()
}

// -----------------------------------------------------------------------------

func TestMoveToEmitsSignedDelta(t *testing.T) {
	g := New()

	if code := g.MoveTo(3); code != ">>>" {
		t.Errorf("expected \">>>\", got %q", code)
	}

	if code := g.MoveTo(1); code != "<<" {
		t.Errorf("expected \"<<\", got %q", code)
	}

	if code := g.MoveTo(1); code != "" {
		t.Errorf("expected no movement for the current cell, got %q", code)
	}

	if g.Pos() != 1 {
		t.Errorf("expected tracked position 1, got %d", g.Pos())
	}
}

func TestSetAndClear(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 5)+g.Set(1, 3)+g.Clear(0))

	expectCells(t, it, 0, 3)
}

func TestSetOverwritesPriorValue(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 200)+g.Set(0, 7))

	expectCells(t, it, 7)
}

func TestSetZero(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 9)+g.Set(0, 0))

	expectCells(t, it, 0)
}

func TestSetRejectsOversizedLiteral(t *testing.T) {
	g := New()

	defer func() {
		x := recover()
		if x == nil {
			t.Fatal("expected an arithmetic error for an un-encodable literal")
		}

		cerr, ok := x.(*report.CompileError)
		if !ok {
			t.Fatalf("expected a compile error, got panic: %v", x)
		}

		if cerr.Category != report.ErrArithmetic {
			t.Errorf("expected an arithmetic error, got category %d", cerr.Category)
		}
	}()

	g.Set(0, ^uint64(0))
}

func TestOutputWritesCurrentCell(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 'A')+g.MoveTo(0)+g.Output())

	if out := it.Output(); out != "A" {
		t.Errorf("expected output \"A\", got %q", out)
	}
}

func TestInputReadsIntoCurrentCell(t *testing.T) {
	g := New()

	// read two bytes into cells 0 and 1, then echo them back in order
	code := g.MoveTo(0) + g.Input()
	code += g.MoveTo(1) + g.Input()
	code += g.MoveTo(0) + g.Output()
	code += g.MoveTo(1) + g.Output()

	it, err := interp.New(code, interp.WithMemorySize(64), interp.WithInput("hi"))
	if err != nil {
		t.Fatalf("generated code rejected: %v", err)
	}

	if err := it.Run(); err != nil {
		t.Fatalf("generated code crashed: %v", err)
	}

	if out := it.Output(); out != "hi" {
		t.Errorf("expected output \"hi\", got %q", out)
	}

	if it.Cell(0) != 'h' || it.Cell(1) != 'i' {
		t.Errorf("expected cells to hold the read bytes, got %d and %d", it.Cell(0), it.Cell(1))
	}
}

func TestPlusMinusRejectNonPositiveCounts(t *testing.T) {
	g := New()
	expectInternal(t, func() { g.Plus(0) })
	expectInternal(t, func() { g.Minus(-2) })
}

// -----------------------------------------------------------------------------

func TestMoveDrainsSource(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 7)+g.Move(0, 1))

	expectCells(t, it, 0, 7)
}

func TestMoveOntoItselfIsNoop(t *testing.T) {
	g := New()

	if code := g.Move(2, 2); code != "" {
		t.Errorf("expected no code for a self move, got %q", code)
	}
}

func TestCopyPreservesSource(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 9)+g.Copy(0, 1, 2))

	expectCells(t, it, 9, 9, 0)
}

func TestCopyOverwritesDestination(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 4)+g.Set(1, 100)+g.Set(2, 100)+g.Copy(0, 1, 2))

	expectCells(t, it, 4, 4, 0)
}

func TestCopyRejectsAliasedCells(t *testing.T) {
	g := New()
	expectInternal(t, func() { g.Copy(0, 0, 1) })
	expectInternal(t, func() { g.Copy(0, 1, 1) })
}

func TestAdd(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 5)+g.Set(1, 10)+g.Add(0, 1, 2, 3, 4))

	expectCells(t, it, 5, 10, 15, 0, 0)
}

func TestSub(t *testing.T) {
	g := New()
	it := run(t, g.Set(0, 10)+g.Set(1, 4)+g.Sub(0, 1, 2, 3, 4))

	expectCells(t, it, 10, 4, 6, 0, 0)
}

func TestSubWrapsBelowZero(t *testing.T) {
	g := New()
	code := g.Set(0, 3) + g.Set(1, 5) + g.Sub(0, 1, 2, 3, 4)

	it, err := interp.New(code, interp.WithMemorySize(64), interp.WithCellBits(8))
	if err != nil {
		t.Fatalf("generated code rejected: %v", err)
	}
	if err := it.Run(); err != nil {
		t.Fatalf("generated code crashed: %v", err)
	}

	if v := it.Cell(2); v != 254 {
		t.Errorf("expected 3 - 5 to wrap to 254 in 8 bit cells, got %d", v)
	}
}
