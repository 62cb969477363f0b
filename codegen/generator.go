// Package codegen builds instruction sequences for the target tape machine.
// The machine's only primitives are incrementing/decrementing the current
// cell, moving the pointer, a single-entry/single-exit conditional loop, and
// byte I/O; every higher-level operation is encoded here as a finite sequence
// of those primitives over explicit cell addresses.
package codegen

import (
	"strings"

	"github.com/ImGajeed76/bfscript/report"
)

// Generator builds instruction fragments while tracking its own belief about
// the current pointer address.  The tracking is compile-time bookkeeping only,
// but it is load-bearing: every operation emits a minimal absolute move
// relative to the tracked position, so the generator must be the only source
// of pointer-movement instructions in the whole compiler.
type Generator struct {
	// pos is the tape address the pointer will be at when the instructions
	// emitted so far have executed.
	pos int
}

// New creates a new generator with the pointer tracked at address 0.
func New() *Generator {
	return &Generator{}
}

// Pos returns the tracked pointer address.
func (g *Generator) Pos() int {
	return g.pos
}

// -----------------------------------------------------------------------------
// Primitives.  These operate on the current cell; everything below them moves
// the pointer first via MoveTo.

// Plus increments the current cell count times.
func (g *Generator) Plus(count int) string {
	if count <= 0 {
		report.RaiseInternal("Plus called with non-positive count %d", count)
	}

	return strings.Repeat("+", count)
}

// Minus decrements the current cell count times.
func (g *Generator) Minus(count int) string {
	if count <= 0 {
		report.RaiseInternal("Minus called with non-positive count %d", count)
	}

	return strings.Repeat("-", count)
}

// Output emits the current cell as one output byte.
func (g *Generator) Output() string {
	return "."
}

// Input reads one input byte into the current cell.
func (g *Generator) Input() string {
	return ","
}

// moveRight moves the pointer right count cells.
func (g *Generator) moveRight(count int) string {
	if count <= 0 {
		report.RaiseInternal("moveRight called with non-positive count %d", count)
	}

	g.pos += count
	return strings.Repeat(">", count)
}

// moveLeft moves the pointer left count cells.
func (g *Generator) moveLeft(count int) string {
	if count <= 0 {
		report.RaiseInternal("moveLeft called with non-positive count %d", count)
	}

	g.pos -= count
	return strings.Repeat("<", count)
}

// MoveTo moves the pointer to the given absolute address, emitting the signed
// delta from the tracked position.
func (g *Generator) MoveTo(cell int) string {
	delta := cell - g.pos

	switch {
	case delta > 0:
		return g.moveRight(delta)
	case delta < 0:
		return g.moveLeft(-delta)
	default:
		return ""
	}
}

// -----------------------------------------------------------------------------
// Basic cell operations.

// Clear zeroes a cell using a self-decrementing loop.  The loop terminates
// because an unsigned cell decremented repeatedly eventually reaches zero.
func (g *Generator) Clear(cell int) string {
	return g.MoveTo(cell) + "[-]"
}

// maxSetValue bounds the literals Set will encode.  A literal is emitted as
// one increment instruction per unit, so a wide-cell constant above this bound
// would produce a multi-gigabyte artifact.
const maxSetValue = 1<<31 - 1

// Set stores a literal into a cell: clear, then increment by the literal.
// Literals above the emission bound are a user-facing arithmetic error, since
// they arise only from constant expressions the user wrote.
func (g *Generator) Set(cell int, value uint64) string {
	if value > maxSetValue {
		report.Raise(
			nil,
			report.ErrArithmetic,
			"constant %d is too large to encode as cell increments",
			value,
		)
	}

	var b strings.Builder
	b.WriteString(g.Clear(cell))
	if value > 0 {
		b.WriteString(g.Plus(int(value)))
	}

	return b.String()
}

// -----------------------------------------------------------------------------

// distinctCells returns whether all the given cell addresses are pairwise
// distinct.
func distinctCells(cells ...int) bool {
	seen := make(map[int]struct{}, len(cells))
	for _, cell := range cells {
		if _, ok := seen[cell]; ok {
			return false
		}

		seen[cell] = struct{}{}
	}

	return true
}

// requireDistinct fails fast if any of the given cells collide.  Non-distinct
// cell arguments would generate silently-wrong code, so a collision is always
// a compiler bug.
func requireDistinct(op string, cells ...int) {
	if !distinctCells(cells...) {
		report.RaiseInternal("%s called with non-distinct cell arguments %v", op, cells)
	}
}
