// Package ir defines the transform's internal representation of program
// constructs.  Every non-constant node carries a deferred "emit into address"
// operation; emission is the second phase of compilation, after the walk has
// resolved all names and addresses.  Nodes are plain tagged variants rather
// than captured closures so every node's contract is explicit and testable in
// isolation.
package ir

import (
	"strings"

	"github.com/ImGajeed76/bfscript/codegen"
	"github.com/ImGajeed76/bfscript/mem"
)

// Context carries the mutable emission state through the IR tree: the
// generator (which owns the tracked pointer position) and the allocator
// (which owns the temp pool).  One context belongs to one compilation.
type Context struct {
	Gen *codegen.Generator
	Mem *mem.Allocator
}

// Expr is an IR node that produces a value.  EmitTo returns the instruction
// sequence that materializes the node's value into the destination cell.  Any
// temp cells leased during emission are returned before EmitTo returns.
type Expr interface {
	EmitTo(ctx *Context, dest int) string
}

// Stmt is an IR node executed for effect.
type Stmt interface {
	Emit(ctx *Context) string
}

// Program is the root IR node: the top-level statements in source order.  Its
// emission output, their concatenation, is the final artifact.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Emit(ctx *Context) string {
	var b strings.Builder
	for _, stmt := range p.Stmts {
		b.WriteString(stmt.Emit(ctx))
	}

	return b.String()
}
