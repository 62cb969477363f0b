// Package walk transforms the parse tree into IR and drives emission.  The
// walk is bottom-up and single-pass: symbols are resolved and addresses
// assigned as the tree is walked, constants are folded transitively, and the
// resulting IR is emitted into the final instruction string.
package walk

import (
	"github.com/ImGajeed76/bfscript/ast"
	"github.com/ImGajeed76/bfscript/codegen"
	"github.com/ImGajeed76/bfscript/common"
	"github.com/ImGajeed76/bfscript/ir"
	"github.com/ImGajeed76/bfscript/mem"
	"github.com/ImGajeed76/bfscript/report"
)

// DefaultCellBits is the cell width the compiler assumes for its own
// arithmetic reasoning.  The downstream interpreter's width is configured
// independently; keeping the two in agreement is the driver's concern.
const DefaultCellBits = 32

// Config holds the compilation tunables.
type Config struct {
	// The number of reserved temp cells.  Zero selects the default.
	TempPoolSize int

	// The cell width in bits used for constant folding.  Zero selects the
	// default.
	CellBits int
}

// Result is a successful compilation.
type Result struct {
	// The emitted instruction string, composed only of the eight
	// target-machine characters.
	Code string

	// The greatest number of simultaneously leased temp cells observed, so a
	// driver can offer recompilation with a right-sized pool.
	MaxTempsUsed int
}

// Walker holds the state of one transform: the current scope, the allocator,
// the generator, and the macro table.  One walker belongs to exactly one
// compilation; walkers must never be shared or reused.
type Walker struct {
	alloc *mem.Allocator
	gen   *codegen.Generator

	// The name-to-literal macro table produced by preprocessing.
	defines map[string]string

	// The current scope.  Exactly one scope is current at any instant.
	currScope *common.Scope

	// The cell mask for fold-time arithmetic: 2^bits - 1.
	mask uint64
}

// Compile transforms the given top-level statements into an instruction
// string.  It returns either a complete artifact or a categorized compile
// error; never a partial one.
func Compile(stmts []ast.Stmt, defines map[string]string, cfg Config) (res *Result, err error) {
	defer report.CatchErrors(&err)

	if cfg.TempPoolSize == 0 {
		cfg.TempPoolSize = mem.DefaultTempPoolSize
	}
	if cfg.CellBits == 0 {
		cfg.CellBits = DefaultCellBits
	}

	alloc := mem.NewAllocator(cfg.TempPoolSize)

	w := &Walker{
		alloc:     alloc,
		gen:       codegen.New(),
		defines:   defines,
		currScope: common.NewScope(alloc, nil),
		mask:      cellMask(cfg.CellBits),
	}

	prog := &ir.Program{}
	for _, stmt := range stmts {
		prog.Stmts = append(prog.Stmts, w.walkStmt(stmt))
	}

	code := prog.Emit(&ir.Context{Gen: w.gen, Mem: alloc})

	// Top-level storage lives until the program ends; release it now so the
	// allocator can attest that nothing leaked.
	w.currScope.ReleaseAll()

	if leaked := alloc.Unreleased(); len(leaked) != 0 {
		report.RaiseInternal("cells still allocated after compilation: %v", leaked)
	}
	if alloc.LeasedTemps() != 0 {
		report.RaiseInternal("%d temp cells still leased after compilation", alloc.LeasedTemps())
	}

	return &Result{Code: code, MaxTempsUsed: alloc.HighWater()}, nil
}

// cellMask returns the value mask for the given cell width.
func cellMask(bits int) uint64 {
	if bits <= 0 || bits > 64 {
		report.RaiseInternal("unsupported cell width %d", bits)
	}

	if bits == 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(bits)) - 1
}

// -----------------------------------------------------------------------------

// enterScope creates a fresh scope under the current one and makes it current.
func (w *Walker) enterScope() {
	w.currScope = common.NewScope(w.alloc, w.currScope)
}

// exitScope releases every address the current scope allocated and restores
// its parent as current.  Every scope entered during the walk is exited
// exactly once, on every control-flow path out of its block.
func (w *Walker) exitScope() {
	parent := w.currScope.Parent()
	if parent == nil {
		report.RaiseInternal("cannot exit the root scope")
	}

	w.currScope.ReleaseAll()
	w.currScope = parent
}
