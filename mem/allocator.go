// Package mem tracks which tape addresses are in use during a single
// compilation.  It serves two kinds of storage: long-lived cells for named
// variables, and a reserved low-address pool of short-lived temp cell leases
// used for sub-expression scratch space.
package mem

import (
	"github.com/ImGajeed76/bfscript/report"
)

// DefaultTempPoolSize is the default number of reserved temp cells.  It trades
// headroom before pool exhaustion against emitted-code compactness: a smaller
// pool forces more address reuse and shorter pointer travel.
const DefaultTempPoolSize = 20

// Allocator manages the allocation of memory cells on the tape.  One allocator
// instance belongs to exactly one compilation and must not be shared.
type Allocator struct {
	// reserved is the set of addresses belonging to the temp pool.
	reserved map[int]struct{}

	// pool holds the temp addresses currently available for lease, in lease
	// order.  Returned cells are placed at the front to encourage reuse.
	pool []int

	// allocated is the set of all addresses currently in use, temp pool
	// included.
	allocated map[int]struct{}

	// highWater is the greatest number of simultaneously leased temp cells
	// observed so far.
	highWater int
}

// NewAllocator creates an allocator whose temp pool reserves the addresses
// 0 through poolSize-1.  Named storage is allocated above the pool.
func NewAllocator(poolSize int) *Allocator {
	if poolSize <= 0 {
		report.RaiseInternal("temp pool size must be positive, got %d", poolSize)
	}

	a := &Allocator{
		reserved:  make(map[int]struct{}, poolSize),
		allocated: make(map[int]struct{}, poolSize),
	}

	for addr := 0; addr < poolSize; addr++ {
		a.reserved[addr] = struct{}{}
		a.allocated[addr] = struct{}{}
		a.pool = append(a.pool, addr)
	}

	return a
}

// PoolSize returns the configured temp pool size.
func (a *Allocator) PoolSize() int {
	return len(a.reserved)
}

// -----------------------------------------------------------------------------

// Allocate claims the first run of size consecutive free addresses, scanning
// linearly from address 0, and returns the start address.  This favors
// compactness over scan speed, which is acceptable since target programs are
// small.
func (a *Allocator) Allocate(size int) int {
	if size <= 0 {
		report.RaiseInternal("allocation size must be positive, got %d", size)
	}

	start := 0
	for {
		free := true
		for i := 0; i < size; i++ {
			if _, used := a.allocated[start+i]; used {
				free = false
				start = start + i + 1
				break
			}
		}

		if free {
			break
		}
	}

	for i := 0; i < size; i++ {
		a.allocated[start+i] = struct{}{}
	}

	return start
}

// Release marks the given addresses as free again.
func (a *Allocator) Release(cells []int) {
	for _, cell := range cells {
		delete(a.allocated, cell)
	}
}

// Unreleased returns all addresses outside the reserved temp pool that are
// still marked in use.  After a complete compilation this must be empty.
func (a *Allocator) Unreleased() []int {
	var cells []int
	for cell := range a.allocated {
		if _, isTemp := a.reserved[cell]; !isTemp {
			cells = append(cells, cell)
		}
	}

	return cells
}

// -----------------------------------------------------------------------------

// LeaseTemp checks a cell out of the temp pool.  Leasing from an empty pool is
// a resource-exhaustion failure: the expression being compiled needs more
// scratch cells than the pool provides, and the user must recompile with a
// larger pool.
func (a *Allocator) LeaseTemp() int {
	if len(a.pool) == 0 {
		report.Raise(
			nil,
			report.ErrResource,
			"out of temp cells: expression too complex for a pool of %d (recompile with a larger temp pool)",
			len(a.reserved),
		)
	}

	cell := a.pool[0]
	a.pool = a.pool[1:]

	if leased := len(a.reserved) - len(a.pool); leased > a.highWater {
		a.highWater = leased
	}

	return cell
}

// ReturnTemp checks a leased cell back into the pool.  Returning an address
// that is not part of the reserved pool, or one that is already in the pool,
// indicates a bug in the compiler.
func (a *Allocator) ReturnTemp(cell int) {
	if _, ok := a.reserved[cell]; !ok {
		report.RaiseInternal("cannot return non-temp cell %d to the temp pool", cell)
	}

	for _, pooled := range a.pool {
		if pooled == cell {
			report.RaiseInternal("temp cell %d returned twice", cell)
		}
	}

	// Returned cells go to the front so the next lease reuses the most
	// recently freed address, keeping generated code compact and traceable.
	a.pool = append([]int{cell}, a.pool...)
}

// LeasedTemps returns the number of temp cells currently checked out.
func (a *Allocator) LeasedTemps() int {
	return len(a.reserved) - len(a.pool)
}

// HighWater returns the greatest number of simultaneously leased temp cells
// observed, so a driver can recompile with a right-sized pool.
func (a *Allocator) HighWater() int {
	return a.highWater
}
