package common

import (
	"github.com/ImGajeed76/bfscript/mem"
	"github.com/ImGajeed76/bfscript/report"
)

// Scope manages the symbols defined within one lexical region.  Scopes form a
// parent-pointer tree; exactly one scope is current at any instant during a
// compilation, and entry/exit must nest.  Each scope records the addresses it
// personally allocated (not its children's) so it can release exactly those on
// exit.
type Scope struct {
	// The parent scope.  This is nil for the root scope.
	parent *Scope

	// The allocator backing this scope's storage requests.
	alloc *mem.Allocator

	// The symbols defined directly in this scope.
	symbols map[string]*Symbol

	// The addresses this scope allocated.
	cells []int
}

// NewScope creates a new scope under the given parent.  Pass a nil parent to
// create a root scope.
func NewScope(alloc *mem.Allocator, parent *Scope) *Scope {
	return &Scope{
		parent:  parent,
		alloc:   alloc,
		symbols: make(map[string]*Symbol),
	}
}

// Parent returns the parent scope, or nil for the root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// -----------------------------------------------------------------------------

// Define defines a new symbol in this scope and allocates its storage.  A name
// already present directly in this scope is a user-facing name error;
// shadowing an ancestor's name is allowed.
func (s *Scope) Define(sym *Symbol) {
	if _, ok := s.symbols[sym.Name]; ok {
		report.Raise(sym.DefSpan, report.ErrName, "`%s` already defined in this scope", sym.Name)
	}

	if sym.Size <= 0 {
		report.RaiseInternal("symbol `%s` defined with non-positive size %d", sym.Name, sym.Size)
	}

	sym.Addr = s.alloc.Allocate(sym.Size)
	for i := 0; i < sym.Size; i++ {
		s.cells = append(s.cells, sym.Addr+i)
	}

	s.symbols[sym.Name] = sym
}

// Lookup walks from this scope through its ancestors looking for a symbol with
// the given name; the nearest match wins.  It returns nil if the name is
// undefined everywhere.
func (s *Scope) Lookup(name string) *Symbol {
	if sym, ok := s.symbols[name]; ok {
		return sym
	}

	if s.parent != nil {
		return s.parent.Lookup(name)
	}

	return nil
}

// DefinedLocally returns whether the name is defined directly in this scope.
func (s *Scope) DefinedLocally(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

// ReleaseAll releases every address this exact scope allocated.  The symbols
// themselves simply go out of existence with the scope.
func (s *Scope) ReleaseAll() {
	s.alloc.Release(s.cells)
	s.cells = nil
}
