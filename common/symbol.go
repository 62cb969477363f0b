package common

import (
	"github.com/ImGajeed76/bfscript/report"
)

// Symbol represents a named entity in a BrainfuckScript program.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The symbol's kind.  This must be one of the enumerated symbol kinds.
	Kind int

	// The tape address of the symbol's storage, assigned when the symbol is
	// defined.
	Addr int

	// The number of cells the symbol occupies.
	Size int

	// Whether or not the symbol's storage has been initialized.
	Initialized bool

	// Where the symbol was defined.
	DefSpan *report.TextSpan
}

// Enumeration of symbol kinds.  Only scalars are implemented: stacks and
// functions are declared language features the compiler must recognize and
// reject, never silently miscompile.
const (
	KindScalar = iota
	KindStack
	KindFunc
)

// KindName returns the human-readable name of a symbol kind.
func KindName(kind int) string {
	switch kind {
	case KindScalar:
		return "size_t"
	case KindStack:
		return "stack"
	case KindFunc:
		return "function"
	default:
		return "unknown"
	}
}
