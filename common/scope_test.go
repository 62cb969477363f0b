package common

import (
	"testing"

	"github.com/ImGajeed76/bfscript/mem"
	"github.com/ImGajeed76/bfscript/report"
)

func scalar(name string) *Symbol {
	return &Symbol{Name: name, Kind: KindScalar, Size: 1}
}

func TestDefineAllocatesStorage(t *testing.T) {
	alloc := mem.NewAllocator(2)
	scope := NewScope(alloc, nil)

	sym := scalar("a")
	scope.Define(sym)

	if sym.Addr != 2 {
		t.Errorf("expected storage above the temp pool at 2, got %d", sym.Addr)
	}

	if got := scope.Lookup("a"); got != sym {
		t.Errorf("expected Lookup to return the defined symbol, got %v", got)
	}
}

func TestLocalRedefinitionRaises(t *testing.T) {
	alloc := mem.NewAllocator(2)
	scope := NewScope(alloc, nil)

	scope.Define(scalar("a"))

	defer func() {
		x := recover()
		if x == nil {
			t.Fatal("expected a name error for local redefinition")
		}

		cerr, ok := x.(*report.CompileError)
		if !ok {
			t.Fatalf("expected a compile error, got panic: %v", x)
		}

		if cerr.Category != report.ErrName {
			t.Errorf("expected a name error, got category %d", cerr.Category)
		}
	}()

	scope.Define(scalar("a"))
}

func TestShadowingAncestorAllowed(t *testing.T) {
	alloc := mem.NewAllocator(2)
	root := NewScope(alloc, nil)
	child := NewScope(alloc, root)

	outer := scalar("a")
	root.Define(outer)

	inner := scalar("a")
	child.Define(inner)

	if got := child.Lookup("a"); got != inner {
		t.Error("expected the nearest definition to win in the child scope")
	}

	if got := root.Lookup("a"); got != outer {
		t.Error("expected the root scope to still see its own definition")
	}

	if outer.Addr == inner.Addr {
		t.Error("expected the shadowing symbol to get distinct storage")
	}
}

func TestLookupWalksAncestors(t *testing.T) {
	alloc := mem.NewAllocator(2)
	root := NewScope(alloc, nil)
	mid := NewScope(alloc, root)
	leaf := NewScope(alloc, mid)

	sym := scalar("x")
	root.Define(sym)

	if got := leaf.Lookup("x"); got != sym {
		t.Error("expected lookup to find the symbol through two ancestor levels")
	}

	if leaf.DefinedLocally("x") {
		t.Error("expected DefinedLocally to be false for an inherited name")
	}
}

func TestLookupUndefined(t *testing.T) {
	alloc := mem.NewAllocator(2)
	scope := NewScope(alloc, nil)

	if got := scope.Lookup("nope"); got != nil {
		t.Errorf("expected nil for an undefined name, got %v", got)
	}
}

func TestReleaseAllReleasesOnlyOwnCells(t *testing.T) {
	alloc := mem.NewAllocator(2)
	root := NewScope(alloc, nil)
	child := NewScope(alloc, root)

	kept := scalar("a")
	root.Define(kept)
	child.Define(scalar("b"))

	child.ReleaseAll()

	leaked := alloc.Unreleased()
	if len(leaked) != 1 || leaked[0] != kept.Addr {
		t.Errorf("expected only the parent's cell %d to remain allocated, got %v", kept.Addr, leaked)
	}

	root.ReleaseAll()
	if leaked := alloc.Unreleased(); len(leaked) != 0 {
		t.Errorf("expected no allocated cells after both scopes release, got %v", leaked)
	}
}
