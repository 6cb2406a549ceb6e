// Package typeeq decides whether two registry types are structurally
// identical, even when they sit behind different numeric IDs because of
// different generic instantiations. Two types are equal when their paths,
// declared generic-parameter names, and shapes all line up, treating type
// IDs that occupy the same generic-parameter position as interchangeable.
package typeeq

import (
	"fmt"

	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// Equal reports whether types a and b denote the same shape once
// generic-parameter positions are accounted for. It is reflexive and
// symmetric, and never fails: both IDs must already be known to exist in
// the registry, and a missing ID is a programming error (panic).
func Equal(a, b typemeta.TypeID, reg *typemeta.Registry) bool {
	cmp := &comparer{
		reg:      reg,
		aVisited: make(map[typemeta.TypeID]struct{}),
		bVisited: make(map[typemeta.TypeID]struct{}),
	}
	return cmp.typesEqual(a, nil, b, nil)
}

// comparer carries the per-comparison state: one visited set per side, so
// that the two recursion structures can be checked against each other.
type comparer struct {
	reg      *typemeta.Registry
	aVisited map[typemeta.TypeID]struct{}
	bVisited map[typemeta.TypeID]struct{}
}

func (c *comparer) typesEqual(a typemeta.TypeID, aScope *scopeChain, b typemeta.TypeID, bScope *scopeChain) bool {
	// IDs are the same; types must be identical.
	if a == b {
		return true
	}

	// Make note of these IDs in case we recurse and see them again.
	seenA := c.visit(c.aVisited, a)
	seenB := c.visit(c.bVisited, b)

	// One side is recursive at this position and the other isn't; the
	// recursion structures differ, so the types do too.
	if seenA != seenB {
		return false
	}

	// Both sides are recursive. Everything on the way here has already been
	// checked without contradiction, so assume the cycles are consistent.
	if seenA && seenB {
		return true
	}

	// If both IDs occupy the same generic-parameter position, they are the
	// same generic slot regardless of the concrete types bound to it
	// (Wrapper<u32> and Wrapper<bool> agree on the slot). If they don't,
	// keep checking the other properties.
	aIdx, aOK := aScope.indexOf(a)
	bIdx, bOK := bScope.indexOf(b)
	if aOK && bOK && aIdx == bIdx {
		return true
	}

	aTy := c.resolve(a)
	bTy := c.resolve(b)

	if !aTy.Path.Equal(bTy.Path) {
		return false
	}

	// Names of declared generic parameters must line up pairwise.
	for i := 0; i < len(aTy.Params) && i < len(bTy.Params); i++ {
		if aTy.Params[i].Name != bTy.Params[i].Name {
			return false
		}
	}

	// Scopes are only extended once the shapes are known to match up,
	// with each side's own declared parameters.
	extend := func() (*scopeChain, *scopeChain) {
		return aScope.extend(aTy.Params), bScope.extend(bTy.Params)
	}

	aDef, bDef := &aTy.Def, &bTy.Def
	switch {
	case aDef.Composite != nil && bDef.Composite != nil:
		ap, bp := extend()
		return c.fieldsEqual(aDef.Composite.Fields, ap, bDef.Composite.Fields, bp)

	case aDef.Variant != nil && bDef.Variant != nil:
		av, bv := aDef.Variant.Variants, bDef.Variant.Variants
		if len(av) != len(bv) {
			return false
		}
		ap, bp := extend()
		for i := range av {
			if av[i].Name != bv[i].Name || av[i].Index != bv[i].Index {
				return false
			}
			if !c.fieldsEqual(av[i].Fields, ap, bv[i].Fields, bp) {
				return false
			}
		}
		return true

	case aDef.Sequence != nil && bDef.Sequence != nil:
		ap, bp := extend()
		return c.typesEqual(aDef.Sequence.Type, ap, bDef.Sequence.Type, bp)

	case aDef.Array != nil && bDef.Array != nil:
		if aDef.Array.Len != bDef.Array.Len {
			return false
		}
		ap, bp := extend()
		return c.typesEqual(aDef.Array.Type, ap, bDef.Array.Type, bp)

	case aDef.Tuple != nil && bDef.Tuple != nil:
		at, bt := *aDef.Tuple, *bDef.Tuple
		if len(at) != len(bt) {
			return false
		}
		ap, bp := extend()
		for i := range at {
			if !c.typesEqual(at[i], ap, bt[i], bp) {
				return false
			}
		}
		return true

	case aDef.Primitive != nil && bDef.Primitive != nil:
		return *aDef.Primitive == *bDef.Primitive

	case aDef.Compact != nil && bDef.Compact != nil:
		ap, bp := extend()
		return c.typesEqual(aDef.Compact.Type, ap, bDef.Compact.Type, bp)

	case aDef.BitSequence != nil && bDef.BitSequence != nil:
		ap, bp := extend()
		return c.typesEqual(aDef.BitSequence.BitStoreType, ap, bDef.BitSequence.BitStoreType, bp) &&
			c.typesEqual(aDef.BitSequence.BitOrderType, ap, bDef.BitSequence.BitOrderType, bp)

	default:
		// Shape tags don't match; the types aren't the same.
		return false
	}
}

// fieldsEqual checks that two field lists match: same length, and each
// pair agrees on name, declared type-name literal, and field type.
func (c *comparer) fieldsEqual(a []typemeta.Field, aScope *scopeChain, b []typemeta.Field, bScope *scopeChain) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].TypeName != b[i].TypeName {
			return false
		}
		if !c.typesEqual(a[i].Type, aScope, b[i].Type, bScope) {
			return false
		}
	}
	return true
}

// visit inserts id into the set and reports whether it was already present.
func (c *comparer) visit(set map[typemeta.TypeID]struct{}, id typemeta.TypeID) bool {
	if _, ok := set[id]; ok {
		return true
	}
	set[id] = struct{}{}
	return false
}

func (c *comparer) resolve(id typemeta.TypeID) *typemeta.Type {
	ty, ok := c.reg.Resolve(id)
	if !ok {
		panic(fmt.Sprintf("typeeq: type %d missing from registry", id))
	}
	return ty
}

// scopeChain tracks where generic parameters are bound, one immutable link
// per nesting level, so that different type IDs can be recognized as the
// same generic slot. Links are shared between the branches of a recursive
// descent and only ever extended, never copied or mutated.
type scopeChain struct {
	prev     *scopeChain
	startIdx int
	ids      []typemeta.TypeID
}

// indexOf returns the unique position of a bound generic parameter whose
// concrete type is id, searching this link first and then its ancestors.
// A nil chain is the empty scope.
func (s *scopeChain) indexOf(id typemeta.TypeID) (int, bool) {
	if s == nil {
		return 0, false
	}
	for i, bound := range s.ids {
		if bound == id {
			return s.startIdx + i, true
		}
	}
	return s.prev.indexOf(id)
}

// extend appends one nesting level holding the bound IDs of the given
// declared parameters. Unbound parameters occupy no slot.
func (s *scopeChain) extend(params []typemeta.TypeParam) *scopeChain {
	ids := make([]typemeta.TypeID, 0, len(params))
	for _, p := range params {
		if p.Type != nil {
			ids = append(ids, *p.Type)
		}
	}
	start := 0
	if s != nil {
		start = s.startIdx + len(s.ids)
	}
	return &scopeChain{prev: s, startIdx: start, ids: ids}
}
