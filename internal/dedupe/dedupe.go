// Package dedupe makes the declared paths in a type registry globally
// unique. Different generic instantiations of one declaration share a path;
// after deduplication, structurally distinct types that collide on a path
// carry a numeric suffix on their final segment, while identical occurrences
// keep sharing the original name.
package dedupe

import (
	"strconv"

	"github.com/scalemeta/scalemeta/internal/typeeq"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// Rename records one path rewrite performed by EnsureUniquePaths.
type Rename struct {
	ID   typemeta.TypeID
	From string
	To   string
}

// EnsureUniquePaths rewrites the registry in place so that every type with
// a namespaced path has a globally unique one, and returns the renames it
// performed. Prelude and built-in types (no namespace) are left untouched.
//
// Types sharing a path are partitioned into shape-equivalence classes using
// structural equality. A path with a single class keeps its name no matter
// how many IDs share it; a path with several classes gets a 1-based suffix
// per class, numbered in the order each class was first encountered
// (e.g. Header1, Header2, Header3).
//
// This must run to completion before any transform session starts, since
// sessions assume paths are already unique.
func EnsureUniquePaths(reg *typemeta.Registry) []Rename {
	// First, group same-path types by shape. Each group holds IDs that
	// compare structurally equal; checking against any one member (the
	// first) is enough, since the group is an equivalence class.
	var pathOrder []string
	groupsByPath := make(map[string][][]typemeta.TypeID)

	for i := range reg.Types {
		id := reg.Types[i].ID
		ty := &reg.Types[i].Type

		if len(ty.Path.Namespace()) == 0 {
			continue
		}

		key := ty.Path.String()
		groups, seen := groupsByPath[key]
		if !seen {
			pathOrder = append(pathOrder, key)
		}

		added := false
		for gi := range groups {
			if typeeq.Equal(id, groups[gi][0], reg) {
				groups[gi] = append(groups[gi], id)
				added = true
				break
			}
		}
		if !added {
			groups = append(groups, []typemeta.TypeID{id})
		}
		groupsByPath[key] = groups
	}

	// Now rename as needed. Only paths with more than one distinct shape
	// class are touched.
	var renames []Rename
	for _, key := range pathOrder {
		groups := groupsByPath[key]
		if len(groups) < 2 {
			continue
		}
		for n, group := range groups {
			suffix := strconv.Itoa(n + 1)
			for _, id := range group {
				ty, ok := reg.Resolve(id)
				if !ok {
					continue
				}
				from := ty.Path.String()
				ty.Path[len(ty.Path)-1] += suffix
				renames = append(renames, Rename{ID: id, From: from, To: ty.Path.String()})
			}
		}
	}
	return renames
}
