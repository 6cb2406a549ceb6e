// Package describe renders human-readable descriptions of registry types,
// e.g. `Account { id: u32, friends: Vec<Account> }`. Descriptions are
// derived through a transform session: wrapper shapes unroll around cycles,
// while a recursive composite or variant breaks the cycle by collapsing to
// its bare type name.
package describe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scalemeta/scalemeta/internal/transform"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// Description returns a single-line description of the given type.
func Description(reg *typemeta.Registry, id typemeta.TypeID) (string, error) {
	tr := transform.New(reg, computeDescription, breakCycleWithName, nil, struct{}{})
	return tr.Resolve(id)
}

// FormattedDescription returns an indented, multi-line description.
func FormattedDescription(reg *typemeta.Registry, id typemeta.TypeID) (string, error) {
	s, err := Description(reg, id)
	if err != nil {
		return "", err
	}
	return format(s), nil
}

// breakCycleWithName lets wrapper shapes keep unrolling and answers a
// recursive named type with just its name. Unnamed non-wrapper cycles have
// no finite description.
func breakCycleWithName(id typemeta.TypeID, ty *typemeta.Type, _ *transform.Transformer[string, struct{}]) (string, bool, error) {
	if ty.Def.IsWrapper() {
		return "", false, nil
	}
	if ident := ty.Path.Ident(); ident != "" {
		return ident, true, nil
	}
	return "", true, &transform.CycleError{ID: id, Path: ty.Path.String()}
}

func computeDescription(id typemeta.TypeID, ty *typemeta.Type, tr *transform.Transformer[string, struct{}]) (string, error) {
	def := &ty.Def
	switch {
	case def.Primitive != nil:
		return string(*def.Primitive), nil

	case def.Composite != nil:
		name := ty.Path.Ident()
		if name == "" {
			name = "struct"
		}
		return compositeDescription(id, name, "", def.Composite.Fields, tr)

	case def.Variant != nil:
		name := ty.Path.Ident()
		if name == "" {
			name = "enum"
		}
		if len(def.Variant.Variants) == 0 {
			return name, nil
		}
		arms := make([]string, 0, len(def.Variant.Variants))
		for _, v := range def.Variant.Variants {
			arm, err := compositeDescription(id, v.Name, v.Name, v.Fields, tr)
			if err != nil {
				return "", err
			}
			arms = append(arms, arm)
		}
		return name + " { " + strings.Join(arms, ", ") + " }", nil

	case def.Sequence != nil:
		elem, err := tr.Resolve(def.Sequence.Type)
		if err != nil {
			return "", err
		}
		return "Vec<" + elem + ">", nil

	case def.Array != nil:
		elem, err := tr.Resolve(def.Array.Type)
		if err != nil {
			return "", err
		}
		return "[" + elem + "; " + strconv.FormatUint(uint64(def.Array.Len), 10) + "]", nil

	case def.Tuple != nil:
		elems := make([]string, 0, len(*def.Tuple))
		for _, el := range *def.Tuple {
			s, err := tr.Resolve(el)
			if err != nil {
				return "", err
			}
			elems = append(elems, s)
		}
		return "(" + strings.Join(elems, ", ") + ")", nil

	case def.Compact != nil:
		inner, err := tr.Resolve(def.Compact.Type)
		if err != nil {
			return "", err
		}
		return "Compact<" + inner + ">", nil

	case def.BitSequence != nil:
		store, err := tr.Resolve(def.BitSequence.BitStoreType)
		if err != nil {
			return "", err
		}
		order, err := tr.Resolve(def.BitSequence.BitOrderType)
		if err != nil {
			return "", err
		}
		return "BitSequence<" + store + ", " + order + ">", nil

	default:
		return "", fmt.Errorf("type %d has no valid definition", id)
	}
}

// compositeDescription renders a name plus its fields: named fields braced
// (`Name { a: u32 }`), unnamed fields parenthesized (`Name(u32)`), no
// fields at all just the name. variant is non-empty when the fields belong
// to a variant arm, for error attribution.
func compositeDescription(id typemeta.TypeID, name, variant string, fields []typemeta.Field, tr *transform.Transformer[string, struct{}]) (string, error) {
	if len(fields) == 0 {
		return name, nil
	}
	named, err := typemeta.CheckFields(id, fields)
	if err != nil {
		return "", &typemeta.InvalidFieldsError{ID: id, Variant: variant}
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		fieldDesc, err := tr.Resolve(f.Type)
		if err != nil {
			return "", err
		}
		if named {
			parts = append(parts, f.Name+": "+fieldDesc)
		} else {
			parts = append(parts, fieldDesc)
		}
	}

	if named {
		return name + " { " + strings.Join(parts, ", ") + " }", nil
	}
	return name + "(" + strings.Join(parts, ", ") + ")", nil
}
