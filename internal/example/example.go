// Package example derives example values for registry types. Generation is
// pseudo-random but fully deterministic for a given seed: the generator is
// carried as the transform session's state, so the whole traversal draws
// from one stream.
package example

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/scalemeta/scalemeta/internal/transform"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// words is the pool example strings and chars are drawn from.
var words = []string{"alpha", "beta", "gamma", "delta", "omega", "sigma"}

// Value derives an example value for the given type. The result is built
// from Go maps, slices, strings, numbers, and bools, so it serializes
// directly to JSON. Cyclic non-wrapper types have no finite example and
// yield a transform.CycleError.
func Value(reg *typemeta.Registry, id typemeta.TypeID, seed uint64) (any, error) {
	rng := rand.New(rand.NewPCG(seed, 0x5ca1e))
	tr := transform.New(reg, computeExample, nil, nil, rng)
	return tr.Resolve(id)
}

// JSON derives an example value and renders it as JSON. Map keys are
// serialized in sorted order so equal seeds produce byte-identical output.
func JSON(reg *typemeta.Registry, id typemeta.TypeID, seed uint64, indent bool) (string, error) {
	v, err := Value(reg, id, seed)
	if err != nil {
		return "", err
	}
	opts := []json.Options{json.Deterministic(true)}
	if indent {
		opts = append(opts, jsontext.WithIndent("  "))
	}
	out, err := json.Marshal(v, opts...)
	if err != nil {
		return "", fmt.Errorf("could not serialize example value: %w", err)
	}
	return string(out), nil
}

func computeExample(id typemeta.TypeID, ty *typemeta.Type, tr *transform.Transformer[any, *rand.Rand]) (any, error) {
	rng := tr.State()
	def := &ty.Def
	switch {
	case def.Primitive != nil:
		return primitiveExample(*def.Primitive, rng), nil

	case def.Composite != nil:
		return fieldsExample(id, "", def.Composite.Fields, tr)

	case def.Variant != nil:
		variants := def.Variant.Variants
		if len(variants) == 0 {
			return nil, fmt.Errorf("type %d: variant type with no variants has no example value", id)
		}
		v := variants[rng.IntN(len(variants))]
		if len(v.Fields) == 0 {
			return v.Name, nil
		}
		inner, err := fieldsExample(id, v.Name, v.Fields, tr)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Name: inner}, nil

	case def.Sequence != nil:
		n := rng.IntN(3) + 1
		elems := make([]any, 0, n)
		for i := 0; i < n; i++ {
			el, err := tr.Resolve(def.Sequence.Type)
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
		}
		return elems, nil

	case def.Array != nil:
		n := int(def.Array.Len)
		elems := make([]any, 0, n)
		for i := 0; i < n; i++ {
			el, err := tr.Resolve(def.Array.Type)
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
		}
		return elems, nil

	case def.Tuple != nil:
		elems := make([]any, 0, len(*def.Tuple))
		for _, el := range *def.Tuple {
			v, err := tr.Resolve(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return elems, nil

	case def.Compact != nil:
		return tr.Resolve(def.Compact.Type)

	case def.BitSequence != nil:
		n := rng.IntN(8) + 1
		bits := make([]any, 0, n)
		for i := 0; i < n; i++ {
			bits = append(bits, rng.IntN(2))
		}
		return bits, nil

	default:
		return nil, fmt.Errorf("type %d has no valid definition", id)
	}
}

// fieldsExample builds the value for a field list: an object for named
// fields, the bare inner value for a single unnamed field (newtype), and a
// positional list otherwise.
func fieldsExample(id typemeta.TypeID, variant string, fields []typemeta.Field, tr *transform.Transformer[any, *rand.Rand]) (any, error) {
	if len(fields) == 0 {
		return map[string]any{}, nil
	}
	named, err := typemeta.CheckFields(id, fields)
	if err != nil {
		return nil, &typemeta.InvalidFieldsError{ID: id, Variant: variant}
	}

	if named {
		obj := make(map[string]any, len(fields))
		for _, f := range fields {
			v, err := tr.Resolve(f.Type)
			if err != nil {
				return nil, err
			}
			obj[f.Name] = v
		}
		return obj, nil
	}

	if len(fields) == 1 {
		return tr.Resolve(fields[0].Type)
	}
	elems := make([]any, 0, len(fields))
	for _, f := range fields {
		v, err := tr.Resolve(f.Type)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return elems, nil
}

func primitiveExample(p typemeta.Primitive, rng *rand.Rand) any {
	switch p {
	case typemeta.PrimBool:
		return rng.IntN(2) == 1
	case typemeta.PrimChar:
		word := words[rng.IntN(len(words))]
		return word[:1]
	case typemeta.PrimStr:
		return words[rng.IntN(len(words))]
	case typemeta.PrimU8:
		return rng.Uint64N(1 << 8)
	case typemeta.PrimU16:
		return rng.Uint64N(1 << 16)
	case typemeta.PrimU32, typemeta.PrimU64, typemeta.PrimU128, typemeta.PrimU256:
		return rng.Uint64N(1_000_000)
	case typemeta.PrimI8:
		return rng.Int64N(1<<8) - (1 << 7)
	case typemeta.PrimI16:
		return rng.Int64N(1<<16) - (1 << 15)
	case typemeta.PrimI32, typemeta.PrimI64, typemeta.PrimI128, typemeta.PrimI256:
		return rng.Int64N(2_000_000) - 1_000_000
	default:
		// Unknown primitive kinds fall back to a string tag rather than
		// failing, so forward-compatible registries still get examples.
		return strings.ToLower(string(p))
	}
}
