// Package typemeta defines the portable type-registry model used throughout
// scalemeta: a normalized, ID-addressed description of types suitable for
// traversal, comparison, and derived representations.
package typemeta

import "strings"

// TypeID addresses a type inside a Registry.
type TypeID uint32

// Registry is an ordered collection of type definitions addressable by ID.
// It is read-only for all consumers except the path deduplication pass,
// which rewrites path segments in place (never IDs or definitions).
type Registry struct {
	Types []PortableType `json:"types" yaml:"types"`

	// byID is built lazily on first Resolve. IDs never change after load,
	// so the index stays valid across path rewrites.
	byID map[TypeID]*Type
}

// PortableType pairs a type with its registry ID.
type PortableType struct {
	ID   TypeID `json:"id" yaml:"id"`
	Type Type   `json:"type" yaml:"type"`
}

// Type is a single node in the registry.
type Type struct {
	Path   Path        `json:"path,omitzero" yaml:"path,omitempty"`
	Params []TypeParam `json:"params,omitzero" yaml:"params,omitempty"`
	Def    TypeDef     `json:"def" yaml:"def"`
	Docs   []string    `json:"docs,omitzero" yaml:"docs,omitempty"`
}

// Path is the ordered namespace segments of a type declaration.
// Built-in and prelude types have an empty or single-segment path.
type Path []string

// Ident returns the final path segment, or "" for an empty path.
func (p Path) Ident() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Namespace returns all segments except the final one.
func (p Path) Namespace() []string {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) String() string {
	return strings.Join(p, "::")
}

// Equal reports whether two paths have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// TypeParam is a declared generic parameter, optionally bound to a concrete
// type in the registry.
type TypeParam struct {
	Name string  `json:"name" yaml:"name"`
	Type *TypeID `json:"type,omitzero" yaml:"type,omitempty"`
}

// TypeDef describes the shape of a type. Exactly one arm is non-nil in a
// well-formed registry; Valid reports whether that holds.
type TypeDef struct {
	Composite   *CompositeDef   `json:"composite,omitzero" yaml:"composite,omitempty"`
	Variant     *VariantDef     `json:"variant,omitzero" yaml:"variant,omitempty"`
	Sequence    *SequenceDef    `json:"sequence,omitzero" yaml:"sequence,omitempty"`
	Array       *ArrayDef       `json:"array,omitzero" yaml:"array,omitempty"`
	Tuple       *TupleDef       `json:"tuple,omitzero" yaml:"tuple,omitempty"`
	Primitive   *Primitive      `json:"primitive,omitzero" yaml:"primitive,omitempty"`
	Compact     *CompactDef     `json:"compact,omitzero" yaml:"compact,omitempty"`
	BitSequence *BitSequenceDef `json:"bitSequence,omitzero" yaml:"bitSequence,omitempty"`
}

// Kind classifies a TypeDef by its populated arm.
type Kind string

const (
	KindComposite   Kind = "composite"
	KindVariant     Kind = "variant"
	KindSequence    Kind = "sequence"
	KindArray       Kind = "array"
	KindTuple       Kind = "tuple"
	KindPrimitive   Kind = "primitive"
	KindCompact     Kind = "compact"
	KindBitSequence Kind = "bitSequence"
	KindInvalid     Kind = ""
)

// Kind returns the populated arm's kind, or KindInvalid when no arm
// (or more than one) is set.
func (d TypeDef) Kind() Kind {
	if !d.Valid() {
		return KindInvalid
	}
	switch {
	case d.Composite != nil:
		return KindComposite
	case d.Variant != nil:
		return KindVariant
	case d.Sequence != nil:
		return KindSequence
	case d.Array != nil:
		return KindArray
	case d.Tuple != nil:
		return KindTuple
	case d.Primitive != nil:
		return KindPrimitive
	case d.Compact != nil:
		return KindCompact
	case d.BitSequence != nil:
		return KindBitSequence
	}
	return KindInvalid
}

// Valid reports whether exactly one definition arm is populated.
func (d TypeDef) Valid() bool {
	n := 0
	for _, set := range []bool{
		d.Composite != nil,
		d.Variant != nil,
		d.Sequence != nil,
		d.Array != nil,
		d.Tuple != nil,
		d.Primitive != nil,
		d.Compact != nil,
		d.BitSequence != nil,
	} {
		if set {
			n++
		}
	}
	return n == 1
}

// IsWrapper reports whether the shape is one that may be safely re-entered
// while its element type is still mid-resolution (sequence, array, tuple,
// compact). Each textual or structural occurrence of a wrapper is
// independently representable, so traversal can keep unrolling it; every
// other shape must anchor a cycle instead.
func (d TypeDef) IsWrapper() bool {
	return d.Sequence != nil || d.Array != nil || d.Tuple != nil || d.Compact != nil
}

// CompositeDef is a struct-like shape with all-named or all-unnamed fields.
type CompositeDef struct {
	Fields []Field `json:"fields,omitzero" yaml:"fields,omitempty"`
}

// VariantDef is a tagged union of variants.
type VariantDef struct {
	Variants []Variant `json:"variants,omitzero" yaml:"variants,omitempty"`
}

// Variant is a single arm of a VariantDef.
type Variant struct {
	Name   string   `json:"name" yaml:"name"`
	Fields []Field  `json:"fields,omitzero" yaml:"fields,omitempty"`
	Index  uint8    `json:"index" yaml:"index"`
	Docs   []string `json:"docs,omitzero" yaml:"docs,omitempty"`
}

// Field belongs to a composite or variant. Name is empty for unnamed
// (tuple-style) fields. TypeName is the declared external type-name literal
// as written in the source the registry was derived from.
type Field struct {
	Name     string   `json:"name,omitzero" yaml:"name,omitempty"`
	Type     TypeID   `json:"type" yaml:"type"`
	TypeName string   `json:"typeName,omitzero" yaml:"typeName,omitempty"`
	Docs     []string `json:"docs,omitzero" yaml:"docs,omitempty"`
}

// SequenceDef is a variable-length sequence of one element type.
type SequenceDef struct {
	Type TypeID `json:"type" yaml:"type"`
}

// ArrayDef is a fixed-length sequence of one element type.
type ArrayDef struct {
	Len  uint32 `json:"len" yaml:"len"`
	Type TypeID `json:"type" yaml:"type"`
}

// TupleDef is an ordered list of element types.
type TupleDef []TypeID

// CompactDef is a compact-wrapped inner type.
type CompactDef struct {
	Type TypeID `json:"type" yaml:"type"`
}

// BitSequenceDef is a bit sequence with a store type and a bit-order type.
type BitSequenceDef struct {
	BitStoreType TypeID `json:"bitStoreType" yaml:"bitStoreType"`
	BitOrderType TypeID `json:"bitOrderType" yaml:"bitOrderType"`
}

// Primitive is the kind tag of a primitive shape.
type Primitive string

const (
	PrimBool Primitive = "bool"
	PrimChar Primitive = "char"
	PrimStr  Primitive = "str"
	PrimU8   Primitive = "u8"
	PrimU16  Primitive = "u16"
	PrimU32  Primitive = "u32"
	PrimU64  Primitive = "u64"
	PrimU128 Primitive = "u128"
	PrimU256 Primitive = "u256"
	PrimI8   Primitive = "i8"
	PrimI16  Primitive = "i16"
	PrimI32  Primitive = "i32"
	PrimI64  Primitive = "i64"
	PrimI128 Primitive = "i128"
	PrimI256 Primitive = "i256"
)

// Resolve returns the type for an ID, or false if the ID is not present.
// The returned pointer aliases the registry's storage; callers other than
// the deduplication pass must not mutate it.
func (r *Registry) Resolve(id TypeID) (*Type, bool) {
	if r.byID == nil {
		r.byID = make(map[TypeID]*Type, len(r.Types))
		for i := range r.Types {
			r.byID[r.Types[i].ID] = &r.Types[i].Type
		}
	}
	ty, ok := r.byID[id]
	return ty, ok
}

// Len returns the number of types in the registry.
func (r *Registry) Len() int {
	return len(r.Types)
}

// CheckFields verifies that fields are all named or all unnamed and reports
// whether they are named. Empty field lists count as unnamed.
func CheckFields(id TypeID, fields []Field) (named bool, err error) {
	if len(fields) == 0 {
		return false, nil
	}
	allNamed := true
	allUnnamed := true
	for _, f := range fields {
		if f.Name == "" {
			allNamed = false
		} else {
			allUnnamed = false
		}
	}
	if !allNamed && !allUnnamed {
		return false, &InvalidFieldsError{ID: id}
	}
	return allNamed, nil
}
