package describe

import (
	"errors"
	"testing"

	"github.com/scalemeta/scalemeta/internal/transform"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

func prim(p typemeta.Primitive) typemeta.Type {
	return typemeta.Type{Def: typemeta.TypeDef{Primitive: &p}}
}

func TestDescription(t *testing.T) {
	u8 := typemeta.PrimU8
	str := typemeta.PrimStr
	reg := &typemeta.Registry{Types: []typemeta.PortableType{
		{ID: 0, Type: prim(u8)},
		{ID: 1, Type: prim(str)},
		{ID: 2, Type: typemeta.Type{
			Path: typemeta.Path{"demo", "Account"},
			Def: typemeta.TypeDef{Composite: &typemeta.CompositeDef{Fields: []typemeta.Field{
				{Name: "id", Type: 0},
				{Name: "friends", Type: 3},
			}}},
		}},
		{ID: 3, Type: typemeta.Type{Def: typemeta.TypeDef{Sequence: &typemeta.SequenceDef{Type: 2}}}},
		{ID: 4, Type: typemeta.Type{
			Path: typemeta.Path{"demo", "Wrapper"},
			Def: typemeta.TypeDef{Composite: &typemeta.CompositeDef{Fields: []typemeta.Field{
				{Type: 0},
			}}},
		}},
		{ID: 5, Type: typemeta.Type{
			Path: typemeta.Path{"demo", "Unit"},
			Def:  typemeta.TypeDef{Composite: &typemeta.CompositeDef{}},
		}},
		{ID: 6, Type: typemeta.Type{
			Path: typemeta.Path{"demo", "Direction"},
			Def: typemeta.TypeDef{Variant: &typemeta.VariantDef{Variants: []typemeta.Variant{
				{Name: "North", Index: 0},
				{Name: "South", Index: 1},
				{Name: "East", Index: 2, Fields: []typemeta.Field{{Type: 0}}},
				{Name: "West", Index: 3, Fields: []typemeta.Field{{Name: "deg", Type: 0}}},
			}}},
		}},
		{ID: 7, Type: typemeta.Type{Def: typemeta.TypeDef{Tuple: &typemeta.TupleDef{0, 1}}}},
		{ID: 8, Type: typemeta.Type{Def: typemeta.TypeDef{Array: &typemeta.ArrayDef{Len: 3, Type: 0}}}},
		{ID: 9, Type: typemeta.Type{Def: typemeta.TypeDef{Compact: &typemeta.CompactDef{Type: 0}}}},
		{ID: 10, Type: typemeta.Type{Def: typemeta.TypeDef{BitSequence: &typemeta.BitSequenceDef{BitStoreType: 0, BitOrderType: 0}}}},
		{ID: 11, Type: typemeta.Type{
			Def: typemeta.TypeDef{Composite: &typemeta.CompositeDef{Fields: []typemeta.Field{
				{Name: "a", Type: 0},
			}}},
		}},
	}}

	tests := []struct {
		name string
		id   typemeta.TypeID
		want string
	}{
		{"primitive", 0, "u8"},
		{"named composite with recursion", 2, "Account { id: u8, friends: Vec<Account> }"},
		{"newtype composite", 4, "Wrapper(u8)"},
		{"fieldless composite", 5, "Unit"},
		{"variant", 6, "Direction { North, South, East(u8), West { deg: u8 } }"},
		{"tuple", 7, "(u8, str)"},
		{"array", 8, "[u8; 3]"},
		{"compact", 9, "Compact<u8>"},
		{"bit sequence", 10, "BitSequence<u8, u8>"},
		{"anonymous composite", 11, "struct { a: u8 }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Description(reg, tt.id)
			if err != nil {
				t.Fatalf("Description(%d): %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("Description(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestDescriptionErrors(t *testing.T) {
	u8 := typemeta.PrimU8

	t.Run("anonymous cycle", func(t *testing.T) {
		// A nameless self-referential composite cannot collapse to a name.
		reg := &typemeta.Registry{Types: []typemeta.PortableType{
			{ID: 0, Type: typemeta.Type{
				Def: typemeta.TypeDef{Composite: &typemeta.CompositeDef{Fields: []typemeta.Field{
					{Name: "self", Type: 0},
				}}},
			}},
		}}
		_, err := Description(reg, 0)
		var cycle *transform.CycleError
		if !errors.As(err, &cycle) {
			t.Fatalf("Description() error = %v, want CycleError", err)
		}
	})

	t.Run("mixed variant fields", func(t *testing.T) {
		reg := &typemeta.Registry{Types: []typemeta.PortableType{
			{ID: 0, Type: prim(u8)},
			{ID: 1, Type: typemeta.Type{
				Path: typemeta.Path{"demo", "Bad"},
				Def: typemeta.TypeDef{Variant: &typemeta.VariantDef{Variants: []typemeta.Variant{
					{Name: "Arm", Index: 0, Fields: []typemeta.Field{{Name: "x", Type: 0}, {Type: 0}}},
				}}},
			}},
		}}
		_, err := Description(reg, 1)
		var fieldsErr *typemeta.InvalidFieldsError
		if !errors.As(err, &fieldsErr) {
			t.Fatalf("Description() error = %v, want InvalidFieldsError", err)
		}
		if fieldsErr.Variant != "Arm" {
			t.Errorf("error names variant %q, want %q", fieldsErr.Variant, "Arm")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := Description(&typemeta.Registry{}, 9)
		var notFound *typemeta.TypeNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Description() error = %v, want TypeNotFoundError", err)
		}
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"flat stays flat", "u8", "u8"},
		{"parens stay inline", "(u8, str)", "(u8, str)"},
		{
			"braces break",
			"Account { id: u8, friends: Vec<Account> }",
			"Account {\n    id: u8,\n    friends: Vec<Account>\n}",
		},
		{
			"nested braces",
			"Outer { inner: Inner { n: u8 } }",
			"Outer {\n    inner: Inner {\n        n: u8\n    }\n}",
		},
		{
			"comma inside parens stays inline",
			"Pair((u8, u8))",
			"Pair((u8, u8))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format(tt.in); got != tt.want {
				t.Errorf("format(%q) =\n%s\nwant\n%s", tt.in, got, tt.want)
			}
		})
	}
}
