package typemeta

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRegistry() *Registry {
	u8 := PrimU8
	boolPrim := PrimBool
	bound := TypeID(0)
	return &Registry{Types: []PortableType{
		{ID: 0, Type: Type{Def: TypeDef{Primitive: &u8}}},
		{ID: 1, Type: Type{Def: TypeDef{Primitive: &boolPrim}}},
		{ID: 2, Type: Type{
			Path:   Path{"demo", "Account"},
			Params: []TypeParam{{Name: "T", Type: &bound}},
			Def: TypeDef{Composite: &CompositeDef{Fields: []Field{
				{Name: "id", Type: 0, TypeName: "u8"},
				{Name: "active", Type: 1, TypeName: "bool"},
			}}},
			Docs: []string{"An account."},
		}},
		{ID: 3, Type: Type{Def: TypeDef{Sequence: &SequenceDef{Type: 2}}}},
		{ID: 4, Type: Type{
			Path: Path{"demo", "Direction"},
			Def: TypeDef{Variant: &VariantDef{Variants: []Variant{
				{Name: "North", Index: 0},
				{Name: "East", Index: 1, Fields: []Field{{Type: 0}}},
			}}},
		}},
		{ID: 5, Type: Type{Def: TypeDef{Tuple: &TupleDef{0, 1}}}},
		{ID: 6, Type: Type{Def: TypeDef{Array: &ArrayDef{Len: 32, Type: 0}}}},
		{ID: 7, Type: Type{Def: TypeDef{Compact: &CompactDef{Type: 0}}}},
		{ID: 8, Type: Type{Def: TypeDef{BitSequence: &BitSequenceDef{BitStoreType: 0, BitOrderType: 1}}}},
	}}
}

func TestJSONRoundTrip(t *testing.T) {
	reg := sampleRegistry()

	var buf bytes.Buffer
	if err := reg.WriteJSON(&buf, false); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := LoadJSON(&buf)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if diff := cmp.Diff(reg.Types, got.Types); diff != "" {
		t.Errorf("registry changed across JSON round trip (-want +got):\n%s", diff)
	}
}

func TestLoadYAMLMatchesJSON(t *testing.T) {
	jsonSrc := `{
		"types": [
			{"id": 0, "type": {"def": {"primitive": "u32"}}},
			{"id": 1, "type": {
				"path": ["demo", "Point"],
				"def": {"composite": {"fields": [
					{"name": "x", "type": 0, "typeName": "u32"},
					{"name": "y", "type": 0, "typeName": "u32"}
				]}}
			}},
			{"id": 2, "type": {"def": {"bitSequence": {"bitStoreType": 0, "bitOrderType": 0}}}}
		]
	}`
	yamlSrc := `types:
  - id: 0
    type:
      def:
        primitive: u32
  - id: 1
    type:
      path: [demo, Point]
      def:
        composite:
          fields:
            - name: x
              type: 0
              typeName: u32
            - name: y
              type: 0
              typeName: u32
  - id: 2
    type:
      def:
        bitSequence:
          bitStoreType: 0
          bitOrderType: 0
`

	fromJSON, err := LoadJSON(strings.NewReader(jsonSrc))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	fromYAML, err := LoadYAML(strings.NewReader(yamlSrc))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if diff := cmp.Diff(fromJSON.Types, fromYAML.Types); diff != "" {
		t.Errorf("YAML parse disagrees with JSON parse (-json +yaml):\n%s", diff)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "reg.json")
	os.WriteFile(jsonPath, []byte(`{"types": [{"id": 0, "type": {"def": {"primitive": "str"}}}]}`), 0644)
	yamlPath := filepath.Join(dir, "reg.yaml")
	os.WriteFile(yamlPath, []byte("types:\n  - id: 0\n    type:\n      def:\n        primitive: str\n"), 0644)

	for _, path := range []string{jsonPath, yamlPath} {
		reg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if reg.Len() != 1 {
			t.Fatalf("Load(%s): got %d types, want 1", path, reg.Len())
		}
		ty, ok := reg.Resolve(0)
		if !ok || ty.Def.Primitive == nil || *ty.Def.Primitive != PrimStr {
			t.Errorf("Load(%s): type 0 is not the str primitive", path)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load of a missing file did not fail")
	}
}

func TestLoadJSONRejectsGarbage(t *testing.T) {
	if _, err := LoadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("LoadJSON accepted malformed input")
	}
	if _, err := LoadYAML(strings.NewReader(":\t:::")); err == nil {
		t.Error("LoadYAML accepted malformed input")
	}
}
