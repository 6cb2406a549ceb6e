package typemeta

import (
	"fmt"

	"github.com/scalemeta/scalemeta/internal/diagnostic"
)

// Validate checks the registry's structural invariants and reports findings
// to the collector: every definition must have exactly one arm, every
// referenced ID must resolve, and composite/variant members must not mix
// named and unnamed fields. It does not attempt to detect wrapper-only
// cycles; those are a traversal-policy concern.
func (r *Registry) Validate(c *diagnostic.Collector) {
	for i := range r.Types {
		id := r.Types[i].ID
		ty := &r.Types[i].Type
		path := ty.Path.String()

		if !ty.Def.Valid() {
			c.Error(diagnostic.CategoryInvalidDef, int64(id), path,
				"definition must have exactly one shape")
			continue
		}

		for _, ref := range ty.Def.references() {
			if _, ok := r.Resolve(ref); !ok {
				c.Error(diagnostic.CategoryMissingType, int64(id), path,
					fmt.Sprintf("references type %d, which is not in the registry", ref))
			}
		}
		for _, p := range ty.Params {
			if p.Type == nil {
				continue
			}
			if _, ok := r.Resolve(*p.Type); !ok {
				c.Error(diagnostic.CategoryMissingType, int64(id), path,
					fmt.Sprintf("generic parameter %s is bound to type %d, which is not in the registry", p.Name, *p.Type))
			}
		}

		switch {
		case ty.Def.Composite != nil:
			if _, err := CheckFields(id, ty.Def.Composite.Fields); err != nil {
				c.Error(diagnostic.CategoryInvalidFields, int64(id), path, err.Error())
			}
		case ty.Def.Variant != nil:
			for _, v := range ty.Def.Variant.Variants {
				if _, err := CheckFields(id, v.Fields); err != nil {
					c.Error(diagnostic.CategoryInvalidFields, int64(id), path,
						fmt.Sprintf("variant %s: %v", v.Name, err))
				}
			}
		}
	}
}

// references returns every type ID a definition points at directly.
func (d TypeDef) references() []TypeID {
	var refs []TypeID
	switch {
	case d.Composite != nil:
		for _, f := range d.Composite.Fields {
			refs = append(refs, f.Type)
		}
	case d.Variant != nil:
		for _, v := range d.Variant.Variants {
			for _, f := range v.Fields {
				refs = append(refs, f.Type)
			}
		}
	case d.Sequence != nil:
		refs = append(refs, d.Sequence.Type)
	case d.Array != nil:
		refs = append(refs, d.Array.Type)
	case d.Tuple != nil:
		refs = append(refs, *d.Tuple...)
	case d.Compact != nil:
		refs = append(refs, d.Compact.Type)
	case d.BitSequence != nil:
		refs = append(refs, d.BitSequence.BitStoreType, d.BitSequence.BitOrderType)
	}
	return refs
}
