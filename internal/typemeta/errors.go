package typemeta

import "fmt"

// TypeNotFoundError is returned when a referenced ID is absent from the
// registry.
type TypeNotFoundError struct {
	ID TypeID
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type with id %d not found in registry", e.ID)
}

// InvalidFieldsError is returned when a composite or variant member mixes
// named and unnamed fields.
type InvalidFieldsError struct {
	ID TypeID
	// Variant names the offending variant, if the fields belong to one.
	Variant string
}

func (e *InvalidFieldsError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("type %d variant %q: fields must be all named or all unnamed", e.ID, e.Variant)
	}
	return fmt.Sprintf("type %d: fields must be all named or all unnamed", e.ID)
}
