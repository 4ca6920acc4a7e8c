// Package model holds the resolved xcode type model handed to the C
// generators. A Schema is built once by the loader and is read-only from then on.
package model

// Schema is one generation unit: the contents of a single .ff file after
// semantic analysis. Slice order is emission order.
type Schema struct {
	Requires []Require
	Types    []*Type
	Escapes  []Escape
}

// Require is an additional header the generated header includes. Path is
// emitted verbatim, quotes or angle brackets included.
type Require struct {
	Path string
}

// Escape names a function resolving the concrete type of an opaque field.
type Escape struct {
	Name string
}

// Type is a named xcode type.
type Type struct {
	// Name is the display name, also used to name the static descriptor storage.
	Name string
	// CName is the C spelling of the generated type, e.g. "struct m0_fid".
	CName string
	// XCName is the symbol of the struct m0_xcode_type pointer.
	XCName string
	Kind   Kind
	Public bool
	// Array marks types whose field declarations carry a [tag] suffix.
	Array  bool
	Fields []*Field
}

// Union reports whether the type is a discriminated union.
func (t *Type) Union() bool {
	return t.Kind == KindUnion
}

// Nr returns the number of fields.
func (t *Type) Nr() int {
	return len(t.Fields)
}

// Field is a member of exactly one Type.
type Field struct {
	Name string
	// CName is the member path relative to the parent struct, as used in offsetof.
	CName  string
	Parent *Type
	// Type is rendered inline when Decl is empty.
	Type *Type
	// Decl is a literal C declaration that replaces the rendered type and name.
	Decl string
	// XCType is the C expression of the field's xcode type.
	XCType string
	Tag    string
	Escape string
}

// PublicTypes returns public types in declaration order.
func (s *Schema) PublicTypes() []*Type {
	return s.filter(true)
}

// PrivateTypes returns private types in declaration order.
func (s *Schema) PrivateTypes() []*Type {
	return s.filter(false)
}

func (s *Schema) filter(public bool) []*Type {
	var out []*Type
	for _, t := range s.Types {
		if t.Public == public {
			out = append(out, t)
		}
	}
	return out
}
