package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xcode/ff2c/internal/xcode/model"
)

type atom struct {
	ctype  string
	xctype string
}

// Shorthands accepted in FieldDoc.Type when no type of that name is declared.
var atoms = map[string]atom{
	"u8":  {ctype: "uint8_t", xctype: "&M0_XT_U8"},
	"u32": {ctype: "uint32_t", xctype: "&M0_XT_U32"},
	"u64": {ctype: "uint64_t", xctype: "&M0_XT_U64"},
}

// Load reads and builds the schema stored at path. The format follows the
// file extension.
func Load(path string) (*model.Schema, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build checks the document shape, resolves type references and fills
// defaults. The returned schema is not modified afterwards.
func Build(doc *Document) (*model.Schema, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	s := &model.Schema{}
	for _, r := range doc.Requires {
		s.Requires = append(s.Requires, model.Require{Path: r})
	}
	for _, e := range doc.Escapes {
		s.Escapes = append(s.Escapes, model.Escape{Name: e})
	}

	byName := make(map[string]*model.Type, len(doc.Types))
	for _, td := range doc.Types {
		if _, dup := byName[td.Name]; dup {
			return nil, fmt.Errorf("duplicate type %q", td.Name)
		}
		kind, err := model.ParseKind(td.Kind)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", td.Name, err)
		}
		t := &model.Type{
			Name:   td.Name,
			CName:  orDefault(td.CName, "struct "+td.Name),
			XCName: orDefault(td.XCName, td.Name+"_xc"),
			Kind:   kind,
			Public: td.Public,
			Array:  td.Array,
		}
		byName[td.Name] = t
		s.Types = append(s.Types, t)
	}

	for i, td := range doc.Types {
		t := s.Types[i]
		for j, fd := range td.Fields {
			f, err := buildField(t, j, fd, byName)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", t.Name, err)
			}
			t.Fields = append(t.Fields, f)
		}
	}
	return s, nil
}

func buildField(parent *model.Type, idx int, fd FieldDoc, byName map[string]*model.Type) (*model.Field, error) {
	f := &model.Field{
		Name:   fd.Name,
		CName:  fd.CName,
		Parent: parent,
		Decl:   fd.Decl,
		XCType: fd.XCType,
		Tag:    fd.Tag,
		Escape: fd.Escape,
	}
	if f.CName == "" {
		f.CName = fd.Name
		if parent.Union() && idx > 0 {
			f.CName = "u." + fd.Name
		}
	}
	if fd.Type == "" {
		return f, nil
	}

	ref, ok := byName[fd.Type]
	if !ok {
		a, isAtom := atoms[fd.Type]
		if !isAtom {
			return nil, fmt.Errorf("field %q: unknown type %q", fd.Name, fd.Type)
		}
		if fd.Inline {
			return nil, fmt.Errorf("field %q: atom %q cannot be inlined", fd.Name, fd.Type)
		}
		f.Decl = orDefault(f.Decl, a.ctype+" "+fd.Name)
		f.XCType = orDefault(f.XCType, a.xctype)
		return f, nil
	}
	if fd.Inline {
		if ref == parent {
			return nil, fmt.Errorf("field %q: type %q cannot inline itself", fd.Name, fd.Type)
		}
		if ref.Kind.Atomic() {
			return nil, fmt.Errorf("field %q: atomic type %q cannot be inlined", fd.Name, fd.Type)
		}
		f.Type = ref
	} else {
		f.Decl = orDefault(f.Decl, ref.CName+" "+fd.Name)
	}
	f.XCType = orDefault(f.XCType, ref.XCName)
	return f, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var validate = validator.New()

// Validate checks the document against its struct tags and reports every
// violation in one error.
func Validate(doc *Document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("invalid model document: %w", err)
	}
	msgs := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msgs = append(msgs, ve.Namespace()+": "+formatValidationError(ve))
	}
	return fmt.Errorf("invalid model document: %s", strings.Join(msgs, "; "))
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "required_without":
		return fmt.Sprintf("required when %s is empty", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// FromSchema converts a schema back into its document form, with every
// default spelled out.
func FromSchema(s *model.Schema) *Document {
	doc := &Document{}
	for _, r := range s.Requires {
		doc.Requires = append(doc.Requires, r.Path)
	}
	for _, e := range s.Escapes {
		doc.Escapes = append(doc.Escapes, e.Name)
	}
	for _, t := range s.Types {
		td := TypeDoc{
			Name:   t.Name,
			CName:  t.CName,
			XCName: t.XCName,
			Kind:   t.Kind.String(),
			Public: t.Public,
			Array:  t.Array,
		}
		for _, f := range t.Fields {
			fd := FieldDoc{
				Name:   f.Name,
				CName:  f.CName,
				Decl:   f.Decl,
				XCType: f.XCType,
				Tag:    f.Tag,
				Escape: f.Escape,
			}
			if f.Type != nil {
				fd.Type = f.Type.Name
				fd.Inline = true
			}
			td.Fields = append(td.Fields, fd)
		}
		doc.Types = append(doc.Types, td)
	}
	return doc
}
