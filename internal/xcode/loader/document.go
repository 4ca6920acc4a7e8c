// Package loader decodes model documents, the serialized form of a resolved
// xcode schema, into a model.Schema. It checks the document shape only; the
// schema semantics are expected to be settled by whoever wrote the document.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Document is the on-disk form of a schema.
type Document struct {
	Requires []string  `json:"requires,omitempty" yaml:"requires,omitempty" toml:"requires,omitempty"`
	Escapes  []string  `json:"escapes,omitempty" yaml:"escapes,omitempty" toml:"escapes,omitempty" validate:"dive,required"`
	Types    []TypeDoc `json:"types" yaml:"types" toml:"types" validate:"dive"`
}

// TypeDoc describes one type. Empty names are filled with defaults derived
// from Name.
type TypeDoc struct {
	Name   string     `json:"name" yaml:"name" toml:"name" validate:"required"`
	CName  string     `json:"cname,omitempty" yaml:"cname,omitempty" toml:"cname,omitempty"`
	XCName string     `json:"xcname,omitempty" yaml:"xcname,omitempty" toml:"xcname,omitempty"`
	Kind   string     `json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=void u8 u32 u64 opaque record union sequence array"`
	Public bool       `json:"public,omitempty" yaml:"public,omitempty" toml:"public,omitempty"`
	Array  bool       `json:"array,omitempty" yaml:"array,omitempty" toml:"array,omitempty"`
	Fields []FieldDoc `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty" validate:"dive"`
}

// FieldDoc describes one field. Either Decl or Type must be set.
type FieldDoc struct {
	Name   string `json:"name" yaml:"name" toml:"name" validate:"required"`
	CName  string `json:"cname,omitempty" yaml:"cname,omitempty" toml:"cname,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" validate:"required_without=Decl"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty" toml:"inline,omitempty"`
	Decl   string `json:"decl,omitempty" yaml:"decl,omitempty" toml:"decl,omitempty"`
	XCType string `json:"xctype,omitempty" yaml:"xctype,omitempty" toml:"xctype,omitempty" validate:"required_without=Type"`
	Tag    string `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	Escape string `json:"escape,omitempty" yaml:"escape,omitempty" toml:"escape,omitempty"`
}

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", s)
	}
}

// FormatForPath picks the format from the file extension of path.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).Strict(true).Decode(&doc)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s document: %w", format, err)
	}
	return &doc, nil
}

// Encode serializes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}
