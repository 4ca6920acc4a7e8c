package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcode/ff2c/internal/xcode/loader"
	"github.com/xcode/ff2c/internal/xcode/model"
)

const pointYAML = `
requires:
  - '"lib/types.h"'
types:
  - name: point
    cname: struct m0_pt_point
    xcname: m0_pt_point_xc
    kind: record
    public: true
    fields:
      - name: x
        type: u32
      - name: y
        type: u32
`

const pointJSON = `{
  "requires": ["\"lib/types.h\""],
  "types": [
    {
      "name": "point",
      "cname": "struct m0_pt_point",
      "xcname": "m0_pt_point_xc",
      "kind": "record",
      "public": true,
      "fields": [
        {"name": "x", "type": "u32"},
        {"name": "y", "type": "u32"}
      ]
    }
  ]
}`

const pointTOML = `
requires = ['"lib/types.h"']

[[types]]
name = "point"
cname = "struct m0_pt_point"
xcname = "m0_pt_point_xc"
kind = "record"
public = true

[[types.fields]]
name = "x"
type = "u32"

[[types.fields]]
name = "y"
type = "u32"
`

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"pt.yaml", pointYAML},
		{"pt.json", pointJSON},
		{"pt.toml", pointTOML},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s, err := loader.Load(path)
			require.NoError(t, err)

			require.Len(t, s.Requires, 1)
			assert.Equal(t, `"lib/types.h"`, s.Requires[0].Path)
			require.Len(t, s.Types, 1)

			pt := s.Types[0]
			assert.Equal(t, "point", pt.Name)
			assert.Equal(t, "struct m0_pt_point", pt.CName)
			assert.Equal(t, "m0_pt_point_xc", pt.XCName)
			assert.Equal(t, model.KindRecord, pt.Kind)
			assert.True(t, pt.Public)
			require.Equal(t, 2, pt.Nr())

			x := pt.Fields[0]
			assert.Equal(t, "x", x.Name)
			assert.Equal(t, "x", x.CName)
			assert.Equal(t, "uint32_t x", x.Decl)
			assert.Equal(t, "&M0_XT_U32", x.XCType)
			assert.Same(t, pt, x.Parent)
			assert.Equal(t, "uint32_t y", pt.Fields[1].Decl)
		})
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := loader.Load("schema.ff")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestBuildDefaults(t *testing.T) {
	doc := &loader.Document{
		Escapes: []string{"m0_pick"},
		Types: []loader.TypeDoc{
			{Name: "a", Kind: "record", Fields: []loader.FieldDoc{{Name: "v", Type: "u64"}}},
			{
				Name: "choice",
				Kind: "union",
				Fields: []loader.FieldDoc{
					{Name: "tag", Type: "u32"},
					{Name: "first", Type: "a"},
					{Name: "second", Type: "a", Inline: true, Tag: "2"},
				},
			},
			{
				Name:  "buf",
				Kind:  "array",
				Array: true,
				Fields: []loader.FieldDoc{
					{Name: "data", Decl: "uint8_t data", XCType: "&M0_XT_U8", Tag: "16", Escape: "m0_pick"},
				},
			},
		},
	}

	s, err := loader.Build(doc)
	require.NoError(t, err)
	require.Len(t, s.Types, 3)

	a := s.Types[0]
	assert.Equal(t, "struct a", a.CName)
	assert.Equal(t, "a_xc", a.XCName)
	assert.False(t, a.Public)

	choice := s.Types[1]
	assert.True(t, choice.Union())
	assert.Equal(t, "tag", choice.Fields[0].CName)
	assert.Equal(t, "u.first", choice.Fields[1].CName)
	assert.Equal(t, "struct a first", choice.Fields[1].Decl)
	assert.Equal(t, "a_xc", choice.Fields[1].XCType)
	assert.Nil(t, choice.Fields[1].Type)
	assert.Same(t, a, choice.Fields[2].Type)
	assert.Empty(t, choice.Fields[2].Decl)
	assert.Equal(t, "2", choice.Fields[2].Tag)

	buf := s.Types[2]
	assert.True(t, buf.Array)
	assert.Equal(t, model.AggrArray, buf.Kind.Aggr())
	assert.Equal(t, "m0_pick", buf.Fields[0].Escape)

	assert.Equal(t, []model.Escape{{Name: "m0_pick"}}, s.Escapes)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     loader.Document
		wantErr string
	}{
		{
			name:    "missing type name",
			doc:     loader.Document{Types: []loader.TypeDoc{{Kind: "record"}}},
			wantErr: "Name: required",
		},
		{
			name:    "unknown kind",
			doc:     loader.Document{Types: []loader.TypeDoc{{Name: "a", Kind: "struct"}}},
			wantErr: "must be one of",
		},
		{
			name: "field without type or decl",
			doc: loader.Document{Types: []loader.TypeDoc{{
				Name: "a", Kind: "record", Fields: []loader.FieldDoc{{Name: "x", XCType: "&M0_XT_U8"}},
			}}},
			wantErr: "required when Decl is empty",
		},
		{
			name: "unresolved reference",
			doc: loader.Document{Types: []loader.TypeDoc{{
				Name: "a", Kind: "record", Fields: []loader.FieldDoc{{Name: "x", Type: "nope"}},
			}}},
			wantErr: `unknown type "nope"`,
		},
		{
			name: "duplicate type",
			doc: loader.Document{Types: []loader.TypeDoc{
				{Name: "a", Kind: "record"},
				{Name: "a", Kind: "record"},
			}},
			wantErr: `duplicate type "a"`,
		},
		{
			name: "self inline",
			doc: loader.Document{Types: []loader.TypeDoc{{
				Name: "a", Kind: "record", Fields: []loader.FieldDoc{{Name: "x", Type: "a", Inline: true}},
			}}},
			wantErr: "cannot inline itself",
		},
		{
			name: "inline atom",
			doc: loader.Document{Types: []loader.TypeDoc{{
				Name: "a", Kind: "record", Fields: []loader.FieldDoc{{Name: "x", Type: "u8", Inline: true}},
			}}},
			wantErr: "cannot be inlined",
		},
		{
			name: "inline declared atomic type",
			doc: loader.Document{Types: []loader.TypeDoc{
				{Name: "cookie", Kind: "u64"},
				{Name: "a", Kind: "record", Fields: []loader.FieldDoc{{Name: "c", Type: "cookie", Inline: true}}},
			}},
			wantErr: `atomic type "cookie" cannot be inlined`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Build(&tt.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromSchemaRebuilds(t *testing.T) {
	doc, err := loader.Decode([]byte(pointYAML), loader.FormatYAML)
	require.NoError(t, err)
	s, err := loader.Build(doc)
	require.NoError(t, err)

	normalized := loader.FromSchema(s)
	assert.Equal(t, "uint32_t x", normalized.Types[0].Fields[0].Decl)
	assert.Equal(t, "&M0_XT_U32", normalized.Types[0].Fields[0].XCType)

	again, err := loader.Build(normalized)
	require.NoError(t, err)
	assert.Equal(t, normalized, loader.FromSchema(again))
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := loader.Decode([]byte(`{"types": [], "bogus": 1}`), loader.FormatJSON)
	assert.Error(t, err)

	_, err = loader.Decode([]byte("types: []\nbogus: 1\n"), loader.FormatYAML)
	assert.Error(t, err)

	_, err = loader.Decode([]byte("bogus = 1\n"), loader.FormatTOML)
	assert.Error(t, err)
}

func TestDecodeTOMLRejectsMisspelledFieldKey(t *testing.T) {
	const doc = `[[types]]
name = "buf"
kind = "record"
array = true

[[types.fields]]
name = "data"
type = "u8"
tga = "M0_BUF_SIZE"
`
	_, err := loader.Decode([]byte(doc), loader.FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tga")

	_, err = loader.Decode([]byte(strings.Replace(doc, "tga", "tag", 1)), loader.FormatTOML)
	require.NoError(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]loader.Format{
		"json": loader.FormatJSON, ".yml": loader.FormatYAML, "YAML": loader.FormatYAML, ".toml": loader.FormatTOML,
	} {
		got, err := loader.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := loader.ParseFormat("xml")
	assert.Error(t, err)
}
