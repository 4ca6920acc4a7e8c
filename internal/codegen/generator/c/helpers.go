package cgen

import (
	"strings"
	"text/template"

	"github.com/xcode/ff2c/internal/codegen/common"
	"github.com/xcode/ff2c/internal/xcode/model"
)

const (
	defaultTag    = "0"
	defaultEscape = "NULL"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"typeH":        typeH,
		"typeDecl":     typeDecl,
		"aggr":         aggr,
		"tagOrDefault": tagOrDefault,
		"escapeOrNull": escapeOrNull,
		"headerFile":   common.HeaderFile,
	}
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

// typeH renders the struct body of t. The caller appends the terminator.
func typeH(t *model.Type, depth int) string {
	var b strings.Builder
	writeType(&b, t, depth)
	return b.String()
}

func writeType(b *strings.Builder, t *model.Type, depth int) {
	fields := t.Fields
	union := t.Union() && len(fields) > 0
	inner := depth + 1

	b.WriteString(indent(depth))
	b.WriteString(t.CName)
	b.WriteString(" {\n")
	if union {
		// discriminant stays outside the arm storage
		writeField(b, t, fields[0], depth+1)
		fields = fields[1:]
		b.WriteString(indent(depth + 1))
		b.WriteString("union {\n")
		inner = depth + 2
	}
	for _, f := range fields {
		writeField(b, t, f, inner)
	}
	if union {
		b.WriteString(indent(depth + 1))
		b.WriteString("} u;\n")
	}
	b.WriteString(indent(depth))
	b.WriteString("}")
}

func writeField(b *strings.Builder, owner *model.Type, f *model.Field, depth int) {
	if f.Decl != "" {
		b.WriteString(indent(depth))
		b.WriteString(f.Decl)
	} else {
		writeType(b, f.Type, depth)
		b.WriteString(" ")
		b.WriteString(f.Name)
	}
	if owner.Array {
		b.WriteString("[")
		b.WriteString(tagOrDefault(f.Tag))
		b.WriteString("]")
	}
	b.WriteString(";\n")
}

// typeDecl declares the metadata pointer of t, with internal linkage for
// private types.
func typeDecl(t *model.Type) string {
	if t.Public {
		return "struct m0_xcode_type *" + t.XCName
	}
	return "static struct m0_xcode_type *" + t.XCName
}

func aggr(t *model.Type) string {
	return t.Kind.Aggr().Symbol()
}

func tagOrDefault(tag string) string {
	if tag == "" {
		return defaultTag
	}
	return tag
}

func escapeOrNull(escape string) string {
	if escape == "" {
		return defaultEscape
	}
	return escape
}
