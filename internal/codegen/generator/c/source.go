package cgen

import (
	"fmt"
	"text/template"

	"github.com/xcode/ff2c/internal/xcode/model"
)

const sourceTmpl = `/* This file is automatically generated from {{.Base}}.ff */

#include "lib/misc.h"                       /* offsetof */
#include "lib/assert.h"
#include "xcode/xcode.h"

#include "{{headerFile .Base}}"

{{range .Schema.PublicTypes}}{{typeDecl .}};
{{end}}
{{range .Schema.PrivateTypes}}{{typeDecl .}};
{{end}}
{{range .Schema.Escapes}}int {{.Name}}(const struct m0_xcode_obj *par,
		const struct m0_xcode_type **out);
{{end}}
{{range .Schema.Types}}static struct _{{.Name}}_s {
	struct m0_xcode_type _type;
	struct m0_xcode_field _child[{{.Nr}}];
} _{{.Name}} = {
	._type = {
		.xct_aggr   = {{aggr .}},
		.xct_name   = "{{.Name}}",
		.xct_sizeof = sizeof ({{.CName}}),
		.xct_nr     = {{.Nr}}
	}
};

{{typeDecl .}} = &_{{.Name}}._type;
M0_BASSERT(offsetof(struct _{{.Name}}_s, _child[0]) ==
	offsetof(struct m0_xcode_type, xct_child[0]));

{{end}}

M0_INTERNAL void m0_xc_{{.Base}}_init(void)
{
{{range $t := .Schema.Types}}{{range $i, $f := $t.Fields}}	_{{$t.Name}}._child[{{$i}}] = (struct m0_xcode_field) {
		.xf_name   = "{{$f.Name}}",
		.xf_type   = {{$f.XCType}},
		.xf_tag    = {{tagOrDefault $f.Tag}},
		.xf_opaque = {{escapeOrNull $f.Escape}},
		.xf_offset = offsetof({{$t.CName}}, {{$f.CName}})
	};
{{end}}
{{end}}}
M0_INTERNAL void m0_xc_{{.Base}}_fini(void)
{}
`

// GenerateSource writes the descriptor source of s to opt.Out. Field offsets
// and struct sizes are left to the C compiler through offsetof and sizeof.
func GenerateSource(s *model.Schema, opt GenOptions) error {
	t := template.Must(template.New("ff.c").Funcs(tplFuncs()).Parse(sourceTmpl))
	if err := t.Execute(opt.Out, newDocData(s, opt)); err != nil {
		return fmt.Errorf("exec source tmpl: %w", err)
	}
	return nil
}
