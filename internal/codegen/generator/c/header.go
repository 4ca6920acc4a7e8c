package cgen

import (
	"fmt"
	"text/template"

	"github.com/xcode/ff2c/internal/xcode/model"
)

const headerTmpl = `/* This file is automatically generated from {{.Base}}.ff */

#pragma once

#ifndef {{.Guard}}
#define {{.Guard}}

#ifndef __KERNEL__
#include <sys/types.h>
#endif /* __KERNEL__ */

#include "xcode/xcode.h"

{{range .Schema.Requires}}#include {{.Path}}
{{end}}
{{range .Schema.PublicTypes}}{{typeH . 0}};

{{end}}
{{range .Schema.PublicTypes}}extern struct m0_xcode_type *{{.XCName}};
{{end}}
M0_INTERNAL void m0_xc_{{.Base}}_init(void);
M0_INTERNAL void m0_xc_{{.Base}}_fini(void);

#endif /* {{.Guard}} */
`

// GenerateHeader writes the public header of s to opt.Out: struct
// declarations and metadata pointers of public types, and the init/fini
// prototypes.
func GenerateHeader(s *model.Schema, opt GenOptions) error {
	t := template.Must(template.New("ff.h").Funcs(tplFuncs()).Parse(headerTmpl))
	if err := t.Execute(opt.Out, newDocData(s, opt)); err != nil {
		return fmt.Errorf("exec header tmpl: %w", err)
	}
	return nil
}
