package common

import (
	"path/filepath"
	"strings"
)

// BaseName strips the directory and the extension of a schema path.
// Example: "fop/fom_ff.ff" -> "fom_ff", "fid.yaml" -> "fid".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GuardName builds the include guard of a generated header.
// Example: ("m0", "fom_ff") -> "__M0_FOM_FF_FF_H__".
func GuardName(prefix, base string) string {
	parts := []string{}
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, base, "ff", "h")
	return "__" + strings.ToUpper(SanitizeIdent(strings.Join(parts, "_"))) + "__"
}

// SanitizeIdent replaces every character that may not appear in a C
// identifier with '_' and prefixes a leading digit with '_'.
func SanitizeIdent(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out[0] >= '0' && out[0] <= '9' {
		return "_" + out
	}
	return out
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// HeaderFile names the generated header of a schema.
func HeaderFile(base string) string {
	return base + "_ff.h"
}

// SourceFile names the generated source of a schema.
func SourceFile(base string) string {
	return base + "_ff.c"
}

// ToSnakeCase converts a Go identifier to snake_case, keeping acronyms
// together: "GuardPrefix" -> "guard_prefix", "XCName" -> "xc_name".
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
