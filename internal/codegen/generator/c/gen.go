// Package cgen renders the C side of an xcode schema: a header with the
// native struct declarations and a source with the static m0_xcode_type
// descriptors the xcode library walks at runtime.
package cgen

import (
	"io"

	"github.com/xcode/ff2c/internal/xcode/model"
)

// GenOptions carries the per-invocation state of one emitter call.
type GenOptions struct {
	// Out receives the document. It is owned by the caller and never closed here.
	Out io.Writer
	// BaseName is the schema name without directory or extension, e.g. "fid".
	BaseName string
	// GuardName is the include guard identifier of the header.
	GuardName string
}

type docData struct {
	Base   string
	Guard  string
	Schema *model.Schema
}

func newDocData(s *model.Schema, opt GenOptions) docData {
	return docData{
		Base:   opt.BaseName,
		Guard:  opt.GuardName,
		Schema: s,
	}
}
