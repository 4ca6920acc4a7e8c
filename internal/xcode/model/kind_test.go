package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcode/ff2c/internal/xcode/model"
)

func TestKindAggr(t *testing.T) {
	tests := []struct {
		kind   model.Kind
		symbol string
	}{
		{model.KindVoid, "M0_XA_ATOM"},
		{model.KindU8, "M0_XA_ATOM"},
		{model.KindU32, "M0_XA_ATOM"},
		{model.KindU64, "M0_XA_ATOM"},
		{model.KindOpaque, "M0_XA_OPAQUE"},
		{model.KindRecord, "M0_XA_RECORD"},
		{model.KindUnion, "M0_XA_UNION"},
		{model.KindSequence, "M0_XA_SEQUENCE"},
		{model.KindArray, "M0_XA_ARRAY"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.kind.Aggr().Symbol())
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"void", "u8", "u32", "u64", "opaque", "record", "union", "sequence", "array"} {
		k, err := model.ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := model.ParseKind("struct")
	assert.Error(t, err)
}

func TestKindAtomic(t *testing.T) {
	assert.True(t, model.KindU32.Atomic())
	assert.False(t, model.KindRecord.Atomic())
	assert.False(t, model.KindOpaque.Atomic())
}

func TestSchemaVisibility(t *testing.T) {
	a := &model.Type{Name: "a", Public: true}
	b := &model.Type{Name: "b"}
	c := &model.Type{Name: "c", Public: true}
	s := &model.Schema{Types: []*model.Type{a, b, c}}

	assert.Equal(t, []*model.Type{a, c}, s.PublicTypes())
	assert.Equal(t, []*model.Type{b}, s.PrivateTypes())
}
