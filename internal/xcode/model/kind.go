package model

import "fmt"

// Kind is the fundamental kind of a type's defining term.
type Kind int

const (
	KindVoid Kind = iota
	KindU8
	KindU32
	KindU64
	KindOpaque
	KindRecord
	KindUnion
	KindSequence
	KindArray
)

var kindNames = map[Kind]string{
	KindVoid:     "void",
	KindU8:       "u8",
	KindU32:      "u32",
	KindU64:      "u64",
	KindOpaque:   "opaque",
	KindRecord:   "record",
	KindUnion:    "union",
	KindSequence: "sequence",
	KindArray:    "array",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind keyword back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// Atomic reports whether values of this kind have no fields of their own.
func (k Kind) Atomic() bool {
	return k.Aggr() == AggrAtom
}

// Aggr is the aggregation kind the xcode runtime uses to walk an object.
type Aggr int

const (
	AggrAtom Aggr = iota
	AggrRecord
	AggrUnion
	AggrSequence
	AggrArray
	AggrOpaque
)

// Aggr maps a fundamental kind to its aggregation kind.
func (k Kind) Aggr() Aggr {
	switch k {
	case KindVoid, KindU8, KindU32, KindU64:
		return AggrAtom
	case KindOpaque:
		return AggrOpaque
	case KindRecord:
		return AggrRecord
	case KindUnion:
		return AggrUnion
	case KindSequence:
		return AggrSequence
	case KindArray:
		return AggrArray
	}
	panic(fmt.Sprintf("model: no aggregation for %v", k))
}

// Symbol returns the C enumerator of the aggregation kind.
func (a Aggr) Symbol() string {
	switch a {
	case AggrAtom:
		return "M0_XA_ATOM"
	case AggrRecord:
		return "M0_XA_RECORD"
	case AggrUnion:
		return "M0_XA_UNION"
	case AggrSequence:
		return "M0_XA_SEQUENCE"
	case AggrArray:
		return "M0_XA_ARRAY"
	case AggrOpaque:
		return "M0_XA_OPAQUE"
	}
	panic(fmt.Sprintf("model: unknown aggregation %d", int(a)))
}

func (a Aggr) String() string {
	return a.Symbol()
}
