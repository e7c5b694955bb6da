package riddle

// Type is the tagged variant over every kind of type a scope can hold:
// the five primitives, Typedef, Enum, Component, and Predicate. Each
// variant is its own Go type implementing this interface rather than a
// single struct with a discriminant field, matching the parser's AST
// node shape.
type Type interface {
	Name() string
	IsPrimitive() bool
	// IsAssignableFrom reports whether a value of other's type may be
	// used where a value of this type is expected.
	IsAssignableFrom(other Type) bool
}

// PrimitiveKind distinguishes the five built-in primitive types.
type PrimitiveKind int

const (
	BoolKind PrimitiveKind = iota
	IntKind
	RealKind
	TimeKind
	StringKind
)

// PrimitiveType is one of Bool, Int, Real, Time, String. Core owns the
// single instance of each; identity comparison (pointer equality) is
// how non-cross-rule assignability is decided.
type PrimitiveType struct {
	kind PrimitiveKind
}

func (t *PrimitiveType) Name() string {
	switch t.kind {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case RealKind:
		return "real"
	case TimeKind:
		return "time"
	case StringKind:
		return "string"
	}
	return "?"
}

func (t *PrimitiveType) IsPrimitive() bool { return true }

// IsAssignableFrom implements the primitive cross-assignability rules
// of §3: Real accepts Int/Time, Time accepts Int/Real, everything else
// requires identity.
func (t *PrimitiveType) IsAssignableFrom(other Type) bool {
	o, ok := other.(*PrimitiveType)
	if !ok {
		return false
	}
	if o == t {
		return true
	}
	switch t.kind {
	case RealKind:
		return o.kind == IntKind || o.kind == TimeKind
	case TimeKind:
		return o.kind == IntKind || o.kind == RealKind
	}
	return false
}
