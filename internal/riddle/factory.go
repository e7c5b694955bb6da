package riddle

import "math/big"

// Factory is the abstract interface to the solver backend: the core
// depends on it for every term the frontend builds, and never touches
// the backend's own representation. Implementations are supplied by a
// downstream solver; internal/riddle ships only Reference (see
// refbackend.go), a backend that performs no real search or
// propagation.
type Factory interface {
	NewBool() (*BoolItem, error)
	NewBoolValue(value bool) (*BoolItem, error)
	NewInt() (*ArithItem, error)
	NewIntValue(value int64) (*ArithItem, error)
	NewReal() (*ArithItem, error)
	NewRealValue(value *big.Rat) (*ArithItem, error)
	NewTime() (*ArithItem, error)
	NewTimeValue(value *big.Rat) (*ArithItem, error)
	NewString() (*StringItem, error)
	NewStringValue(value string) (*StringItem, error)
	NewEnum(t *EnumType, values []string) (*EnumItem, error)

	Minus(a *ArithItem) (*ArithItem, error)
	Add(items []*ArithItem) (*ArithItem, error)
	Sub(items []*ArithItem) (*ArithItem, error)
	Mul(items []*ArithItem) (*ArithItem, error)
	Div(items []*ArithItem) (*ArithItem, error)
	Lt(a, b *ArithItem) (*BoolItem, error)
	Leq(a, b *ArithItem) (*BoolItem, error)
	Geq(a, b *ArithItem) (*BoolItem, error)
	Gt(a, b *ArithItem) (*BoolItem, error)
	Eq(a, b Item) (*BoolItem, error)

	Conj(items []*BoolItem) (*BoolItem, error)
	Disj(items []*BoolItem) (*BoolItem, error)
	ExctOne(items []*BoolItem) (*BoolItem, error)
	Negate(a *BoolItem) (*BoolItem, error)

	AssertFact(fact *BoolItem) error
	NewDisjunction(conjunctions []*ConjunctionValue) error
	NewAtom(isFact bool, pred *PredicateType, env *Env) (*Atom, error)

	BoolValue(item *BoolItem) TriState
	ArithmeticValue(item *ArithItem) InfRational
	IsConstant(item Item) bool
	IsEnum(item Item) bool
	Domain(item *EnumItem) []string
	Forbid(item *EnumItem, value string) error
	Assign(item *EnumItem, value string) error
}

// TriState is a three-valued boolean: True, False, or Undefined,
// preserved at the solver boundary instead of collapsing to a Go bool.
type TriState int

const (
	Undefined TriState = iota
	True
	False
)

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}
