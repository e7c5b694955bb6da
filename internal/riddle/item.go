package riddle

import "github.com/bits-and-blooms/bitset"

// Item is the tagged variant of solver-level terms a factory produces:
// booleans, arithmetic values, strings, enum domains, component
// instances, and atoms.
type Item interface {
	Type() Type
}

// BoolItem wraps a solver-backend boolean literal. Lit is opaque to
// the frontend; it is whatever handle the Factory returned.
type BoolItem struct {
	Lit any
	typ Type
}

func (i *BoolItem) Type() Type { return i.typ }

// ArithItem wraps a solver-backend linear-arithmetic term, typed as
// int, real, or time.
type ArithItem struct {
	Lin any
	typ Type
}

func (i *ArithItem) Type() Type { return i.typ }

// StringItem wraps a solver-backend string term.
type StringItem struct {
	Str any
	typ Type
}

func (i *StringItem) Type() Type { return i.typ }

// EnumItem wraps a solver-backend enum domain: a bitset over the
// indices of values, marking which candidates are still live, plus one
// opaque per-value literal handle from the factory. Values are removed
// from the live set only via Factory.Forbid/Assign.
type EnumItem struct {
	typ    *EnumType
	values []string
	live   *bitset.BitSet
	lits   []any
}

func (i *EnumItem) Type() Type { return i.typ }

// NewEnumItem builds an EnumItem whose entire domain starts live, one
// lit per value, matching the order of values. Factory implementations
// (including out-of-package solver backends) construct enum items
// through this rather than a struct literal, since the bitset/lit
// bookkeeping is private.
func NewEnumItem(typ *EnumType, values []string, lits []any) *EnumItem {
	live := bitset.New(uint(len(values)))
	for idx := range values {
		live.Set(uint(idx))
	}
	return &EnumItem{typ: typ, values: values, live: live, lits: lits}
}

// Values returns the domain values still live, in declaration order.
func (i *EnumItem) Values() []string {
	out := make([]string, 0, i.live.Count())
	for idx, v := range i.values {
		if i.live.Test(uint(idx)) {
			out = append(out, v)
		}
	}
	return out
}

func (i *EnumItem) indexOf(value string) (int, bool) {
	for idx, v := range i.values {
		if v == value {
			return idx, true
		}
	}
	return 0, false
}

// ComponentItem is an instance of a ComponentType. It doubles as an
// Env: its fields live in the embedded env, keyed by field name.
type ComponentItem struct {
	*Env
	typ *ComponentType
}

func (i *ComponentItem) Type() Type { return i.typ }

// Atom is an instance of a PredicateType: a fact or goal with bound
// arguments, a sigma literal controlling its active/inactive state,
// and an env holding its argument bindings.
type Atom struct {
	*Env
	Predicate *PredicateType
	IsFact    bool
	SigmaLit  *BoolItem
}

func (a *Atom) Type() Type { return a.Predicate }
