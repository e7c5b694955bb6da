package riddle

import "math/big"

// Reference is a minimal Factory with no real search or constraint
// propagation. Every combinator either folds eagerly when its operands
// already carry constant Go values, or allocates a fresh symbolic
// literal (an opaque int counter) standing for "unresolved". It exists
// so the elaborator and evaluator can be driven end to end — including
// by tests — without a real SAT/SMT/LP backend wired in; AssertFact and
// NewDisjunction simply record what they were given rather than solve
// anything. BoolValue reports Undefined for a non-constant operand, and
// ArithmeticValue reports zero for one.
//
// The frontend never reads Lit/Lin/Str values directly: it goes
// through BoolValue, ArithmeticValue, Domain, and friends. Only this
// file and the package's tests depend on the representation here.
type Reference struct {
	nextLit int
	facts   []*BoolItem
	branches [][]*ConjunctionValue
	atoms   []*Atom
}

// NewReference constructs an empty Reference backend.
func NewReference() *Reference { return &Reference{} }

func (r *Reference) freshLit() int {
	r.nextLit++
	return r.nextLit
}

func (r *Reference) NewBool() (*BoolItem, error) { return &BoolItem{Lit: r.freshLit()}, nil }
func (r *Reference) NewBoolValue(value bool) (*BoolItem, error) {
	return &BoolItem{Lit: value}, nil
}

func (r *Reference) NewInt() (*ArithItem, error) { return &ArithItem{Lin: r.freshLit()}, nil }
func (r *Reference) NewIntValue(value int64) (*ArithItem, error) {
	return &ArithItem{Lin: new(big.Rat).SetInt64(value)}, nil
}

func (r *Reference) NewReal() (*ArithItem, error) { return &ArithItem{Lin: r.freshLit()}, nil }
func (r *Reference) NewRealValue(value *big.Rat) (*ArithItem, error) {
	return &ArithItem{Lin: new(big.Rat).Set(value)}, nil
}

func (r *Reference) NewTime() (*ArithItem, error) { return &ArithItem{Lin: r.freshLit()}, nil }
func (r *Reference) NewTimeValue(value *big.Rat) (*ArithItem, error) {
	return &ArithItem{Lin: new(big.Rat).Set(value)}, nil
}

func (r *Reference) NewString() (*StringItem, error) { return &StringItem{Str: r.freshLit()}, nil }
func (r *Reference) NewStringValue(value string) (*StringItem, error) {
	return &StringItem{Str: value}, nil
}

func (r *Reference) NewEnum(t *EnumType, values []string) (*EnumItem, error) {
	lits := make([]any, len(values))
	for i := range values {
		lits[i] = r.freshLit()
	}
	return NewEnumItem(t, values, lits), nil
}

func (r *Reference) constRat(a *ArithItem) (*big.Rat, bool) {
	v, ok := a.Lin.(*big.Rat)
	return v, ok
}

func (r *Reference) Minus(a *ArithItem) (*ArithItem, error) {
	if v, ok := r.constRat(a); ok {
		return &ArithItem{Lin: new(big.Rat).Neg(v)}, nil
	}
	return &ArithItem{Lin: r.freshLit()}, nil
}

func (r *Reference) foldArith(items []*ArithItem, zero *big.Rat, op func(acc, v *big.Rat)) (*ArithItem, error) {
	acc := new(big.Rat).Set(zero)
	for _, it := range items {
		v, ok := r.constRat(it)
		if !ok {
			return &ArithItem{Lin: r.freshLit()}, nil
		}
		op(acc, v)
	}
	return &ArithItem{Lin: acc}, nil
}

func (r *Reference) Add(items []*ArithItem) (*ArithItem, error) {
	return r.foldArith(items, new(big.Rat), func(acc, v *big.Rat) { acc.Add(acc, v) })
}

func (r *Reference) Sub(items []*ArithItem) (*ArithItem, error) {
	if len(items) == 0 {
		return &ArithItem{Lin: new(big.Rat)}, nil
	}
	first, ok := r.constRat(items[0])
	if !ok {
		return &ArithItem{Lin: r.freshLit()}, nil
	}
	return r.foldArith(items[1:], first, func(acc, v *big.Rat) { acc.Sub(acc, v) })
}

func (r *Reference) Mul(items []*ArithItem) (*ArithItem, error) {
	return r.foldArith(items, big.NewRat(1, 1), func(acc, v *big.Rat) { acc.Mul(acc, v) })
}

func (r *Reference) Div(items []*ArithItem) (*ArithItem, error) {
	if len(items) == 0 {
		return &ArithItem{Lin: big.NewRat(1, 1)}, nil
	}
	first, ok := r.constRat(items[0])
	if !ok {
		return &ArithItem{Lin: r.freshLit()}, nil
	}
	return r.foldArith(items[1:], first, func(acc, v *big.Rat) { acc.Quo(acc, v) })
}

func (r *Reference) compare(a, b *ArithItem, ok func(int) bool) (*BoolItem, error) {
	av, aok := r.constRat(a)
	bv, bok := r.constRat(b)
	if aok && bok {
		return &BoolItem{Lit: ok(av.Cmp(bv))}, nil
	}
	return &BoolItem{Lit: r.freshLit()}, nil
}

func (r *Reference) Lt(a, b *ArithItem) (*BoolItem, error) {
	return r.compare(a, b, func(c int) bool { return c < 0 })
}
func (r *Reference) Leq(a, b *ArithItem) (*BoolItem, error) {
	return r.compare(a, b, func(c int) bool { return c <= 0 })
}
func (r *Reference) Geq(a, b *ArithItem) (*BoolItem, error) {
	return r.compare(a, b, func(c int) bool { return c >= 0 })
}
func (r *Reference) Gt(a, b *ArithItem) (*BoolItem, error) {
	return r.compare(a, b, func(c int) bool { return c > 0 })
}

func (r *Reference) Eq(a, b Item) (*BoolItem, error) {
	switch av := a.(type) {
	case *ArithItem:
		bv, ok := b.(*ArithItem)
		if !ok {
			return &BoolItem{Lit: r.freshLit()}, nil
		}
		return r.compare(av, bv, func(c int) bool { return c == 0 })
	case *BoolItem:
		bv, ok := b.(*BoolItem)
		if !ok {
			return &BoolItem{Lit: r.freshLit()}, nil
		}
		ac, aok := av.Lit.(bool)
		bc, bok := bv.Lit.(bool)
		if aok && bok {
			return &BoolItem{Lit: ac == bc}, nil
		}
	case *StringItem:
		bv, ok := b.(*StringItem)
		if !ok {
			return &BoolItem{Lit: r.freshLit()}, nil
		}
		ac, aok := av.Str.(string)
		bc, bok := bv.Str.(string)
		if aok && bok {
			return &BoolItem{Lit: ac == bc}, nil
		}
	}
	return &BoolItem{Lit: r.freshLit()}, nil
}

func (r *Reference) boolConst(b *BoolItem) (bool, bool) {
	v, ok := b.Lit.(bool)
	return v, ok
}

func (r *Reference) Conj(items []*BoolItem) (*BoolItem, error) {
	for _, it := range items {
		v, ok := r.boolConst(it)
		if !ok {
			return &BoolItem{Lit: r.freshLit()}, nil
		}
		if !v {
			return &BoolItem{Lit: false}, nil
		}
	}
	return &BoolItem{Lit: true}, nil
}

func (r *Reference) Disj(items []*BoolItem) (*BoolItem, error) {
	for _, it := range items {
		v, ok := r.boolConst(it)
		if !ok {
			return &BoolItem{Lit: r.freshLit()}, nil
		}
		if v {
			return &BoolItem{Lit: true}, nil
		}
	}
	return &BoolItem{Lit: false}, nil
}

func (r *Reference) ExctOne(items []*BoolItem) (*BoolItem, error) {
	count := 0
	for _, it := range items {
		v, ok := r.boolConst(it)
		if !ok {
			return &BoolItem{Lit: r.freshLit()}, nil
		}
		if v {
			count++
		}
	}
	return &BoolItem{Lit: count == 1}, nil
}

func (r *Reference) Negate(a *BoolItem) (*BoolItem, error) {
	if v, ok := r.boolConst(a); ok {
		return &BoolItem{Lit: !v}, nil
	}
	return &BoolItem{Lit: r.freshLit()}, nil
}

func (r *Reference) AssertFact(fact *BoolItem) error {
	r.facts = append(r.facts, fact)
	return nil
}

func (r *Reference) NewDisjunction(conjunctions []*ConjunctionValue) error {
	r.branches = append(r.branches, conjunctions)
	return nil
}

func (r *Reference) NewAtom(isFact bool, pred *PredicateType, env *Env) (*Atom, error) {
	sigma, err := r.NewBool()
	if err != nil {
		return nil, err
	}
	atom := &Atom{Env: env, Predicate: pred, IsFact: isFact, SigmaLit: sigma}
	r.atoms = append(r.atoms, atom)
	return atom, nil
}

func (r *Reference) BoolValue(item *BoolItem) TriState {
	v, ok := r.boolConst(item)
	if !ok {
		return Undefined
	}
	if v {
		return True
	}
	return False
}

func (r *Reference) ArithmeticValue(item *ArithItem) InfRational {
	if v, ok := r.constRat(item); ok {
		return NewInfRational(v)
	}
	return NewInfRational(new(big.Rat))
}

func (r *Reference) IsConstant(item Item) bool {
	switch v := item.(type) {
	case *ArithItem:
		_, ok := r.constRat(v)
		return ok
	case *BoolItem:
		_, ok := r.boolConst(v)
		return ok
	case *StringItem:
		_, ok := v.Str.(string)
		return ok
	}
	return false
}

func (r *Reference) IsEnum(item Item) bool {
	_, ok := item.(*EnumItem)
	return ok
}

func (r *Reference) Domain(item *EnumItem) []string {
	return item.Values()
}

func (r *Reference) Forbid(item *EnumItem, value string) error {
	idx, ok := item.indexOf(value)
	if !ok {
		return nil
	}
	item.live.Clear(uint(idx))
	return nil
}

// FactCount, BranchCount, and AtomCount report how much of the program
// this backend has seen so far, for CLI summaries; the reference
// backend never acts on them beyond recording.
func (r *Reference) FactCount() int   { return len(r.facts) }
func (r *Reference) BranchCount() int { return len(r.branches) }
func (r *Reference) AtomCount() int   { return len(r.atoms) }

func (r *Reference) Assign(item *EnumItem, value string) error {
	idx, ok := item.indexOf(value)
	if !ok || !item.live.Test(uint(idx)) {
		return &UnresolvedNameError{Name: value}
	}
	item.live.ClearAll()
	item.live.Set(uint(idx))
	return nil
}
