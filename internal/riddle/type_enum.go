package riddle

// EnumType is a sum of string-named values plus transitive union
// references to other enums.
type EnumType struct {
	name      string
	values    []string
	unionRefs []*EnumType
	core      *Core
}

func (t *EnumType) Name() string      { return t.name }
func (t *EnumType) IsPrimitive() bool { return false }

// IsAssignableFrom holds under identity, or if walking other's
// union-ref graph reaches t — i.e. t is (transitively) a union member
// of other, so other's values include every one of t's values.
func (t *EnumType) IsAssignableFrom(other Type) bool {
	o, ok := other.(*EnumType)
	if !ok {
		return false
	}
	if o == t {
		return true
	}
	return o.reaches(t, make(map[*EnumType]bool))
}

func (t *EnumType) reaches(target *EnumType, seen map[*EnumType]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	for _, ref := range t.unionRefs {
		if ref == target || ref.reaches(target, seen) {
			return true
		}
	}
	return false
}

// Values returns the transitive union of this enum's own values and
// every union-ref's values, own values first.
func (t *EnumType) Values() []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(*EnumType)
	walk = func(e *EnumType) {
		for _, v := range e.values {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
		for _, ref := range e.unionRefs {
			walk(ref)
		}
	}
	walk(t)
	return out
}

// NewInstance constructs an enum item whose domain is the transitive
// union of values, each given a fresh literal via the factory.
func (t *EnumType) NewInstance() (*EnumItem, error) {
	item, err := t.core.Factory.NewEnum(t, t.Values())
	if err != nil {
		return nil, err
	}
	item.typ = t
	return item, nil
}
