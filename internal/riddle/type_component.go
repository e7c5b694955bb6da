package riddle

// ComponentType is a user-defined class: its parents, ordered
// constructors, overload sets of methods, nested types, nested
// predicates, and the fields declared on instances. Fields, methods,
// nested types, and predicates are held in Scope (embedded), whose
// `inherits` list is wired to each parent's Scope so lookup falls back
// through the inheritance chain exactly as §4.3 specifies.
type ComponentType struct {
	*Scope
	name         string
	parents      []*ComponentType
	Constructors []*Constructor
	instances    []*ComponentItem
	core         *Core
}

func (t *ComponentType) Name() string      { return t.name }
func (t *ComponentType) IsPrimitive() bool { return false }

// IsAssignableFrom holds under identity, or if walking other's parent
// graph reaches t.
func (t *ComponentType) IsAssignableFrom(other Type) bool {
	o, ok := other.(*ComponentType)
	if !ok {
		return false
	}
	if o == t {
		return true
	}
	return o.reaches(t, make(map[*ComponentType]bool))
}

func (t *ComponentType) reaches(target *ComponentType, seen map[*ComponentType]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	for _, p := range t.parents {
		if p == target || p.reaches(target, seen) {
			return true
		}
	}
	return false
}

// Instances returns the component's live instances in creation order.
func (t *ComponentType) Instances() []*ComponentItem { return t.instances }

// NewInstance allocates a fresh ComponentItem, whose env is a child of
// the core's root env, and registers it in the type's instance list.
// It does not bind any fields — callers (constructors, or
// Core.NewInstanceOf when a component-typed field has no initializer)
// are responsible for that.
func (t *ComponentType) NewInstance() *ComponentItem {
	item := &ComponentItem{Env: NewEnv(&t.core.Env), typ: t}
	t.instances = append(t.instances, item)
	return item
}

// GetConstructor returns the first constructor whose parameters are
// all assignable from argTypes.
func (t *ComponentType) GetConstructor(argTypes []Type) (*Constructor, bool) {
	for _, c := range t.Constructors {
		if len(c.Params) != len(argTypes) {
			continue
		}
		ok := true
		for i, p := range c.Params {
			if !p.Type.IsAssignableFrom(argTypes[i]) {
				ok = false
				break
			}
		}
		if ok {
			return c, true
		}
	}
	return nil, false
}
