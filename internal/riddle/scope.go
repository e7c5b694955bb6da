package riddle

// Scope is a name→Field mapping with a parent scope and a reference to
// the root core. Lookups walk the lexical parent chain first; scopes
// belonging to a component or predicate type additionally fall back to
// the inheritance chain of their owning type once the lexical chain is
// exhausted.
type Scope struct {
	parent    *Scope
	core      *Core
	fields    map[string]*Field
	types     map[string]Type
	predicates map[string]*PredicateType
	methods   map[string][]*Method
	// inherits lists the scopes of parent component/predicate types, to
	// be searched after the lexical chain fails.
	inherits []*Scope
}

// NewScope creates a Scope child of parent, rooted at core.
func NewScope(parent *Scope, core *Core) *Scope {
	return &Scope{
		parent:     parent,
		core:       core,
		fields:     make(map[string]*Field),
		types:      make(map[string]Type),
		predicates: make(map[string]*PredicateType),
		methods:    make(map[string][]*Method),
	}
}

// AddInherits registers a parent type's scope for inheritance-chain
// lookup fallback.
func (s *Scope) AddInherits(parent *Scope) { s.inherits = append(s.inherits, parent) }

// Core returns the scope's root core.
func (s *Scope) Core() *Core { return s.core }

// Parent returns the scope's lexical parent, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// AddField inserts field, failing with DuplicateNameError if the name
// is already bound in this scope (shadowing an outer scope's field of
// the same name is legal; only same-scope collisions are rejected).
func (s *Scope) AddField(f *Field) error {
	if _, ok := s.fields[f.Name]; ok {
		return &DuplicateNameError{Name: f.Name}
	}
	s.fields[f.Name] = f
	return nil
}

// GetField walks the local map, then the lexical parent chain, then
// (for component/predicate scopes) the inheritance chain.
func (s *Scope) GetField(name string) (*Field, bool) {
	if f, ok := s.fields[name]; ok {
		return f, true
	}
	if s.parent != nil {
		if f, ok := s.parent.GetField(name); ok {
			return f, true
		}
	}
	for _, anc := range s.inherits {
		if f, ok := anc.GetField(name); ok {
			return f, true
		}
	}
	return nil, false
}

// AddType inserts a type shell or resolved type, failing with
// DuplicateNameError on name collision within this scope.
func (s *Scope) AddType(t Type) error {
	if _, ok := s.types[t.Name()]; ok {
		return &DuplicateNameError{Name: t.Name()}
	}
	s.types[t.Name()] = t
	return nil
}

// GetType walks the same chain as GetField.
func (s *Scope) GetType(name string) (Type, bool) {
	if t, ok := s.types[name]; ok {
		return t, true
	}
	if s.parent != nil {
		if t, ok := s.parent.GetType(name); ok {
			return t, true
		}
	}
	for _, anc := range s.inherits {
		if t, ok := anc.GetType(name); ok {
			return t, true
		}
	}
	return nil, false
}

// AddPredicate inserts a predicate shell, failing on name collision.
func (s *Scope) AddPredicate(p *PredicateType) error {
	if _, ok := s.predicates[p.name]; ok {
		return &DuplicateNameError{Name: p.name}
	}
	s.predicates[p.name] = p
	return nil
}

// GetPredicate walks the same chain as GetField.
func (s *Scope) GetPredicate(name string) (*PredicateType, bool) {
	if p, ok := s.predicates[name]; ok {
		return p, true
	}
	if s.parent != nil {
		if p, ok := s.parent.GetPredicate(name); ok {
			return p, true
		}
	}
	for _, anc := range s.inherits {
		if p, ok := anc.GetPredicate(name); ok {
			return p, true
		}
	}
	return nil, false
}

// AddMethod registers an overload of name; overload sets are never
// rejected for collision (arity/assignability disambiguates at call
// time), only exact duplicate-signature adds would be, which the
// elaborator does not currently check.
func (s *Scope) AddMethod(m *Method) {
	s.methods[m.Name] = append(s.methods[m.Name], m)
}

// GetMethod returns the first overload of name in walk order (lexical
// then inheritance) whose parameters are all assignable from argTypes.
func (s *Scope) GetMethod(name string, argTypes []Type) (*Method, bool) {
	if overloads, ok := s.methods[name]; ok {
		if m, ok := matchOverload(overloads, argTypes); ok {
			return m, true
		}
	}
	if s.parent != nil {
		if m, ok := s.parent.GetMethod(name, argTypes); ok {
			return m, true
		}
	}
	for _, anc := range s.inherits {
		if m, ok := anc.GetMethod(name, argTypes); ok {
			return m, true
		}
	}
	return nil, false
}

func matchOverload(overloads []*Method, argTypes []Type) (*Method, bool) {
	for _, m := range overloads {
		if len(m.Params) != len(argTypes) {
			continue
		}
		ok := true
		for i, p := range m.Params {
			if !p.Type.IsAssignableFrom(argTypes[i]) {
				ok = false
				break
			}
		}
		if ok {
			return m, true
		}
	}
	return nil, false
}
