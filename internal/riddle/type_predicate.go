package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// PredicateType is a parameterized statement body whose calls
// materialize atoms. It extends component-like scope semantics: its
// own Scope holds its declared parameters as fields, and `inherits` is
// wired to each parent predicate's Scope.
type PredicateType struct {
	*Scope
	name    string
	parents []*PredicateType
	Params  []*Field
	Body    []ast.Statement
	atoms   []*Atom
	core    *Core
}

func (t *PredicateType) Name() string      { return t.name }
func (t *PredicateType) IsPrimitive() bool { return false }

func (t *PredicateType) IsAssignableFrom(other Type) bool {
	o, ok := other.(*PredicateType)
	if !ok {
		return false
	}
	if o == t {
		return true
	}
	return o.reaches(t, make(map[*PredicateType]bool))
}

func (t *PredicateType) reaches(target *PredicateType, seen map[*PredicateType]bool) bool {
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

// Atoms returns every atom materialized from this predicate.
func (t *PredicateType) Atoms() []*Atom { return t.atoms }

// allFields collects this predicate's own declared parameters plus
// every parent's transitively, own names taking priority on conflict.
func (t *PredicateType) allFields() map[string]*Field {
	out := make(map[string]*Field)
	var walk func(p *PredicateType)
	walk = func(p *PredicateType) {
		for _, parent := range p.parents {
			walk(parent)
		}
		for name, f := range p.fields {
			out[name] = f
		}
	}
	walk(t)
	return out
}

// Call recursively invokes every parent's Call, then executes each
// statement of Body against a fresh env whose parent is the atom's
// env, registering atom in the predicate's atom list.
func (t *PredicateType) Call(atom *Atom) error {
	for _, p := range t.parents {
		if err := p.Call(atom); err != nil {
			return err
		}
	}
	t.atoms = append(t.atoms, atom)
	bodyEnv := NewEnv(atom.Env)
	for _, stmt := range t.Body {
		if err := execStatement(stmt, t.Scope, bodyEnv); err != nil {
			return err
		}
	}
	return nil
}
