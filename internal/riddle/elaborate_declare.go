package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// declarePass inserts typedef/enum/class declarations as bare type
// shells into their enclosing scope, and predicate declarations as
// bare predicate shells, in source order within a unit and input order
// across units. Nothing is resolved yet; that is refine's job.
func declarePass(units []*ast.CompilationUnit, core *Core) error {
	for _, u := range units {
		for _, decl := range u.Types {
			if err := declareType(decl, &core.Scope, core); err != nil {
				return err
			}
		}
		for _, p := range u.Predicates {
			pt := &PredicateType{Scope: NewScope(&core.Scope, core), name: p.Name, core: core}
			if err := core.Scope.AddPredicate(pt); err != nil {
				return err
			}
		}
	}
	return nil
}

func declareType(decl ast.Declaration, scope *Scope, core *Core) error {
	switch d := decl.(type) {
	case *ast.TypedefDeclaration:
		return scope.AddType(&TypedefType{name: d.Name, core: core})
	case *ast.EnumDeclaration:
		return scope.AddType(&EnumType{name: d.Name, core: core})
	case *ast.ClassDeclaration:
		ct := &ComponentType{Scope: NewScope(scope, core), name: d.Name, core: core}
		if err := scope.AddType(ct); err != nil {
			return err
		}
		for _, nested := range d.Types {
			if err := declareType(nested, ct.Scope, core); err != nil {
				return err
			}
		}
		for _, p := range d.Predicates {
			pt := &PredicateType{Scope: NewScope(ct.Scope, core), name: p.Name, core: core}
			if err := ct.Scope.AddPredicate(pt); err != nil {
				return err
			}
		}
		return nil
	}
	return &NotImplementedError{What: "declare for declaration kind"}
}
