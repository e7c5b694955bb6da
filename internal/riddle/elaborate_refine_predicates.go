package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// refinePredicatesPass resolves predicate parent lists and parameter
// types, for both top-level and class-nested predicates. It runs after
// refine so every class has already seen its fields and bases.
func refinePredicatesPass(units []*ast.CompilationUnit, core *Core) error {
	for _, u := range units {
		for _, p := range u.Predicates {
			if err := refinePredicate(p, &core.Scope); err != nil {
				return err
			}
		}
		for _, decl := range u.Types {
			if err := refinePredicatesInType(decl, &core.Scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func refinePredicatesInType(decl ast.Declaration, scope *Scope) error {
	cd, ok := decl.(*ast.ClassDeclaration)
	if !ok {
		return nil
	}
	ct, ok := scope.types[cd.Name].(*ComponentType)
	if !ok {
		return &UnresolvedNameError{Name: cd.Name}
	}
	for _, p := range cd.Predicates {
		if err := refinePredicate(p, ct.Scope); err != nil {
			return err
		}
	}
	for _, nested := range cd.Types {
		if err := refinePredicatesInType(nested, ct.Scope); err != nil {
			return err
		}
	}
	return nil
}

func refinePredicate(pd *ast.PredicateDeclaration, scope *Scope) error {
	pt, ok := scope.predicates[pd.Name]
	if !ok {
		return &UnresolvedNameError{Name: pd.Name}
	}
	for _, parentRef := range pd.Parents {
		parent, err := resolveQualifiedPredicate(parentRef, scope)
		if err != nil {
			return err
		}
		pt.parents = append(pt.parents, parent)
		pt.Scope.AddInherits(parent.Scope)
	}
	params, err := resolveParams(pd.Params, pt.Scope)
	if err != nil {
		return err
	}
	for _, p := range params {
		if err := pt.Scope.AddField(p); err != nil {
			return err
		}
	}
	pt.Params = params
	pt.Body = pd.Body
	return nil
}

// resolveQualifiedPredicate walks every segment but the last as a
// nested-type path, then looks up the final segment among predicates.
func resolveQualifiedPredicate(q ast.QualifiedType, scope *Scope) (*PredicateType, error) {
	cur := scope
	for i, seg := range q.Path {
		if i == len(q.Path)-1 {
			p, ok := cur.GetPredicate(seg)
			if !ok {
				return nil, &UnresolvedNameError{Name: seg}
			}
			return p, nil
		}
		t, ok := cur.GetType(seg)
		if !ok {
			return nil, &UnresolvedNameError{Name: seg}
		}
		ct, ok := t.(*ComponentType)
		if !ok {
			return nil, &UnresolvedNameError{Name: seg}
		}
		cur = ct.Scope
	}
	return nil, &UnresolvedNameError{Name: "<empty predicate path>"}
}
