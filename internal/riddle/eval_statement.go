package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// execStatement executes an AST statement against (scope, env), per
// §4.10.
func execStatement(stmt ast.Statement, scope *Scope, env *Env) error {
	switch s := stmt.(type) {
	case *ast.LocalFieldStatement:
		return execLocalField(s, scope, env)
	case *ast.AssignmentStatement:
		return execAssignment(s, scope, env)
	case *ast.ExpressionStatement:
		return execExpressionStatement(s, scope, env)
	case *ast.BlockStatement:
		for _, child := range s.Stmts {
			if err := execStatement(child, scope, env); err != nil {
				return err
			}
		}
		return nil
	case *ast.DisjunctionStatement:
		return execDisjunction(s, scope, env)
	case *ast.ForStatement:
		return execFor(s, scope, env)
	case *ast.ReturnStatement:
		val, err := evalExpression(s.Value, scope, env)
		if err != nil {
			return err
		}
		env.Set("return", val)
		return nil
	case *ast.FormulaStatement:
		return execFormula(s, scope, env)
	}
	return &NotImplementedError{What: "statement execution for this node"}
}

func localFieldDefault(t Type, scope *Scope) (Item, error) {
	if ct, ok := t.(*ComponentType); ok {
		instances := ct.Instances()
		if len(instances) == 0 {
			return nil, &InconsistencyError{TypeName: ct.Name()}
		}
		// Multiple live instances would ideally bind a fresh domain over
		// them; the reference backend has no notion of an object-valued
		// choice, so the first created instance is bound deterministically.
		return instances[0], nil
	}
	return scope.Core().NewInstanceOf(t)
}

func execLocalField(s *ast.LocalFieldStatement, scope *Scope, env *Env) error {
	t, err := resolveQualifiedType(s.Type, scope)
	if err != nil {
		return err
	}
	for _, decl := range s.Decls {
		var val Item
		if decl.Init != nil {
			val, err = evalExpression(decl.Init, scope, env)
		} else {
			val, err = localFieldDefault(t, scope)
		}
		if err != nil {
			return err
		}
		env.Set(decl.Name, val)
	}
	return nil
}

func execAssignment(s *ast.AssignmentStatement, scope *Scope, env *Env) error {
	target, name, err := resolveEnvAt(s.Path, env)
	if err != nil {
		return err
	}
	val, err := evalExpression(s.Value, scope, env)
	if err != nil {
		return err
	}
	target.Set(name, val)
	return nil
}

func execExpressionStatement(s *ast.ExpressionStatement, scope *Scope, env *Env) error {
	item, err := evalExpression(s.Expr, scope, env)
	if err != nil {
		return err
	}
	b, ok := item.(*BoolItem)
	if !ok {
		return &TypeMismatchError{Message: "expression statement must evaluate to a boolean"}
	}
	return scope.Core().Factory.AssertFact(b)
}

func execDisjunction(s *ast.DisjunctionStatement, scope *Scope, env *Env) error {
	branches := make([]*ConjunctionValue, len(s.Blocks))
	for i, b := range s.Blocks {
		branches[i] = NewConjunctionValue(scope, env, b.Cost, b.Stmts)
	}
	return scope.Core().Factory.NewDisjunction(branches)
}

func execFor(s *ast.ForStatement, scope *Scope, env *Env) error {
	t, err := resolveQualifiedType(s.Type, scope)
	if err != nil {
		return err
	}
	switch tt := t.(type) {
	case *ComponentType:
		for _, inst := range tt.Instances() {
			child := NewEnv(env)
			child.Set(s.Var, inst)
			for _, stmt := range s.Body {
				if err := execStatement(stmt, scope, child); err != nil {
					return err
				}
			}
		}
		return nil
	case *EnumType:
		for _, v := range tt.Values() {
			item, err := scope.Core().Factory.NewEnum(tt, []string{v})
			if err != nil {
				return err
			}
			item.typ = tt
			child := NewEnv(env)
			child.Set(s.Var, item)
			for _, stmt := range s.Body {
				if err := execStatement(stmt, scope, child); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return &TypeMismatchError{Message: "for-all requires an enum or component type"}
}

func resolveComponentChain(path []string, env *Env) (*ComponentItem, error) {
	cur := env
	var comp *ComponentItem
	for _, seg := range path {
		item, ok := cur.Get(seg)
		if !ok {
			return nil, &UnresolvedNameError{Name: seg}
		}
		c, ok := item.(*ComponentItem)
		if !ok {
			return nil, &TypeMismatchError{Message: seg + " is not a component"}
		}
		comp = c
		cur = c.Env
	}
	return comp, nil
}

func execFormula(s *ast.FormulaStatement, scope *Scope, env *Env) error {
	var tau Item
	if len(s.ScopePath) > 0 {
		comp, err := resolveComponentChain(s.ScopePath, env)
		if err != nil {
			return err
		}
		tau = comp
	} else if inherited, ok := env.Get("tau"); ok {
		tau = inherited
	}

	var predScope *Scope
	if tau != nil {
		comp, ok := tau.(*ComponentItem)
		if !ok {
			return &TypeMismatchError{Message: "formula scope does not name a component"}
		}
		predScope = comp.typ.Scope
	} else {
		predScope = scope
	}
	pred, ok := predScope.GetPredicate(s.Predicate.Path[len(s.Predicate.Path)-1])
	if !ok {
		return &UnresolvedNameError{Name: s.Predicate.String()}
	}

	atomEnv := NewEnv(nil)
	if tau != nil {
		atomEnv.Set("tau", tau)
	}
	for _, arg := range s.Args {
		val, err := evalExpression(arg.Value, scope, env)
		if err != nil {
			return err
		}
		field, ok := pred.GetField(arg.Name)
		if !ok {
			return &UnresolvedNameError{Name: arg.Name}
		}
		if field.Type.IsAssignableFrom(val.Type()) {
			atomEnv.Set(arg.Name, val)
			continue
		}
		enumItem, eok := val.(*EnumItem)
		paramEnum, pok := field.Type.(*EnumType)
		if !eok || !pok {
			return &TypeMismatchError{Message: "formula argument " + arg.Name + " not assignable"}
		}
		allowed := make(map[string]bool)
		for _, v := range paramEnum.Values() {
			allowed[v] = true
		}
		for _, v := range enumItem.Values() {
			if !allowed[v] {
				if err := scope.Core().Factory.Forbid(enumItem, v); err != nil {
					return err
				}
			}
		}
		atomEnv.Set(arg.Name, enumItem)
	}

	atom, err := scope.Core().Factory.NewAtom(s.IsFact, pred, atomEnv)
	if err != nil {
		return err
	}
	if err := pred.Call(atom); err != nil {
		return err
	}

	for name, field := range pred.allFields() {
		if _, ok := atom.Env.Get(name); ok {
			continue
		}
		val, err := scope.Core().defaultFieldValue(field, pred.Scope, atom.Env)
		if err != nil {
			return err
		}
		atom.Env.Set(name, val)
	}

	env.Set(s.Name, atom)
	return nil
}
