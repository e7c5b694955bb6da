package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// refinePass resolves parent lists of enums and classes, resolves
// field/parameter/return types, and builds constructor and method
// objects, registering them on the shells declarePass created. Fails
// with UnresolvedName if a referenced type is still missing.
func refinePass(units []*ast.CompilationUnit, core *Core) error {
	for _, u := range units {
		for _, decl := range u.Types {
			if err := refineType(decl, &core.Scope); err != nil {
				return err
			}
		}
		for _, md := range u.Methods {
			if err := refineMethod(md, &core.Scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func refineType(decl ast.Declaration, scope *Scope) error {
	switch d := decl.(type) {
	case *ast.TypedefDeclaration:
		shell, ok := scope.types[d.Name].(*TypedefType)
		if !ok {
			return &UnresolvedNameError{Name: d.Name}
		}
		base, err := resolveQualifiedType(d.Base, scope)
		if err != nil {
			return err
		}
		shell.base = base
		shell.expr = d.Expr
		return nil

	case *ast.EnumDeclaration:
		shell, ok := scope.types[d.Name].(*EnumType)
		if !ok {
			return &UnresolvedNameError{Name: d.Name}
		}
		shell.values = append([]string(nil), d.Values...)
		for _, ref := range d.UnionRefs {
			refType, err := resolveQualifiedType(ref, scope)
			if err != nil {
				return err
			}
			et, ok := refType.(*EnumType)
			if !ok {
				return &TypeMismatchError{Message: ref.String() + " is not an enum type"}
			}
			shell.unionRefs = append(shell.unionRefs, et)
		}
		return nil

	case *ast.ClassDeclaration:
		ct, ok := scope.types[d.Name].(*ComponentType)
		if !ok {
			return &UnresolvedNameError{Name: d.Name}
		}
		for _, baseRef := range d.Bases {
			baseType, err := resolveQualifiedType(baseRef, scope)
			if err != nil {
				return err
			}
			bt, ok := baseType.(*ComponentType)
			if !ok {
				return &TypeMismatchError{Message: baseRef.String() + " is not a component type"}
			}
			ct.parents = append(ct.parents, bt)
			ct.Scope.AddInherits(bt.Scope)
		}
		if err := ct.Scope.AddField(&Field{Name: "this", Type: ct, Synthetic: true}); err != nil {
			return err
		}
		for _, fd := range d.Fields {
			ft, err := resolveQualifiedType(fd.Type, ct.Scope)
			if err != nil {
				return err
			}
			field := &Field{Name: fd.Name, Type: ft, Init: fd.Init, Synthetic: fd.Synthetic}
			if err := ct.Scope.AddField(field); err != nil {
				return err
			}
		}
		for _, cd := range d.Constructors {
			params, err := resolveParams(cd.Params, ct.Scope)
			if err != nil {
				return err
			}
			ctorScope := NewScope(ct.Scope, ct.Core())
			for _, p := range params {
				if err := ctorScope.AddField(p); err != nil {
					return err
				}
			}
			ct.Constructors = append(ct.Constructors, &Constructor{
				Params: params, Inits: cd.Inits, Body: cd.Body, owner: ct, scope: ctorScope,
			})
		}
		for _, md := range d.Methods {
			if err := refineMethod(md, ct.Scope); err != nil {
				return err
			}
		}
		for _, nested := range d.Types {
			if err := refineType(nested, ct.Scope); err != nil {
				return err
			}
		}
		return nil
	}
	return &NotImplementedError{What: "refine for declaration kind"}
}

func refineMethod(md *ast.MethodDeclaration, scope *Scope) error {
	params, err := resolveParams(md.Params, scope)
	if err != nil {
		return err
	}
	var ret Type
	if md.ReturnType != nil {
		ret, err = resolveQualifiedType(*md.ReturnType, scope)
		if err != nil {
			return err
		}
	}
	methodScope := NewScope(scope, scope.Core())
	for _, p := range params {
		if err := methodScope.AddField(p); err != nil {
			return err
		}
	}
	if owner, ok := scope.fields["this"]; ok {
		if err := methodScope.AddField(&Field{Name: "this", Type: owner.Type, Synthetic: true}); err != nil {
			return err
		}
	}
	scope.AddMethod(&Method{Name: md.Name, Params: params, ReturnType: ret, Body: md.Body, scope: methodScope})
	return nil
}

func resolveParams(params []ast.Param, scope *Scope) ([]*Field, error) {
	out := make([]*Field, len(params))
	for i, p := range params {
		t, err := resolveQualifiedType(p.Type, scope)
		if err != nil {
			return nil, err
		}
		out[i] = &Field{Name: p.Name, Type: t}
	}
	return out, nil
}
