package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// Constructor is one overload of a component type's constructor: its
// parameters, init list (field initializers and/or a base-constructor
// call), and body. owner is the component type it allocates instances
// of; scope is the body/init-list's lexical scope (a child of owner's
// scope holding the parameters as fields).
type Constructor struct {
	Params []*Field
	Inits  []ast.Init
	Body   []ast.Statement
	owner  *ComponentType
	scope  *Scope
}

// Invoke implements §4.6: allocate a fresh instance of owner and run
// this constructor's init list and body against it.
func (c *Constructor) Invoke(args []Item) (*ComponentItem, error) {
	instance := c.owner.NewInstance()
	if err := c.invokeInto(instance, args); err != nil {
		return nil, err
	}
	return instance, nil
}

// invokeInto runs this constructor's init list and body against an
// already-allocated instance, so a base-constructor call can apply its
// side effects directly to the derived instance rather than a separate
// one.
func (c *Constructor) invokeInto(instance *ComponentItem, args []Item) error {
	if len(args) != len(c.Params) {
		return &TypeMismatchError{Message: "constructor of " + c.owner.Name() + ": argument count mismatch"}
	}
	for i, p := range c.Params {
		if !p.Type.IsAssignableFrom(args[i].Type()) {
			return &TypeMismatchError{Message: "constructor of " + c.owner.Name() + ": argument " + p.Name + " not assignable"}
		}
	}
	paramEnv := NewEnv(instance.Env)
	paramEnv.Set("this", instance)
	for i, p := range c.Params {
		paramEnv.Set(p.Name, args[i])
	}

	bound := make(map[string]bool)
	for _, init := range c.Inits {
		if field, ok := c.owner.fields[init.Name]; ok {
			val, err := c.evalFieldInit(field, init.Args, paramEnv)
			if err != nil {
				return err
			}
			instance.Set(field.Name, val)
			bound[field.Name] = true
			continue
		}
		parent := c.findParent(init.Name)
		if parent == nil {
			return &UnresolvedNameError{Name: init.Name}
		}
		argItems, argTypes, err := evalArgs(init.Args, c.scope, paramEnv)
		if err != nil {
			return err
		}
		ctor, ok := parent.GetConstructor(argTypes)
		if !ok {
			return &UnresolvedNameError{Name: parent.Name() + " constructor"}
		}
		if err := ctor.invokeInto(instance, argItems); err != nil {
			return err
		}
	}

	for name, field := range c.owner.fields {
		if bound[name] || field.Name == "this" {
			continue
		}
		if _, already := instance.Get(name); already {
			continue
		}
		val, err := c.owner.core.defaultFieldValue(field, c.scope, instance.Env)
		if err != nil {
			return err
		}
		instance.Set(name, val)
	}

	for _, stmt := range c.Body {
		if err := execStatement(stmt, c.scope, paramEnv); err != nil {
			return err
		}
	}
	return nil
}

func (c *Constructor) evalFieldInit(field *Field, args []ast.Expression, env *Env) (Item, error) {
	if ct, ok := field.Type.(*ComponentType); ok {
		argItems, argTypes, err := evalArgs(args, c.scope, env)
		if err != nil {
			return nil, err
		}
		ctor, ok := ct.GetConstructor(argTypes)
		if !ok {
			return nil, &UnresolvedNameError{Name: ct.Name() + " constructor"}
		}
		return ctor.Invoke(argItems)
	}
	if len(args) != 1 {
		return nil, &TypeMismatchError{Message: "field " + field.Name + ": expected a single initializer expression"}
	}
	return evalExpression(args[0], c.scope, env)
}

func (c *Constructor) findParent(name string) *ComponentType {
	for _, p := range c.owner.parents {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// evalArgs evaluates each expression in args against scope/env,
// returning parallel Item and Type slices.
func evalArgs(args []ast.Expression, scope *Scope, env *Env) ([]Item, []Type, error) {
	items := make([]Item, len(args))
	types := make([]Type, len(args))
	for i, a := range args {
		it, err := evalExpression(a, scope, env)
		if err != nil {
			return nil, nil, err
		}
		items[i] = it
		types[i] = it.Type()
	}
	return items, types, nil
}
