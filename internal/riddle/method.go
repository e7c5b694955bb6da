package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// Method is a callable declared on a scope (core or a component type).
// ReturnType is nil for a void method.
type Method struct {
	Name       string
	Params     []*Field
	ReturnType Type
	Body       []ast.Statement
	scope      *Scope
}

// Invoke pushes a fresh env child of callerEnv (names and types resolve
// in the method's declaring scope, while bindings not found in the
// fresh env are looked up through callerEnv's chain), binds parameters,
// executes the body, and — if ReturnType is set — returns whatever was
// bound under "return". receiver is non-nil for a qualified call
// (`obj.method(...)`); it is rebound under "this" so the body's bare
// `this`/`this.field` expressions resolve against the right instance.
// A nil receiver leaves any "this" already visible through callerEnv's
// chain in place, which is what an unqualified call from inside
// another method or constructor body needs.
func (m *Method) Invoke(callerEnv *Env, receiver *ComponentItem, args []Item) (Item, error) {
	if len(args) != len(m.Params) {
		return nil, &TypeMismatchError{Message: "method " + m.Name + ": argument count mismatch"}
	}
	for i, p := range m.Params {
		if !p.Type.IsAssignableFrom(args[i].Type()) {
			return nil, &TypeMismatchError{Message: "method " + m.Name + ": argument " + p.Name + " not assignable"}
		}
	}
	env := NewEnv(callerEnv)
	if receiver != nil {
		env.Set("this", receiver)
	}
	for i, p := range m.Params {
		env.Set(p.Name, args[i])
	}
	for _, stmt := range m.Body {
		if err := execStatement(stmt, m.scope, env); err != nil {
			return nil, err
		}
	}
	if m.ReturnType == nil {
		return nil, nil
	}
	ret, _ := env.Get("return")
	return ret, nil
}
