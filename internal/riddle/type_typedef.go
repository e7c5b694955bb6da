package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// TypedefType aliases a primitive base type to the value of an
// expression evaluated fresh on every NewInstance, per the decision
// recorded in DESIGN.md: typedef expressions are never memoized.
type TypedefType struct {
	name string
	base Type
	expr ast.Expression
	core *Core
}

func (t *TypedefType) Name() string      { return t.name }
func (t *TypedefType) IsPrimitive() bool { return false }
func (t *TypedefType) IsAssignableFrom(other Type) bool { return other == Type(t) }

// NewInstance evaluates the typedef's expression in a fresh env whose
// parent is the core's root env, re-stamping the result's type as the
// typedef itself (not its primitive base) so IsAssignableFrom's
// identity check treats two instances of the same typedef as
// interchangeable.
func (t *TypedefType) NewInstance() (Item, error) {
	env := NewEnv(&t.core.Env)
	item, err := evalExpression(t.expr, &t.core.Scope, env)
	if err != nil {
		return nil, err
	}
	return stampType(item, t), nil
}

// stampType rewrites item's reported Type() to t, for the primitive
// wrapper variants a typedef's base can be.
func stampType(item Item, t Type) Item {
	switch v := item.(type) {
	case *BoolItem:
		v.typ = t
		return v
	case *ArithItem:
		v.typ = t
		return v
	case *StringItem:
		v.typ = t
		return v
	default:
		return item
	}
}
