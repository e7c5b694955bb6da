package riddle

import (
	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
)

// evalExpression evaluates an AST expression to an Item against
// (scope, env), per §4.9.
func evalExpression(expr ast.Expression, scope *Scope, env *Env) (Item, error) {
	switch e := expr.(type) {
	case *ast.BoolLiteral:
		return scope.Core().Factory.NewBoolValue(e.Value)
	case *ast.IntLiteral:
		item, err := scope.Core().Factory.NewIntValue(e.Value)
		if err != nil {
			return nil, err
		}
		return stampType(item, scope.Core().IntType()), nil
	case *ast.RealLiteral:
		item, err := scope.Core().Factory.NewRealValue(e.Value)
		if err != nil {
			return nil, err
		}
		return stampType(item, scope.Core().RealType()), nil
	case *ast.StringLiteral:
		return scope.Core().Factory.NewStringValue(e.Value)
	case *ast.Identifier:
		return resolvePath(e.Path, scope, env)
	case *ast.UnaryExpression:
		return evalUnary(e, scope, env)
	case *ast.NaryExpression:
		return evalNary(e, scope, env)
	case *ast.CompareExpression:
		return evalCompare(e, scope, env)
	case *ast.ImplicationExpr:
		return evalImplication(e, scope, env)
	case *ast.CastExpression:
		return evalCast(e, scope, env)
	case *ast.ConstructorExpr:
		return evalConstructorExpr(e, scope, env)
	case *ast.CallExpression:
		return evalCall(e, scope, env)
	}
	return nil, &NotImplementedError{What: "expression evaluation for this node"}
}

// resolvePath walks env chain segment by segment: every non-last
// segment must yield a component item (which is itself an env); the
// last segment is looked up in whatever env the walk reached.
func resolvePath(path []string, scope *Scope, env *Env) (Item, error) {
	cur := env
	for i, seg := range path {
		if i == len(path)-1 {
			item, ok := cur.Get(seg)
			if !ok {
				return nil, &UnresolvedNameError{Name: seg}
			}
			return item, nil
		}
		item, ok := cur.Get(seg)
		if !ok {
			return nil, &UnresolvedNameError{Name: seg}
		}
		comp, ok := item.(*ComponentItem)
		if !ok {
			return nil, &TypeMismatchError{Message: "qualified path segment " + seg + " is not a component"}
		}
		cur = comp.Env
	}
	return nil, &UnresolvedNameError{Name: "<empty path>"}
}

// resolveEnvAt walks every-but-the-last segment of path and returns
// the component env reached and the trailing field name, for the
// assignment statement's use.
func resolveEnvAt(path []string, env *Env) (*Env, string, error) {
	cur := env
	for _, seg := range path[:len(path)-1] {
		item, ok := cur.Get(seg)
		if !ok {
			return nil, "", &UnresolvedNameError{Name: seg}
		}
		comp, ok := item.(*ComponentItem)
		if !ok {
			return nil, "", &TypeMismatchError{Message: "qualified path segment " + seg + " is not a component"}
		}
		cur = comp.Env
	}
	return cur, path[len(path)-1], nil
}

func evalUnary(e *ast.UnaryExpression, scope *Scope, env *Env) (Item, error) {
	operand, err := evalExpression(e.Operand, scope, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case lexer.PLUS:
		return operand, nil
	case lexer.MINUS:
		a, ok := operand.(*ArithItem)
		if !ok {
			return nil, &TypeMismatchError{Message: "unary - requires an arithmetic operand"}
		}
		return scope.Core().Factory.Minus(a)
	case lexer.BANG:
		b, ok := operand.(*BoolItem)
		if !ok {
			return nil, &TypeMismatchError{Message: "unary ! requires a boolean operand"}
		}
		return scope.Core().Factory.Negate(b)
	}
	return nil, &NotImplementedError{What: "unary operator " + e.Op.String()}
}

func evalOperandsArith(exprs []ast.Expression, scope *Scope, env *Env) ([]*ArithItem, error) {
	out := make([]*ArithItem, len(exprs))
	for i, x := range exprs {
		it, err := evalExpression(x, scope, env)
		if err != nil {
			return nil, err
		}
		a, ok := it.(*ArithItem)
		if !ok {
			return nil, &TypeMismatchError{Message: "expected an arithmetic operand"}
		}
		out[i] = a
	}
	return out, nil
}

func evalOperandsBool(exprs []ast.Expression, scope *Scope, env *Env) ([]*BoolItem, error) {
	out := make([]*BoolItem, len(exprs))
	for i, x := range exprs {
		it, err := evalExpression(x, scope, env)
		if err != nil {
			return nil, err
		}
		b, ok := it.(*BoolItem)
		if !ok {
			return nil, &TypeMismatchError{Message: "expected a boolean operand"}
		}
		out[i] = b
	}
	return out, nil
}

// evalNary dispatches the parser's flattened operator-run nodes to the
// matching factory combinator: |,&,^ over booleans, +,-,*,/ over
// arithmetic.
func evalNary(e *ast.NaryExpression, scope *Scope, env *Env) (Item, error) {
	f := scope.Core().Factory
	// widen types an arithmetic result by WidestType over its operands.
	widen := func(items []*ArithItem) func(*ArithItem, error) (Item, error) {
		return func(res *ArithItem, err error) (Item, error) {
			if err != nil {
				return nil, err
			}
			ops := make([]Item, len(items))
			for i := range items {
				ops[i] = items[i]
			}
			return stampType(res, scope.Core().WidestType(ops...)), nil
		}
	}
	switch e.Op {
	case lexer.PIPE:
		items, err := evalOperandsBool(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return f.Disj(items)
	case lexer.AMP:
		items, err := evalOperandsBool(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return f.Conj(items)
	case lexer.CARET:
		items, err := evalOperandsBool(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return f.ExctOne(items)
	case lexer.PLUS:
		items, err := evalOperandsArith(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return widen(items)(f.Add(items))
	case lexer.MINUS:
		items, err := evalOperandsArith(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return widen(items)(f.Sub(items))
	case lexer.ASTERISK:
		items, err := evalOperandsArith(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return widen(items)(f.Mul(items))
	case lexer.SLASH:
		items, err := evalOperandsArith(e.Operands, scope, env)
		if err != nil {
			return nil, err
		}
		return widen(items)(f.Div(items))
	}
	return nil, &NotImplementedError{What: "n-ary operator " + e.Op.String()}
}

func evalCompare(e *ast.CompareExpression, scope *Scope, env *Env) (Item, error) {
	left, err := evalExpression(e.Left, scope, env)
	if err != nil {
		return nil, err
	}
	right, err := evalExpression(e.Right, scope, env)
	if err != nil {
		return nil, err
	}
	f := scope.Core().Factory
	if e.Op == lexer.EQ {
		return f.Eq(left, right)
	}
	if e.Op == lexer.NOT_EQ {
		eq, err := f.Eq(left, right)
		if err != nil {
			return nil, err
		}
		return f.Negate(eq)
	}
	la, lok := left.(*ArithItem)
	ra, rok := right.(*ArithItem)
	if !lok || !rok {
		return nil, &TypeMismatchError{Message: "ordering comparison requires arithmetic operands"}
	}
	switch e.Op {
	case lexer.LESS:
		return f.Lt(la, ra)
	case lexer.LESS_EQ:
		return f.Leq(la, ra)
	case lexer.GREATER_EQ:
		return f.Geq(la, ra)
	case lexer.GREATER:
		return f.Gt(la, ra)
	}
	return nil, &NotImplementedError{What: "comparison operator " + e.Op.String()}
}

// evalImplication rewrites `a -> b` as `disj(negate(a), b)`.
func evalImplication(e *ast.ImplicationExpr, scope *Scope, env *Env) (Item, error) {
	left, err := evalExpression(e.Left, scope, env)
	if err != nil {
		return nil, err
	}
	right, err := evalExpression(e.Right, scope, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*BoolItem)
	if !ok {
		return nil, &TypeMismatchError{Message: "implication requires boolean operands"}
	}
	rb, ok := right.(*BoolItem)
	if !ok {
		return nil, &TypeMismatchError{Message: "implication requires boolean operands"}
	}
	f := scope.Core().Factory
	neg, err := f.Negate(lb)
	if err != nil {
		return nil, err
	}
	return f.Disj([]*BoolItem{neg, rb})
}

// evalCast checks nominal assignability in either direction and keeps
// the underlying item: casts are checks, not coercions.
func evalCast(e *ast.CastExpression, scope *Scope, env *Env) (Item, error) {
	item, err := evalExpression(e.Expr, scope, env)
	if err != nil {
		return nil, err
	}
	target, err := resolveQualifiedType(e.Type, scope)
	if err != nil {
		return nil, err
	}
	if target.IsAssignableFrom(item.Type()) || item.Type().IsAssignableFrom(target) {
		return item, nil
	}
	return nil, &TypeMismatchError{Message: "cannot cast " + item.Type().Name() + " to " + target.Name()}
}

func evalConstructorExpr(e *ast.ConstructorExpr, scope *Scope, env *Env) (Item, error) {
	t, err := resolveQualifiedType(e.Type, scope)
	if err != nil {
		return nil, err
	}
	ct, ok := t.(*ComponentType)
	if !ok {
		return nil, &TypeMismatchError{Message: e.Type.String() + " is not a component type"}
	}
	argItems, argTypes, err := evalArgs(e.Args, scope, env)
	if err != nil {
		return nil, err
	}
	ctor, ok := ct.GetConstructor(argTypes)
	if !ok {
		return nil, &UnresolvedNameError{Name: ct.Name() + " constructor"}
	}
	return ctor.Invoke(argItems)
}

// evalCall resolves a bare call against the lexical scope, or a
// qualified call's receiver chain into a concrete *ComponentItem (the
// same walk execFormula's resolveComponentChain does for formula
// scopes), then dispatches by arity/assignability on the receiver's
// own type scope.
func evalCall(e *ast.CallExpression, scope *Scope, env *Env) (Item, error) {
	argItems, argTypes, err := evalArgs(e.Args, scope, env)
	if err != nil {
		return nil, err
	}
	if len(e.Path) == 1 {
		m, ok := scope.GetMethod(e.Path[0], argTypes)
		if !ok {
			return nil, &UnresolvedNameError{Name: e.Path[0]}
		}
		return m.Invoke(env, nil, argItems)
	}
	recv, err := resolveComponentChain(e.Path[:len(e.Path)-1], env)
	if err != nil {
		return nil, err
	}
	name := e.Path[len(e.Path)-1]
	m, ok := recv.typ.Scope.GetMethod(name, argTypes)
	if !ok {
		return nil, &UnresolvedNameError{Name: name}
	}
	return m.Invoke(recv.Env, recv, argItems)
}

// resolveQualifiedType walks a dotted type path through nested type
// maps: every segment but the last must itself resolve to a component
// type whose Scope is searched for the next segment.
func resolveQualifiedType(q ast.QualifiedType, scope *Scope) (Type, error) {
	if q.IsPrimitive() {
		switch q.Path[0] {
		case "bool":
			return scope.Core().BoolType(), nil
		case "int":
			return scope.Core().IntType(), nil
		case "real":
			return scope.Core().RealType(), nil
		case "time":
			return scope.Core().TimeType(), nil
		case "string":
			return scope.Core().StringType(), nil
		}
	}
	cur := scope
	var t Type
	for i, seg := range q.Path {
		found, ok := cur.GetType(seg)
		if !ok {
			return nil, &UnresolvedNameError{Name: seg}
		}
		t = found
		if i < len(q.Path)-1 {
			ct, ok := found.(*ComponentType)
			if !ok {
				return nil, &UnresolvedNameError{Name: seg}
			}
			cur = ct.Scope
		}
	}
	return t, nil
}
