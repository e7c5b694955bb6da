package riddle

// Core is the root of a RiDDLe program: the top-level scope (types,
// predicates, methods, fields declared outside any class) and the
// top-level env, plus the solver Factory every item and constraint is
// built through.
type Core struct {
	Env     Env
	Scope   Scope
	Factory Factory

	boolType   *PrimitiveType
	intType    *PrimitiveType
	realType   *PrimitiveType
	timeType   *PrimitiveType
	stringType *PrimitiveType
}

// New creates a Core wired to factory, with its root scope and env
// already initialized and the five primitive type singletons ready.
func New(factory Factory) *Core {
	c := &Core{Factory: factory}
	c.Env = *NewEnv(nil)
	c.Scope = *NewScope(nil, c)
	c.boolType = &PrimitiveType{kind: BoolKind}
	c.intType = &PrimitiveType{kind: IntKind}
	c.realType = &PrimitiveType{kind: RealKind}
	c.timeType = &PrimitiveType{kind: TimeKind}
	c.stringType = &PrimitiveType{kind: StringKind}
	return c
}

func (c *Core) BoolType() *PrimitiveType   { return c.boolType }
func (c *Core) IntType() *PrimitiveType    { return c.intType }
func (c *Core) RealType() *PrimitiveType   { return c.realType }
func (c *Core) TimeType() *PrimitiveType   { return c.timeType }
func (c *Core) StringType() *PrimitiveType { return c.stringType }

// NewInstanceOf allocates a default value of t: the evaluated field
// initializer is tried first by callers (see defaultFieldValue); this
// is the "otherwise" branch of §4.6 step 5 and §4.10's local-field
// fallback, dispatching to whichever variant's own NewInstance applies.
func (c *Core) NewInstanceOf(t Type) (Item, error) {
	switch tt := t.(type) {
	case *PrimitiveType:
		var item Item
		var err error
		switch tt.kind {
		case BoolKind:
			item, err = c.Factory.NewBool()
		case IntKind:
			item, err = c.Factory.NewInt()
		case RealKind:
			item, err = c.Factory.NewReal()
		case TimeKind:
			item, err = c.Factory.NewTime()
		case StringKind:
			item, err = c.Factory.NewString()
		default:
			return nil, &NotImplementedError{What: "unknown primitive kind"}
		}
		if err != nil {
			return nil, err
		}
		return stampType(item, tt), nil
	case *TypedefType:
		return tt.NewInstance()
	case *EnumType:
		return tt.NewInstance()
	case *ComponentType:
		return tt.NewInstance(), nil
	case *PredicateType:
		return nil, &NotImplementedError{What: "predicate-typed field has no default instance"}
	}
	return nil, &NotImplementedError{What: "new_instance of unknown type"}
}

// IsBool, IsArith, IsInt, IsReal, IsTime, IsString, and IsCore are
// small pure predicates over an item's or type's identity against the
// core's canonical primitive instances, kept as methods on Core since
// RiDDLe has no free-function namespace.
func (c *Core) IsBool(item Item) bool  { _, ok := item.(*BoolItem); return ok }
func (c *Core) IsArith(item Item) bool { _, ok := item.(*ArithItem); return ok }
func (c *Core) IsString(item Item) bool {
	_, ok := item.(*StringItem)
	return ok
}
func (c *Core) IsInt(item Item) bool  { return c.arithKindIs(item, IntKind) }
func (c *Core) IsReal(item Item) bool { return c.arithKindIs(item, RealKind) }
func (c *Core) IsTime(item Item) bool { return c.arithKindIs(item, TimeKind) }
func (c *Core) IsCore(t Type) bool    { _, ok := t.(*PrimitiveType); return ok }

func (c *Core) arithKindIs(item Item, kind PrimitiveKind) bool {
	a, ok := item.(*ArithItem)
	if !ok {
		return false
	}
	pt, ok := a.typ.(*PrimitiveType)
	return ok && pt.kind == kind
}

// WidestType picks the join of a set of arithmetic items' types for
// n-ary evaluation: Real dominates Time dominates Int.
func (c *Core) WidestType(items ...Item) Type {
	widest := c.intType
	for _, it := range items {
		a, ok := it.(*ArithItem)
		if !ok {
			continue
		}
		pt, ok := a.typ.(*PrimitiveType)
		if !ok {
			continue
		}
		switch pt.kind {
		case RealKind:
			return c.realType
		case TimeKind:
			if widest.kind != RealKind {
				widest = c.timeType
			}
		}
	}
	return widest
}

// defaultFieldValue evaluates field's AST initializer if present,
// otherwise falls back to NewInstanceOf(field.Type).
func (c *Core) defaultFieldValue(field *Field, scope *Scope, env *Env) (Item, error) {
	if field.Init != nil {
		return evalExpression(field.Init, scope, env)
	}
	return c.NewInstanceOf(field.Type)
}
