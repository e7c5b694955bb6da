package ast

import (
	"fmt"
	"strings"

	"github.com/ratioSolver/riddle/internal/lexer"
)

func (*TypedefDeclaration) declarationNode()   {}
func (*EnumDeclaration) declarationNode()      {}
func (*ClassDeclaration) declarationNode()     {}
func (*MethodDeclaration) declarationNode()    {}
func (*PredicateDeclaration) declarationNode() {}

// TypedefDeclaration aliases a primitive base type to the value of an
// expression, re-evaluated fresh on every NewInstance.
type TypedefDeclaration struct {
	Name     string
	Base     QualifiedType
	Expr     Expression
	position lexer.Position
}

func NewTypedefDeclaration(pos lexer.Position, name string, base QualifiedType, expr Expression) *TypedefDeclaration {
	return &TypedefDeclaration{Name: name, Base: base, Expr: expr, position: pos}
}
func (n *TypedefDeclaration) Pos() lexer.Position { return n.position }
func (n *TypedefDeclaration) String() string {
	return fmt.Sprintf("typedef %s %s = %s;", n.Base, n.Name, n.Expr)
}

// EnumDeclaration is a sum of string-named values plus transitive union
// references to other enums.
type EnumDeclaration struct {
	Name      string
	Values    []string
	UnionRefs []QualifiedType
	position  lexer.Position
}

func NewEnumDeclaration(pos lexer.Position, name string, values []string, unionRefs []QualifiedType) *EnumDeclaration {
	return &EnumDeclaration{Name: name, Values: values, UnionRefs: unionRefs, position: pos}
}
func (n *EnumDeclaration) Pos() lexer.Position { return n.position }
func (n *EnumDeclaration) String() string {
	quoted := make([]string, len(n.Values))
	for i, v := range n.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("enum %s {%s};", n.Name, strings.Join(quoted, ", "))
}

// FieldDecl is one declared field of a class body.
type FieldDecl struct {
	Type      QualifiedType
	Name      string
	Init      Expression // nil if absent
	Synthetic bool
}

// Init is one element of a constructor's init list: either a field
// initializer (Name names a field of the enclosing class) or a
// base-constructor call (Name names a parent class).
type Init struct {
	Name string
	Args []Expression
}

// ConstructorDeclaration declares one overload of a class's
// constructor.
type ConstructorDeclaration struct {
	Params    []Param
	Inits     []Init
	Body      []Statement
	Synthetic bool
	position  lexer.Position
}

func NewConstructorDeclaration(pos lexer.Position, params []Param, inits []Init, body []Statement) *ConstructorDeclaration {
	return &ConstructorDeclaration{Params: params, Inits: inits, Body: body, position: pos}
}

func (n *ConstructorDeclaration) Pos() lexer.Position { return n.position }
func (n *ConstructorDeclaration) String() string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	return fmt.Sprintf("new(%s) { ... }", strings.Join(params, ", "))
}

// MethodDeclaration declares a method; ReturnType is nil for `void`.
type MethodDeclaration struct {
	ReturnType *QualifiedType
	Name       string
	Params     []Param
	Body       []Statement
	position   lexer.Position
}

func NewMethodDeclaration(pos lexer.Position, ret *QualifiedType, name string, params []Param, body []Statement) *MethodDeclaration {
	return &MethodDeclaration{ReturnType: ret, Name: name, Params: params, Body: body, position: pos}
}
func (n *MethodDeclaration) Pos() lexer.Position { return n.position }
func (n *MethodDeclaration) String() string {
	ret := "void"
	if n.ReturnType != nil {
		ret = n.ReturnType.String()
	}
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	return fmt.Sprintf("%s %s(%s) { ... }", ret, n.Name, strings.Join(params, ", "))
}

// ClassDeclaration declares a component type: its base list, fields,
// constructors, methods, nested types, and predicates.
type ClassDeclaration struct {
	Name         string
	Bases        []QualifiedType
	Fields       []FieldDecl
	Constructors []*ConstructorDeclaration
	Methods      []*MethodDeclaration
	Predicates   []*PredicateDeclaration
	Types        []Declaration
	position     lexer.Position
}

func NewClassDeclaration(pos lexer.Position, name string, bases []QualifiedType) *ClassDeclaration {
	return &ClassDeclaration{Name: name, Bases: bases, position: pos}
}
func (n *ClassDeclaration) Pos() lexer.Position { return n.position }
func (n *ClassDeclaration) String() string {
	bases := make([]string, len(n.Bases))
	for i, b := range n.Bases {
		bases[i] = b.String()
	}
	suffix := ""
	if len(bases) > 0 {
		suffix = " : " + strings.Join(bases, ", ")
	}
	return fmt.Sprintf("class %s%s { ... }", n.Name, suffix)
}

// PredicateDeclaration declares a parameterized statement body whose
// calls materialize atoms.
type PredicateDeclaration struct {
	Name     string
	Params   []Param
	Parents  []QualifiedType
	Body     []Statement
	position lexer.Position
}

func NewPredicateDeclaration(pos lexer.Position, name string, params []Param, parents []QualifiedType, body []Statement) *PredicateDeclaration {
	return &PredicateDeclaration{Name: name, Params: params, Parents: parents, Body: body, position: pos}
}
func (n *PredicateDeclaration) Pos() lexer.Position { return n.position }
func (n *PredicateDeclaration) String() string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	parents := make([]string, len(n.Parents))
	for i, p := range n.Parents {
		parents[i] = p.String()
	}
	suffix := ""
	if len(parents) > 0 {
		suffix = " : " + strings.Join(parents, ", ")
	}
	return fmt.Sprintf("predicate %s(%s)%s { ... }", n.Name, strings.Join(params, ", "), suffix)
}
