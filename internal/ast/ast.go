// Package ast defines the abstract syntax tree produced by the RiDDLe
// parser: expressions, statements, declarations, and the top-level
// CompilationUnit that bundles them.
package ast

import (
	"strings"

	"github.com/ratioSolver/riddle/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a type, predicate, or method declaration at compilation
// unit (or class) scope.
type Declaration interface {
	Node
	declarationNode()
}

// QualifiedType names a type by its dotted path, e.g. `Foo.Bar` or a
// primitive keyword such as `int`.
type QualifiedType struct {
	Path     []string
	position lexer.Position
}

func NewQualifiedType(pos lexer.Position, path ...string) QualifiedType {
	return QualifiedType{Path: path, position: pos}
}

func (q QualifiedType) Pos() lexer.Position { return q.position }
func (q QualifiedType) String() string      { return strings.Join(q.Path, ".") }
func (q QualifiedType) IsPrimitive() bool {
	if len(q.Path) != 1 {
		return false
	}
	switch q.Path[0] {
	case "bool", "int", "real", "time", "string":
		return true
	}
	return false
}

// CompilationUnit is the root AST node: the four sequences of spec §3.
type CompilationUnit struct {
	Types      []Declaration
	Predicates []*PredicateDeclaration
	Methods    []*MethodDeclaration
	Body       []Statement
}

func (c *CompilationUnit) Pos() lexer.Position {
	if len(c.Body) > 0 {
		return c.Body[0].Pos()
	}
	if len(c.Types) > 0 {
		return c.Types[0].Pos()
	}
	return lexer.Position{Line: 1}
}

func (c *CompilationUnit) String() string {
	var sb strings.Builder
	for _, t := range c.Types {
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
	for _, p := range c.Predicates {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}
	for _, m := range c.Methods {
		sb.WriteString(m.String())
		sb.WriteString("\n")
	}
	for _, s := range c.Body {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Param is a single declared parameter of a method, constructor, or
// predicate.
type Param struct {
	Type QualifiedType
	Name string
}
