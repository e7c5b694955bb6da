package ast

import (
	"fmt"
	"strings"

	"github.com/ratioSolver/riddle/internal/lexer"
)

func (*LocalFieldStatement) statementNode()   {}
func (*AssignmentStatement) statementNode()   {}
func (*ExpressionStatement) statementNode()   {}
func (*BlockStatement) statementNode()        {}
func (*DisjunctionStatement) statementNode()  {}
func (*ForStatement) statementNode()          {}
func (*ReturnStatement) statementNode()       {}
func (*FormulaStatement) statementNode()      {}

// LocalDecl is one `name [= init]` entry of a local-field statement.
type LocalDecl struct {
	Name string
	Init Expression // nil if absent
}

// LocalFieldStatement declares one or more fields of the same type in
// the current scope: `Type id [= expr] {, id [= expr]}* ;`.
type LocalFieldStatement struct {
	Type     QualifiedType
	Decls    []LocalDecl
	position lexer.Position
}

func NewLocalFieldStatement(pos lexer.Position, t QualifiedType, decls []LocalDecl) *LocalFieldStatement {
	return &LocalFieldStatement{Type: t, Decls: decls, position: pos}
}
func (n *LocalFieldStatement) Pos() lexer.Position { return n.position }
func (n *LocalFieldStatement) String() string {
	parts := make([]string, len(n.Decls))
	for i, d := range n.Decls {
		if d.Init != nil {
			parts[i] = fmt.Sprintf("%s = %s", d.Name, d.Init)
		} else {
			parts[i] = d.Name
		}
	}
	return fmt.Sprintf("%s %s;", n.Type, strings.Join(parts, ", "))
}

// AssignmentStatement sets a field reached by a qualified path:
// `a.b.c = expr;`.
type AssignmentStatement struct {
	Path     []string
	Value    Expression
	position lexer.Position
}

func NewAssignmentStatement(pos lexer.Position, path []string, value Expression) *AssignmentStatement {
	return &AssignmentStatement{Path: path, Value: value, position: pos}
}
func (n *AssignmentStatement) Pos() lexer.Position { return n.position }
func (n *AssignmentStatement) String() string {
	return fmt.Sprintf("%s = %s;", strings.Join(n.Path, "."), n.Value)
}

// ExpressionStatement evaluates an expression for its boolean value and
// asserts it as a fact.
type ExpressionStatement struct {
	Expr     Expression
	position lexer.Position
}

func NewExpressionStatement(pos lexer.Position, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr, position: pos}
}
func (n *ExpressionStatement) Pos() lexer.Position { return n.position }
func (n *ExpressionStatement) String() string      { return n.Expr.String() + ";" }

// BlockStatement is `{ stmt* }`, optionally tagged with a cost
// expression (`[ expr ]`) when used as a disjunction branch.
type BlockStatement struct {
	Stmts    []Statement
	Cost     Expression // nil if untagged
	position lexer.Position
}

func NewBlockStatement(pos lexer.Position, stmts []Statement, cost Expression) *BlockStatement {
	return &BlockStatement{Stmts: stmts, Cost: cost, position: pos}
}
func (n *BlockStatement) Pos() lexer.Position { return n.position }
func (n *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range n.Stmts {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	if n.Cost != nil {
		sb.WriteString(fmt.Sprintf(" [%s]", n.Cost))
	}
	return sb.String()
}

// DisjunctionStatement is one or more blocks joined by `or`: a one-of
// choice posted to the solver.
type DisjunctionStatement struct {
	Blocks   []*BlockStatement
	position lexer.Position
}

func NewDisjunctionStatement(pos lexer.Position, blocks []*BlockStatement) *DisjunctionStatement {
	return &DisjunctionStatement{Blocks: blocks, position: pos}
}
func (n *DisjunctionStatement) Pos() lexer.Position { return n.position }
func (n *DisjunctionStatement) String() string {
	parts := make([]string, len(n.Blocks))
	for i, b := range n.Blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, " or ")
}

// ForStatement is universal iteration over an enum or component type's
// live instances: `for (T id) { stmt* }`.
type ForStatement struct {
	Type     QualifiedType
	Var      string
	Body     []Statement
	position lexer.Position
}

func NewForStatement(pos lexer.Position, t QualifiedType, v string, body []Statement) *ForStatement {
	return &ForStatement{Type: t, Var: v, Body: body, position: pos}
}
func (n *ForStatement) Pos() lexer.Position { return n.position }
func (n *ForStatement) String() string {
	return fmt.Sprintf("for (%s %s) { ... }", n.Type, n.Var)
}

// ReturnStatement is `return expr;`, legal only inside a non-void
// method.
type ReturnStatement struct {
	Value    Expression
	position lexer.Position
}

func NewReturnStatement(pos lexer.Position, value Expression) *ReturnStatement {
	return &ReturnStatement{Value: value, position: pos}
}
func (n *ReturnStatement) Pos() lexer.Position { return n.position }
func (n *ReturnStatement) String() string      { return fmt.Sprintf("return %s;", n.Value) }

// FormulaArg is one `name: expr` argument of a formula statement.
type FormulaArg struct {
	Name  string
	Value Expression
}

// FormulaStatement creates a fact or goal atom:
// `fact|goal name = new Q(arg: expr, ...);`, where Q may itself be a
// dotted path (`a.b.Pred`) naming the receiver to resolve the
// predicate on — ScopePath holds everything but Q's last segment,
// which is the predicate name.
type FormulaStatement struct {
	Predicate QualifiedType
	Name      string
	ScopePath []string
	Args      []FormulaArg
	IsFact    bool
	position  lexer.Position
}

func NewFormulaStatement(pos lexer.Position, isFact bool, scopePath []string, name string, pred QualifiedType, args []FormulaArg) *FormulaStatement {
	return &FormulaStatement{IsFact: isFact, ScopePath: scopePath, Name: name, Predicate: pred, Args: args, position: pos}
}
func (n *FormulaStatement) Pos() lexer.Position { return n.position }
func (n *FormulaStatement) String() string {
	kind := "goal"
	if n.IsFact {
		kind = "fact"
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = fmt.Sprintf("%s: %s", a.Name, a.Value)
	}
	return fmt.Sprintf("%s %s = new %s(%s);", kind, n.Name, n.Predicate, strings.Join(args, ", "))
}
