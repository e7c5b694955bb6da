package ast

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ratioSolver/riddle/internal/lexer"
)

func (*BoolLiteral) expressionNode()        {}
func (*IntLiteral) expressionNode()         {}
func (*RealLiteral) expressionNode()        {}
func (*StringLiteral) expressionNode()      {}
func (*Identifier) expressionNode()         {}
func (*CallExpression) expressionNode()     {}
func (*ConstructorExpr) expressionNode()    {}
func (*UnaryExpression) expressionNode()    {}
func (*NaryExpression) expressionNode()     {}
func (*CompareExpression) expressionNode()  {}
func (*ImplicationExpr) expressionNode()    {}
func (*CastExpression) expressionNode()     {}

// BoolLiteral is a `true`/`false` literal.
type BoolLiteral struct {
	Value    bool
	position lexer.Position
}

func NewBoolLiteral(pos lexer.Position, v bool) *BoolLiteral { return &BoolLiteral{Value: v, position: pos} }
func (n *BoolLiteral) Pos() lexer.Position                   { return n.position }
func (n *BoolLiteral) String() string                        { return fmt.Sprintf("%t", n.Value) }

// IntLiteral is an integer literal.
type IntLiteral struct {
	Value    int64
	position lexer.Position
}

func NewIntLiteral(pos lexer.Position, v int64) *IntLiteral { return &IntLiteral{Value: v, position: pos} }
func (n *IntLiteral) Pos() lexer.Position                   { return n.position }
func (n *IntLiteral) String() string                        { return fmt.Sprintf("%d", n.Value) }

// RealLiteral is a rational-valued real literal, e.g. `.5`.
type RealLiteral struct {
	Value    *big.Rat
	position lexer.Position
}

func NewRealLiteral(pos lexer.Position, v *big.Rat) *RealLiteral {
	return &RealLiteral{Value: v, position: pos}
}
func (n *RealLiteral) Pos() lexer.Position { return n.position }
func (n *RealLiteral) String() string      { return n.Value.RatString() }

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Value    string
	position lexer.Position
}

func NewStringLiteral(pos lexer.Position, v string) *StringLiteral {
	return &StringLiteral{Value: v, position: pos}
}
func (n *StringLiteral) Pos() lexer.Position { return n.position }
func (n *StringLiteral) String() string      { return fmt.Sprintf("%q", n.Value) }

// Identifier is a qualified-name expression (`a.b.c`), resolved by
// walking the env chain segment by segment.
type Identifier struct {
	Path     []string
	position lexer.Position
}

func NewIdentifier(pos lexer.Position, path ...string) *Identifier {
	return &Identifier{Path: path, position: pos}
}
func (n *Identifier) Pos() lexer.Position { return n.position }
func (n *Identifier) String() string      { return strings.Join(n.Path, ".") }

// CallExpression is a qualified function or method call: `obj.m(args)`
// or a bare `m(args)`.
type CallExpression struct {
	Path     []string
	Args     []Expression
	position lexer.Position
}

func NewCallExpression(pos lexer.Position, path []string, args []Expression) *CallExpression {
	return &CallExpression{Path: path, Args: args, position: pos}
}
func (n *CallExpression) Pos() lexer.Position { return n.position }
func (n *CallExpression) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", strings.Join(n.Path, "."), strings.Join(args, ", "))
}

// ConstructorExpr is `new T(args)`.
type ConstructorExpr struct {
	Type     QualifiedType
	Args     []Expression
	position lexer.Position
}

func NewConstructorExpr(pos lexer.Position, t QualifiedType, args []Expression) *ConstructorExpr {
	return &ConstructorExpr{Type: t, Args: args, position: pos}
}
func (n *ConstructorExpr) Pos() lexer.Position { return n.position }
func (n *ConstructorExpr) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("new %s(%s)", n.Type, strings.Join(args, ", "))
}

// UnaryExpression is a prefix `+`, `-`, or `!`.
type UnaryExpression struct {
	Operand  Expression
	Op       lexer.TokenType
	position lexer.Position
}

func NewUnaryExpression(pos lexer.Position, op lexer.TokenType, operand Expression) *UnaryExpression {
	return &UnaryExpression{Op: op, Operand: operand, position: pos}
}
func (n *UnaryExpression) Pos() lexer.Position { return n.position }
func (n *UnaryExpression) String() string      { return fmt.Sprintf("(%s%s)", n.Op, n.Operand) }

// NaryExpression is a flattened chain of one associative operator:
// `a | b | c`, `a & b`, `a ^ b`, or an arithmetic `+ - * /` chain.
type NaryExpression struct {
	Op       lexer.TokenType
	Operands []Expression
	position lexer.Position
}

func NewNaryExpression(pos lexer.Position, op lexer.TokenType, operands []Expression) *NaryExpression {
	return &NaryExpression{Op: op, Operands: operands, position: pos}
}
func (n *NaryExpression) Pos() lexer.Position { return n.position }
func (n *NaryExpression) String() string {
	parts := make([]string, len(n.Operands))
	for i, o := range n.Operands {
		parts[i] = o.String()
	}
	return "(" + strings.Join(parts, " "+n.Op.String()+" ") + ")"
}

// CompareExpression is a binary equality or ordering comparison:
// `== != < <= >= >`.
type CompareExpression struct {
	Left, Right Expression
	Op          lexer.TokenType
	position    lexer.Position
}

func NewCompareExpression(pos lexer.Position, op lexer.TokenType, left, right Expression) *CompareExpression {
	return &CompareExpression{Op: op, Left: left, Right: right, position: pos}
}
func (n *CompareExpression) Pos() lexer.Position { return n.position }
func (n *CompareExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

// ImplicationExpr is `a -> b`.
type ImplicationExpr struct {
	Left, Right Expression
	position    lexer.Position
}

func NewImplicationExpr(pos lexer.Position, left, right Expression) *ImplicationExpr {
	return &ImplicationExpr{Left: left, Right: right, position: pos}
}
func (n *ImplicationExpr) Pos() lexer.Position { return n.position }
func (n *ImplicationExpr) String() string      { return fmt.Sprintf("(%s -> %s)", n.Left, n.Right) }

// CastExpression is `(T) expr`: a nominal type-assignability check, never
// a numeric coercion.
type CastExpression struct {
	Type     QualifiedType
	Expr     Expression
	position lexer.Position
}

func NewCastExpression(pos lexer.Position, t QualifiedType, expr Expression) *CastExpression {
	return &CastExpression{Type: t, Expr: expr, position: pos}
}
func (n *CastExpression) Pos() lexer.Position { return n.position }
func (n *CastExpression) String() string      { return fmt.Sprintf("(%s)%s", n.Type, n.Expr) }
