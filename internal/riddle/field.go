package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// Field is a declaration inside a scope: a type, a name, an optional
// AST initializer, and whether it was synthesized by the elaborator
// (e.g. the implicit `this` field) rather than written by the user.
type Field struct {
	Name      string
	Type      Type
	Init      ast.Expression
	Synthetic bool
}
