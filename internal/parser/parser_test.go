package parser

import (
	"strings"
	"testing"

	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
)

func parse(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	p := New(lexer.New(src))
	cu, err := p.Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return cu
}

func TestEmptyFileYieldsEmptyCompilationUnit(t *testing.T) {
	cu := parse(t, "")
	if len(cu.Types)+len(cu.Predicates)+len(cu.Methods)+len(cu.Body) != 0 {
		t.Fatalf("expected empty compilation unit, got %+v", cu)
	}
}

func TestLocalFieldThenComparison(t *testing.T) {
	cu := parse(t, "real a;\n1 <= a;")
	if len(cu.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(cu.Body))
	}
	local, ok := cu.Body[0].(*ast.LocalFieldStatement)
	if !ok {
		t.Fatalf("stmt 0 is %T, want *ast.LocalFieldStatement", cu.Body[0])
	}
	if local.Type.String() != "real" {
		t.Errorf("local field type = %q, want real", local.Type.String())
	}
	if len(local.Decls) != 1 || local.Decls[0].Name != "a" || local.Decls[0].Init != nil {
		t.Errorf("unexpected decls: %+v", local.Decls)
	}

	expr, ok := cu.Body[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("stmt 1 is %T, want *ast.ExpressionStatement", cu.Body[1])
	}
	cmp, ok := expr.Expr.(*ast.CompareExpression)
	if !ok {
		t.Fatalf("expr is %T, want *ast.CompareExpression", expr.Expr)
	}
	if cmp.Op != lexer.LESS_EQ {
		t.Errorf("op = %s, want <=", cmp.Op)
	}
	if lit, ok := cmp.Left.(*ast.IntLiteral); !ok || lit.Value != 1 {
		t.Errorf("left = %+v, want IntLiteral(1)", cmp.Left)
	}
	if id, ok := cmp.Right.(*ast.Identifier); !ok || id.String() != "a" {
		t.Errorf("right = %+v, want Identifier(a)", cmp.Right)
	}
}

func TestEnumDeclarationAndLocalField(t *testing.T) {
	cu := parse(t, `enum Speed {"High", "Medium", "Low"}; Speed x3;`)
	if len(cu.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(cu.Types))
	}
	enum, ok := cu.Types[0].(*ast.EnumDeclaration)
	if !ok {
		t.Fatalf("type 0 is %T, want *ast.EnumDeclaration", cu.Types[0])
	}
	wantValues := []string{"High", "Medium", "Low"}
	if len(enum.Values) != len(wantValues) {
		t.Fatalf("values = %v, want %v", enum.Values, wantValues)
	}
	for i, v := range wantValues {
		if enum.Values[i] != v {
			t.Errorf("values[%d] = %q, want %q", i, enum.Values[i], v)
		}
	}
	if len(enum.UnionRefs) != 0 {
		t.Errorf("expected no union refs, got %v", enum.UnionRefs)
	}

	if len(cu.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(cu.Body))
	}
	local, ok := cu.Body[0].(*ast.LocalFieldStatement)
	if !ok {
		t.Fatalf("body 0 is %T, want *ast.LocalFieldStatement", cu.Body[0])
	}
	if local.Type.String() != "Speed" || len(local.Decls) != 1 || local.Decls[0].Name != "x3" {
		t.Errorf("unexpected local field: %+v", local)
	}
}

func TestFormulaStatement(t *testing.T) {
	cu := parse(t, "goal g0 = new At(l:5+3);")
	if len(cu.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(cu.Body))
	}
	f, ok := cu.Body[0].(*ast.FormulaStatement)
	if !ok {
		t.Fatalf("stmt is %T, want *ast.FormulaStatement", cu.Body[0])
	}
	if f.IsFact {
		t.Error("expected IsFact = false for goal")
	}
	if f.Name != "g0" {
		t.Errorf("name = %q, want g0", f.Name)
	}
	if f.Predicate.String() != "At" {
		t.Errorf("predicate = %q, want At", f.Predicate.String())
	}
	if len(f.ScopePath) != 0 {
		t.Errorf("scope path = %v, want empty", f.ScopePath)
	}
	if len(f.Args) != 1 || f.Args[0].Name != "l" {
		t.Fatalf("args = %+v", f.Args)
	}
	nary, ok := f.Args[0].Value.(*ast.NaryExpression)
	if !ok || nary.Op != lexer.PLUS || len(nary.Operands) != 2 {
		t.Fatalf("arg value = %+v, want a 2-operand + NaryExpression", f.Args[0].Value)
	}
}

func TestFormulaStatementWithReceiverScope(t *testing.T) {
	cu := parse(t, "fact f0 = new robot1.At(l:1);")
	if len(cu.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(cu.Body))
	}
	f, ok := cu.Body[0].(*ast.FormulaStatement)
	if !ok {
		t.Fatalf("stmt is %T, want *ast.FormulaStatement", cu.Body[0])
	}
	if f.Name != "f0" {
		t.Errorf("name = %q, want f0 (bound name must not absorb the receiver path)", f.Name)
	}
	if got := strings.Join(f.ScopePath, "."); got != "robot1" {
		t.Errorf("scope path = %q, want robot1", got)
	}
	if f.Predicate.String() != "robot1.At" {
		t.Errorf("predicate = %q, want robot1.At", f.Predicate.String())
	}
}

func TestClassWithNoConstructorsSynthesizesOne(t *testing.T) {
	cu := parse(t, "class Foo { int x; }")
	if len(cu.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(cu.Types))
	}
	class, ok := cu.Types[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("type 0 is %T, want *ast.ClassDeclaration", cu.Types[0])
	}
	if len(class.Fields) != 1 || class.Fields[0].Name != "x" || class.Fields[0].Type.String() != "int" {
		t.Fatalf("unexpected fields: %+v", class.Fields)
	}
	if len(class.Constructors) != 1 || !class.Constructors[0].Synthetic {
		t.Fatalf("expected exactly one synthesized constructor, got %+v", class.Constructors)
	}
	if len(class.Constructors[0].Params) != 0 {
		t.Errorf("synthesized constructor should be zero-arg, got %+v", class.Constructors[0].Params)
	}
}

func TestClassWithExplicitConstructorIsNotSynthesized(t *testing.T) {
	cu := parse(t, "class Foo { int x; new(int v) : x(v) {} }")
	class := cu.Types[0].(*ast.ClassDeclaration)
	if len(class.Constructors) != 1 || class.Constructors[0].Synthetic {
		t.Fatalf("expected one non-synthetic constructor, got %+v", class.Constructors)
	}
	if len(class.Constructors[0].Inits) != 1 || class.Constructors[0].Inits[0].Name != "x" {
		t.Errorf("unexpected inits: %+v", class.Constructors[0].Inits)
	}
}

func TestMethodDeclarationWithReturnType(t *testing.T) {
	cu := parse(t, "int double(int v) { return v * 2; }")
	if len(cu.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d (body=%v)", len(cu.Methods), cu.Body)
	}
	m := cu.Methods[0]
	if m.ReturnType == nil || m.ReturnType.String() != "int" {
		t.Errorf("return type = %v, want int", m.ReturnType)
	}
	if m.Name != "double" || len(m.Params) != 1 || m.Params[0].Name != "v" {
		t.Errorf("unexpected method signature: %+v", m)
	}
	if len(m.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(m.Body))
	}
	if _, ok := m.Body[0].(*ast.ReturnStatement); !ok {
		t.Errorf("body[0] = %T, want *ast.ReturnStatement", m.Body[0])
	}
}

func TestAssignmentStatement(t *testing.T) {
	cu := parse(t, "a.b.c = 1;")
	assign, ok := cu.Body[0].(*ast.AssignmentStatement)
	if !ok {
		t.Fatalf("stmt is %T, want *ast.AssignmentStatement", cu.Body[0])
	}
	wantPath := []string{"a", "b", "c"}
	if len(assign.Path) != len(wantPath) {
		t.Fatalf("path = %v", assign.Path)
	}
	for i, s := range wantPath {
		if assign.Path[i] != s {
			t.Errorf("path[%d] = %q, want %q", i, assign.Path[i], s)
		}
	}
}

func TestBareIdentifierAssignmentIsRejected(t *testing.T) {
	p := New(lexer.New("a = 1;"))
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected parse error for bare-identifier assignment target")
	}
}

func TestDisjunctionStatementWithCosts(t *testing.T) {
	cu := parse(t, "{ fact f0 = new At(l:1); } [1] or { fact f0 = new At(l:2); } [2]")
	if len(cu.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(cu.Body))
	}
	disj, ok := cu.Body[0].(*ast.DisjunctionStatement)
	if !ok {
		t.Fatalf("stmt is %T, want *ast.DisjunctionStatement", cu.Body[0])
	}
	if len(disj.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(disj.Blocks))
	}
	for i, want := range []int64{1, 2} {
		cost, ok := disj.Blocks[i].Cost.(*ast.IntLiteral)
		if !ok || cost.Value != want {
			t.Errorf("block %d cost = %+v, want %d", i, disj.Blocks[i].Cost, want)
		}
	}
}

func TestForStatement(t *testing.T) {
	cu := parse(t, "for (Speed s) { s == s; }")
	forStmt, ok := cu.Body[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("stmt is %T, want *ast.ForStatement", cu.Body[0])
	}
	if forStmt.Type.String() != "Speed" || forStmt.Var != "s" {
		t.Errorf("unexpected for header: %+v", forStmt)
	}
	if len(forStmt.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(forStmt.Body))
	}
}

func TestCastExpression(t *testing.T) {
	cu := parse(t, "(Foo) a;")
	stmt, ok := cu.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("stmt is %T, want *ast.ExpressionStatement", cu.Body[0])
	}
	cast, ok := stmt.Expr.(*ast.CastExpression)
	if !ok {
		t.Fatalf("expr is %T, want *ast.CastExpression", stmt.Expr)
	}
	if cast.Type.String() != "Foo" {
		t.Errorf("cast type = %q, want Foo", cast.Type.String())
	}
}

func TestParenthesizedExpressionIsNotMistakenForCast(t *testing.T) {
	cu := parse(t, "(1 + 2) * 3;")
	stmt := cu.Body[0].(*ast.ExpressionStatement)
	nary, ok := stmt.Expr.(*ast.NaryExpression)
	if !ok || nary.Op != lexer.ASTERISK {
		t.Fatalf("expr = %+v, want a top-level * NaryExpression", stmt.Expr)
	}
}

func TestMixedPrecedenceLevel1ChainComposesLeftToRight(t *testing.T) {
	// `a | b & c` should parse as `(a | b) & c`: the `|` run closes out
	// as soon as the operator changes to `&`, and that node becomes the
	// left operand of the `&` run.
	cu := parse(t, "a | b & c;")
	stmt := cu.Body[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expr.(*ast.NaryExpression)
	if !ok || top.Op != lexer.AMP {
		t.Fatalf("top = %+v, want top-level & NaryExpression", stmt.Expr)
	}
	if len(top.Operands) != 2 {
		t.Fatalf("expected 2 operands, got %d", len(top.Operands))
	}
	left, ok := top.Operands[0].(*ast.NaryExpression)
	if !ok || left.Op != lexer.PIPE {
		t.Fatalf("left operand = %+v, want | NaryExpression", top.Operands[0])
	}
}

func TestPredicateDeclarationWithParents(t *testing.T) {
	cu := parse(t, "predicate At(int l) : Base { l >= 0; }")
	if len(cu.Predicates) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(cu.Predicates))
	}
	pred := cu.Predicates[0]
	if pred.Name != "At" || len(pred.Params) != 1 || pred.Params[0].Name != "l" {
		t.Errorf("unexpected predicate signature: %+v", pred)
	}
	if len(pred.Parents) != 1 || pred.Parents[0].String() != "Base" {
		t.Errorf("unexpected parents: %+v", pred.Parents)
	}
}

func TestTypedefDeclaration(t *testing.T) {
	cu := parse(t, "typedef real Half = .5;")
	typedef, ok := cu.Types[0].(*ast.TypedefDeclaration)
	if !ok {
		t.Fatalf("type 0 is %T, want *ast.TypedefDeclaration", cu.Types[0])
	}
	if typedef.Name != "Half" || typedef.Base.String() != "real" {
		t.Errorf("unexpected typedef: %+v", typedef)
	}
	if _, ok := typedef.Expr.(*ast.RealLiteral); !ok {
		t.Errorf("typedef expr = %T, want *ast.RealLiteral", typedef.Expr)
	}
}
