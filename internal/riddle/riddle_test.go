package riddle

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDeclaresClassWithFieldsAndConstructor(t *testing.T) {
	core := New(NewReference())
	src := `
class Box {
	int Size = 1;
	new(int s) : Size(s) { }
}
Box b = new Box(2);
`
	require.NoError(t, core.Read(src))

	boxType, ok := core.Scope.GetType("Box")
	require.True(t, ok)
	ct, ok := boxType.(*ComponentType)
	require.True(t, ok)
	assert.Len(t, ct.Instances(), 1)

	bItem, ok := core.Env.Get("b")
	require.True(t, ok)
	box, ok := bItem.(*ComponentItem)
	require.True(t, ok)
	size, ok := box.Get("Size")
	require.True(t, ok)
	arith, ok := size.(*ArithItem)
	require.True(t, ok)
	assert.Equal(t, int64(2), mustRatInt64(t, arith))
}

func TestAssignmentMutatesField(t *testing.T) {
	core := New(NewReference())
	src := `
class Counter {
	int N = 0;
	new() { }
}
Counter c = new Counter();
c.N = 5;
`
	require.NoError(t, core.Read(src))

	item, ok := core.Env.Get("c")
	require.True(t, ok)
	c := item.(*ComponentItem)
	n, ok := c.Get("N")
	require.True(t, ok)
	assert.Equal(t, int64(5), mustRatInt64(t, n.(*ArithItem)))
}

func TestEnumDeclarationAndForLoop(t *testing.T) {
	core := New(NewReference())
	src := `
enum Color { "Red", "Green", "Blue" };
class Counter {
	int N = 0;
	new() { }
}
Counter seen = new Counter();
for (Color c) {
	seen.N = seen.N + 1;
}
`
	require.NoError(t, core.Read(src))

	item, ok := core.Env.Get("seen")
	require.True(t, ok)
	seen := item.(*ComponentItem)
	n, ok := seen.Get("N")
	require.True(t, ok)
	assert.Equal(t, int64(3), mustRatInt64(t, n.(*ArithItem)))
}

func TestFormulaStatementCreatesAtomAndBindsParams(t *testing.T) {
	core := New(NewReference())
	src := `
predicate Likes(int x) { }
fact f = new Likes(x: 3);
`
	require.NoError(t, core.Read(src))

	predType, ok := core.Scope.GetPredicate("Likes")
	require.True(t, ok)
	assert.Len(t, predType.Atoms(), 1)

	atomItem, ok := core.Env.Get("f")
	require.True(t, ok)
	atom, ok := atomItem.(*Atom)
	require.True(t, ok)
	assert.True(t, atom.IsFact)

	x, ok := atom.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(3), mustRatInt64(t, x.(*ArithItem)))
}

func TestFormulaStatementResolvesPredicateOnReceiver(t *testing.T) {
	core := New(NewReference())
	src := `
class Robot {
	predicate At(int loc) { }
	new() { }
}
Robot robot1 = new Robot();
fact f = new robot1.At(loc: 5);
`
	require.NoError(t, core.Read(src))

	robotType, ok := core.Scope.GetType("Robot")
	require.True(t, ok)
	ct, ok := robotType.(*ComponentType)
	require.True(t, ok)
	predType, ok := ct.Scope.GetPredicate("At")
	require.True(t, ok)
	assert.Len(t, predType.Atoms(), 1)

	atomItem, ok := core.Env.Get("f")
	require.True(t, ok)
	atom, ok := atomItem.(*Atom)
	require.True(t, ok)
	loc, ok := atom.Get("loc")
	require.True(t, ok)
	assert.Equal(t, int64(5), mustRatInt64(t, loc.(*ArithItem)))
}

func TestQualifiedMethodCallDispatchesOnReceiverTypeUsingThis(t *testing.T) {
	core := New(NewReference())
	src := `
class Counter {
	int N = 0;
	new(int n) : N(n) { }
	int Double() { return this.N * 2; }
}
Counter c = new Counter(3);
int r = c.Double();
`
	require.NoError(t, core.Read(src))

	item, ok := core.Env.Get("r")
	require.True(t, ok)
	assert.Equal(t, int64(6), mustRatInt64(t, item.(*ArithItem)))
}

func TestUnqualifiedCallFromMethodBodyInheritsThis(t *testing.T) {
	core := New(NewReference())
	src := `
class Counter {
	int N = 0;
	new(int n) : N(n) { }
	int Half() { return this.N / 2; }
	int HalfViaHelper() { return Half(); }
}
Counter c = new Counter(8);
int r = c.HalfViaHelper();
`
	require.NoError(t, core.Read(src))

	item, ok := core.Env.Get("r")
	require.True(t, ok)
	assert.Equal(t, int64(4), mustRatInt64(t, item.(*ArithItem)))
}

func TestDisjunctionStatementRecordsBranches(t *testing.T) {
	backend := NewReference()
	core := New(backend)
	src := `
class Counter {
	int N = 0;
	new() { }
}
Counter c = new Counter();
{ c.N = 1; } or { c.N = 2; }
`
	require.NoError(t, core.Read(src))
	assert.Equal(t, 1, backend.BranchCount())
}

func TestExpressionStatementAssertsFact(t *testing.T) {
	backend := NewReference()
	core := New(backend)
	require.NoError(t, core.Read("true;"))
	assert.Equal(t, 1, backend.FactCount())
}

func TestCheckDoesNotExecuteTopLevelStatements(t *testing.T) {
	backend := NewReference()
	core := New(backend)
	require.NoError(t, core.Check("fact f = new P(); predicate P() { }"))
	assert.Equal(t, 0, backend.AtomCount())

	predType, ok := core.Scope.GetPredicate("P")
	require.True(t, ok)
	assert.NotNil(t, predType)
}

func TestDuplicateTypeNameFails(t *testing.T) {
	core := New(NewReference())
	err := core.Read(`
class Foo { new() { } }
class Foo { new() { } }
`)
	require.Error(t, err)
	var dup *DuplicateNameError
	assert.ErrorAs(t, err, &dup)
}

func TestUnresolvedTypeNameFails(t *testing.T) {
	core := New(NewReference())
	err := core.Read(`Bogus b = new Bogus();`)
	require.Error(t, err)
}

func mustRatInt64(t *testing.T, item *ArithItem) int64 {
	t.Helper()
	r, ok := item.Lin.(*big.Rat)
	require.True(t, ok, "expected a constant rational literal, got %T", item.Lin)
	require.True(t, r.IsInt(), "expected an integral value, got %s", r.String())
	return r.Num().Int64()
}
