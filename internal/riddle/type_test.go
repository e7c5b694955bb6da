package riddle

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestPrimitiveCrossAssignability(t *testing.T) {
	core := New(NewReference())
	b, i, r, tm, s := core.BoolType(), core.IntType(), core.RealType(), core.TimeType(), core.StringType()

	assert.True(t, r.IsAssignableFrom(i))
	assert.True(t, r.IsAssignableFrom(tm))
	assert.True(t, tm.IsAssignableFrom(i))
	assert.True(t, tm.IsAssignableFrom(r))
	assert.False(t, i.IsAssignableFrom(r))
	assert.False(t, i.IsAssignableFrom(tm))
	assert.False(t, b.IsAssignableFrom(i))
	assert.False(t, s.IsAssignableFrom(i))
	assert.True(t, b.IsAssignableFrom(b))
}

func TestEnumUnionRefAssignability(t *testing.T) {
	base := &EnumType{name: "Base", values: []string{"a", "b"}}
	derived := &EnumType{name: "Derived", values: []string{"c"}, unionRefs: []*EnumType{base}}

	// derived reaches base, so base accepts a derived value.
	assert.True(t, base.IsAssignableFrom(derived))
	assert.False(t, derived.IsAssignableFrom(base))

	got := derived.Values()
	want := []string{"c", "a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentParentAssignability(t *testing.T) {
	core := New(NewReference())
	base := &ComponentType{Scope: NewScope(&core.Scope, core), name: "Base", core: core}
	derived := &ComponentType{Scope: NewScope(&core.Scope, core), name: "Derived", parents: []*ComponentType{base}, core: core}

	assert.True(t, base.IsAssignableFrom(derived))
	assert.False(t, derived.IsAssignableFrom(base))
	assert.True(t, base.IsAssignableFrom(base))
}

func TestScopeFieldLookupWalksParentThenInherits(t *testing.T) {
	core := New(NewReference())
	root := NewScope(&core.Scope, core)
	parentScope := NewScope(root, core)
	inheritedScope := NewScope(&core.Scope, core)

	require := func(ok bool, msg string) {
		t.Helper()
		if !ok {
			t.Fatal(msg)
		}
	}

	require(root.AddField(&Field{Name: "inRoot", Type: core.IntType()}) == nil, "add inRoot")
	require(inheritedScope.AddField(&Field{Name: "inInherited", Type: core.IntType()}) == nil, "add inInherited")
	parentScope.AddInherits(inheritedScope)

	if _, ok := parentScope.GetField("inRoot"); !ok {
		t.Error("expected lexical parent lookup to find inRoot")
	}
	if _, ok := parentScope.GetField("inInherited"); !ok {
		t.Error("expected inheritance fallback to find inInherited")
	}
	if _, ok := parentScope.GetField("missing"); ok {
		t.Error("expected missing field to not resolve")
	}
}

func TestScopeAddFieldRejectsDuplicateInSameScope(t *testing.T) {
	core := New(NewReference())
	s := NewScope(&core.Scope, core)
	assert.NoError(t, s.AddField(&Field{Name: "x", Type: core.IntType()}))
	err := s.AddField(&Field{Name: "x", Type: core.IntType()})
	var dup *DuplicateNameError
	assert.ErrorAs(t, err, &dup)
}

func TestEnvLookupWalksParentChainNotSiblings(t *testing.T) {
	root := NewEnv(nil)
	root.Set("a", &BoolItem{Lit: true})
	child := NewEnv(root)
	child.Set("b", &BoolItem{Lit: false})
	sibling := NewEnv(root)

	if _, ok := child.Get("a"); !ok {
		t.Error("expected child to see root binding")
	}
	if _, ok := sibling.Get("b"); ok {
		t.Error("sibling env should not see child's binding")
	}
}

func TestWidestTypePrefersRealOverTimeOverInt(t *testing.T) {
	core := New(NewReference())
	intItem := &ArithItem{Lin: int64(1)}
	stampType(intItem, core.IntType())
	timeItem := &ArithItem{Lin: int64(2)}
	stampType(timeItem, core.TimeType())
	realItem := &ArithItem{Lin: int64(3)}
	stampType(realItem, core.RealType())

	assert.Equal(t, core.IntType(), core.WidestType(intItem))
	assert.Equal(t, core.TimeType(), core.WidestType(intItem, timeItem))
	assert.Equal(t, core.RealType(), core.WidestType(intItem, timeItem, realItem))
}

func TestEnumItemDomainPruning(t *testing.T) {
	et := &EnumType{name: "Color", values: []string{"Red", "Green", "Blue"}}
	item := NewEnumItem(et, et.values, []any{1, 2, 3})

	sorted := func(vs []string) []string {
		out := append([]string(nil), vs...)
		sort.Strings(out)
		return out
	}

	if diff := cmp.Diff([]string{"Blue", "Green", "Red"}, sorted(item.Values()), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("initial domain mismatch (-want +got):\n%s", diff)
	}

	idx, ok := item.indexOf("Green")
	if !ok {
		t.Fatal("expected to find Green in domain")
	}
	item.live.Clear(uint(idx))

	if diff := cmp.Diff([]string{"Blue", "Red"}, sorted(item.Values()), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("pruned domain mismatch (-want +got):\n%s", diff)
	}
}
