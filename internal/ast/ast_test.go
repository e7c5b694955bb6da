package ast_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/ratioSolver/riddle/internal/lexer"
	"github.com/ratioSolver/riddle/internal/parser"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestCompilationUnitStringRoundTrip(t *testing.T) {
	src := `
enum Color { "Red", "Green", "Blue" };

class Box {
	int Size = 1;
	new(int s) : Size(s) { }
}

predicate Likes(int x) { }

Box b = new Box(2);
fact f = new Likes(x: 3);
for (Color c) {
	b.Size = b.Size + 1;
}
`
	unit, err := parser.New(lexer.New(src)).Parse()
	require.NoError(t, err)
	snaps.MatchSnapshot(t, unit.String())
}
