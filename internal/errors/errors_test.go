package errors_test

import (
	"strings"
	"testing"

	riddleerrors "github.com/ratioSolver/riddle/internal/errors"
	"github.com/ratioSolver/riddle/internal/lexer"
	"github.com/ratioSolver/riddle/internal/parser"
	"github.com/ratioSolver/riddle/internal/riddle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorClassifiesLexError(t *testing.T) {
	err := &lexer.Error{Message: "illegal character", Pos: lexer.Position{Line: 2, StartCol: 5}}
	diag := riddleerrors.FromError(err, "", "<test>")
	assert.Equal(t, riddleerrors.LexError, diag.Kind)
	assert.Equal(t, 2, diag.Pos.Line)
}

func TestFromErrorClassifiesParseError(t *testing.T) {
	_, err := parser.New(lexer.New("int x 1;")).Parse()
	require.Error(t, err)
	diag := riddleerrors.FromError(err, "int x 1;", "<test>")
	assert.Equal(t, riddleerrors.ParseError, diag.Kind)
}

func TestFromErrorClassifiesRiddleTypedErrors(t *testing.T) {
	core := riddle.New(riddle.NewReference())
	err := core.Read(`
class Foo { new() { } }
class Foo { new() { } }
`)
	require.Error(t, err)
	diag := riddleerrors.FromError(err, "", "<test>")
	assert.Equal(t, riddleerrors.DuplicateName, diag.Kind)
}

func TestFromErrorFallsBackToNotImplemented(t *testing.T) {
	diag := riddleerrors.FromError(assertError("boom"), "", "<test>")
	assert.Equal(t, riddleerrors.NotImplemented, diag.Kind)
	assert.Equal(t, "boom", diag.Message)
}

func TestFromErrorsSkipsNils(t *testing.T) {
	diags := riddleerrors.FromErrors([]error{nil, assertError("a"), nil, assertError("b")}, "", "<test>")
	assert.Len(t, diags, 2)
}

func TestFormatWithoutColorIncludesSourceLineAndCaret(t *testing.T) {
	src := "int x 1;"
	_, err := parser.New(lexer.New(src)).Parse()
	require.Error(t, err)
	diag := riddleerrors.FromError(err, src, "prog.rddl")
	out := diag.Format(false)
	assert.True(t, strings.Contains(out, "prog.rddl"))
	assert.True(t, strings.Contains(out, src))
	assert.True(t, strings.Contains(out, "^"))
}

func TestFormatAllNumbersMultipleDiagnostics(t *testing.T) {
	diags := riddleerrors.FromErrors([]error{assertError("a"), assertError("b")}, "", "<test>")
	out := riddleerrors.FormatAll(diags, false)
	assert.True(t, strings.Contains(out, "2 error(s)"))
	assert.True(t, strings.Contains(out, "[1/2]"))
	assert.True(t, strings.Contains(out, "[2/2]"))
}

func TestFormatAllSingleDiagnosticHasNoBanner(t *testing.T) {
	diags := riddleerrors.FromErrors([]error{assertError("only")}, "", "<test>")
	out := riddleerrors.FormatAll(diags, false)
	assert.False(t, strings.Contains(out, "error(s)"))
}

type assertError string

func (e assertError) Error() string { return string(e) }
