// Package parser implements a recursive-descent, precedence-climbing
// parser for RiDDLe source, producing an *ast.CompilationUnit.
package parser

import "github.com/ratioSolver/riddle/internal/lexer"

// cursor buffers every token read from the lexer so that the parser can
// save a position and backtrack to it — needed to disambiguate
// statements that may ambiguously begin with a qualified identifier, and
// to tell a cast `(T) expr` apart from a parenthesized expression.
type cursor struct {
	lex    *lexer.Lexer
	tokens []lexer.Token
	pos    int
}

func newCursor(lex *lexer.Lexer) *cursor {
	return &cursor{lex: lex}
}

// fill ensures tokens[pos] is populated.
func (c *cursor) fill(pos int) {
	for len(c.tokens) <= pos {
		c.tokens = append(c.tokens, c.lex.NextToken())
	}
}

// current returns the token at pos.
func (c *cursor) current() lexer.Token {
	c.fill(c.pos)
	return c.tokens[c.pos]
}

// peek returns the token n positions ahead of the current one (peek(0)
// == current()).
func (c *cursor) peek(n int) lexer.Token {
	c.fill(c.pos + n)
	return c.tokens[c.pos+n]
}

// advance consumes the current token and returns it.
func (c *cursor) advance() lexer.Token {
	tok := c.current()
	c.pos++
	return tok
}

// mark returns a position that can later be passed to backtrack.
func (c *cursor) mark() int { return c.pos }

// backtrack rewinds the cursor to a position previously returned by
// mark.
func (c *cursor) backtrack(pos int) { c.pos = pos }
