package parser

import (
	"fmt"

	"github.com/ratioSolver/riddle/internal/lexer"
)

// Error is a structured parse failure: the offending token, what was
// expected, and a human message. The parser fails fast on the first
// Error — there is no error-recovery/synchronization pass.
type Error struct {
	Token    lexer.Token
	Expected string
	Message  string
}

func (e *Error) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: %s (expected %s, got %q)", e.Token.Pos, e.Message, e.Expected, e.Token.Literal)
	}
	return fmt.Sprintf("%s: %s", e.Token.Pos, e.Message)
}

func (p *Parser) errorf(expected, format string, args ...any) error {
	return &Error{Token: p.tok, Expected: expected, Message: fmt.Sprintf(format, args...)}
}
