package parser

import (
	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
)

// Parser turns a token stream into an *ast.CompilationUnit. It keeps a
// single current token (tok) plus the cursor's lookahead buffer for
// multi-token probes, and fails on the first error encountered.
type Parser struct {
	c   *cursor
	tok lexer.Token
}

// New creates a Parser reading from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{c: newCursor(lex)}
	p.tok = p.c.current()
	return p
}

func (p *Parser) next() {
	p.c.advance()
	p.tok = p.c.current()
}

func (p *Parser) peek(n int) lexer.Token { return p.c.peek(n) }

func (p *Parser) mark() int { return p.c.mark() }

func (p *Parser) backtrack(pos int) {
	p.c.backtrack(pos)
	p.tok = p.c.current()
}

// match consumes the current token and returns true iff it has the
// given type.
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.tok.Type == tt {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token, failing with Error if it doesn't
// have the given type.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.tok.Type != tt {
		return lexer.Token{}, p.errorf(tt.String(), "unexpected token")
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *Parser) expectIdent() (string, lexer.Position, error) {
	tok, err := p.expect(lexer.IDENT)
	if err != nil {
		return "", lexer.Position{}, err
	}
	return tok.Literal, tok.Pos, nil
}

// Parse consumes the full token stream and returns the resulting
// compilation unit, or the first error encountered.
func (p *Parser) Parse() (*ast.CompilationUnit, error) {
	cu := &ast.CompilationUnit{}
	for p.tok.Type != lexer.EOF {
		switch p.tok.Type {
		case lexer.TYPEDEF:
			decl, err := p.parseTypedef()
			if err != nil {
				return nil, err
			}
			cu.Types = append(cu.Types, decl)
		case lexer.ENUM:
			decl, err := p.parseEnum()
			if err != nil {
				return nil, err
			}
			cu.Types = append(cu.Types, decl)
		case lexer.CLASS:
			decl, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			cu.Types = append(cu.Types, decl)
		case lexer.PREDICATE:
			decl, err := p.parsePredicate()
			if err != nil {
				return nil, err
			}
			cu.Predicates = append(cu.Predicates, decl)
		case lexer.VOID:
			decl, err := p.parseMethod()
			if err != nil {
				return nil, err
			}
			cu.Methods = append(cu.Methods, decl)
		case lexer.IDENT:
			if p.probeMemberIsMethod() {
				decl, err := p.parseMethod()
				if err != nil {
					return nil, err
				}
				cu.Methods = append(cu.Methods, decl)
				continue
			}
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			cu.Body = append(cu.Body, stmt)
		default:
			if isPrimitiveTypeToken(p.tok.Type) && p.probeMemberIsMethod() {
				decl, err := p.parseMethod()
				if err != nil {
					return nil, err
				}
				cu.Methods = append(cu.Methods, decl)
				continue
			}
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			cu.Body = append(cu.Body, stmt)
		}
	}
	return cu, nil
}

// probeMemberIsMethod speculatively parses a qualified return type
// followed by a name and reports whether an open paren follows,
// without consuming any tokens. It disambiguates a non-void method
// declaration (`T name(...)`) from a field declaration or statement
// that happens to start with the same qualified type.
func (p *Parser) probeMemberIsMethod() bool {
	start := p.mark()
	defer p.backtrack(start)
	if _, err := p.parseQualifiedType(); err != nil {
		return false
	}
	if p.tok.Type != lexer.IDENT {
		return false
	}
	p.next()
	return p.tok.Type == lexer.LPAREN
}

func isPrimitiveTypeToken(tt lexer.TokenType) bool {
	switch tt {
	case lexer.BOOL, lexer.KW_INT, lexer.KW_REAL, lexer.TIME, lexer.KW_STRING:
		return true
	}
	return false
}

func primitiveTypeName(tt lexer.TokenType) string {
	switch tt {
	case lexer.BOOL:
		return "bool"
	case lexer.KW_INT:
		return "int"
	case lexer.KW_REAL:
		return "real"
	case lexer.TIME:
		return "time"
	case lexer.KW_STRING:
		return "string"
	}
	return ""
}

// parseQualifiedType parses a primitive-type keyword or a dotted
// identifier chain.
func (p *Parser) parseQualifiedType() (ast.QualifiedType, error) {
	pos := p.tok.Pos
	if isPrimitiveTypeToken(p.tok.Type) {
		name := primitiveTypeName(p.tok.Type)
		p.next()
		return ast.NewQualifiedType(pos, name), nil
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return ast.QualifiedType{}, err
	}
	path := []string{name}
	for p.tok.Type == lexer.DOT {
		p.next()
		seg, _, err := p.expectIdent()
		if err != nil {
			return ast.QualifiedType{}, err
		}
		path = append(path, seg)
	}
	return ast.NewQualifiedType(pos, path...), nil
}

// parseQualifiedPath parses a bare dotted identifier chain (no
// primitive-type keywords allowed).
func (p *Parser) parseQualifiedPath() ([]string, lexer.Position, error) {
	name, pos, err := p.expectIdent()
	if err != nil {
		return nil, lexer.Position{}, err
	}
	path := []string{name}
	for p.tok.Type == lexer.DOT {
		p.next()
		seg, _, err := p.expectIdent()
		if err != nil {
			return nil, lexer.Position{}, err
		}
		path = append(path, seg)
	}
	return path, pos, nil
}

// parseParamList parses `( [Type name {, Type name}] )`.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.tok.Type != lexer.RPAREN {
		if len(params) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		t, err := p.parseQualifiedType()
		if err != nil {
			return nil, err
		}
		name, _, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Type: t, Name: name})
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseArgList parses `( [expr {, expr}] )`.
func (p *Parser) parseArgList() ([]ast.Expression, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.tok.Type != lexer.RPAREN {
		if len(args) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}
