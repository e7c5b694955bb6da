package parser

import (
	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
)

// parseStatement dispatches on the current token to the right
// statement production. An IDENT- or primitive-type-initial statement
// can be a local field declaration, an assignment, or a plain
// expression statement — parseIdentInitiated resolves the ambiguity.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.tok.Type {
	case lexer.LBRACE:
		return p.parseDisjunctionStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.FACT, lexer.GOAL:
		return p.parseFormulaStatement()
	case lexer.IDENT:
		return p.parseIdentInitiatedStatement()
	default:
		if isPrimitiveTypeToken(p.tok.Type) {
			return p.parseLocalFieldFrom(p.tok.Pos)
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		pos := expr.Pos()
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(pos, expr), nil
	}
}

// parseLocalFieldFrom parses `Type decl {, decl}* ;` once the leading
// type token (already current) has been recognized as starting a
// local-field statement.
func (p *Parser) parseLocalFieldFrom(pos lexer.Position) (ast.Statement, error) {
	t, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}
	var decls []ast.LocalDecl
	for {
		name, _, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var init ast.Expression
		if p.match(lexer.ASSIGN) {
			init, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		decls = append(decls, ast.LocalDecl{Name: name, Init: init})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewLocalFieldStatement(pos, t, decls), nil
}

// parseIdentInitiatedStatement disambiguates the three statement forms
// that can begin with an identifier: a local-field declaration
// (`Type id ...`, where Type is a dotted user type name), an assignment
// (`a.b.c = expr;`), or a bare expression statement. It speculatively
// parses a qualified path and branches on what follows.
func (p *Parser) parseIdentInitiatedStatement() (ast.Statement, error) {
	pos := p.tok.Pos
	start := p.mark()
	path, _, err := p.parseQualifiedPath()
	if err != nil {
		return nil, err
	}
	switch p.tok.Type {
	case lexer.IDENT:
		// `Type name ...` — a local field declaration whose type is the
		// qualified path just parsed.
		p.backtrack(start)
		return p.parseLocalFieldFrom(pos)
	case lexer.ASSIGN:
		if len(path) < 2 {
			return nil, p.errorf("qualified path", "assignment target must be a qualified path, got bare identifier %q", path[0])
		}
		p.next()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.NewAssignmentStatement(pos, path, value), nil
	default:
		// Neither a local field nor an assignment: re-parse as a full
		// expression statement (handles calls, comparisons, etc. that
		// happen to start with an identifier).
		p.backtrack(start)
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(pos, expr), nil
	}
}

// parseDisjunctionStatement parses `{ stmt* } [cost]? (or { stmt* } [cost]?)*`.
func (p *Parser) parseDisjunctionStatement() (ast.Statement, error) {
	pos := p.tok.Pos
	first, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	blocks := []*ast.BlockStatement{first}
	for p.tok.Type == lexer.OR {
		p.next()
		blk, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}
	if len(blocks) == 1 {
		return blocks[0], nil
	}
	return ast.NewDisjunctionStatement(pos, blocks), nil
}

// parseBlock parses `{ stmt* }` followed by an optional `[ expr ]` cost
// tag.
func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	pos := p.tok.Pos
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for p.tok.Type != lexer.RBRACE {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	var cost ast.Expression
	if p.match(lexer.LBRACK) {
		c, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cost = c
		if _, err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
	}
	return ast.NewBlockStatement(pos, stmts, cost), nil
}

// parseForStatement parses `for (Type id) { stmt* }`.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	pos := p.tok.Pos
	p.next() // consume 'for'
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	t, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	stmts, err := p.parseBraceStatements()
	if err != nil {
		return nil, err
	}
	return ast.NewForStatement(pos, t, name, stmts), nil
}

// parseReturnStatement parses `return expr;`.
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	pos := p.tok.Pos
	p.next() // consume 'return'
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(pos, value), nil
}

// parseFormulaStatement parses
// `fact|goal name = new [scopePath.]Q(arg: expr, ...);`: the bound
// name is a single id, and the dotted chain — if any — comes after
// `new`, naming the receiver to resolve Q on.
func (p *Parser) parseFormulaStatement() (ast.Statement, error) {
	pos := p.tok.Pos
	isFact := p.tok.Type == lexer.FACT
	p.next() // consume 'fact'/'goal'

	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.NEW); err != nil {
		return nil, err
	}
	predType, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}
	scopePath := predType.Path[:len(predType.Path)-1]
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.FormulaArg
	for p.tok.Type != lexer.RPAREN {
		if len(args) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		argName, _, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.FormulaArg{Name: argName, Value: value})
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewFormulaStatement(pos, isFact, scopePath, name, predType, args), nil
}
