package parser

import (
	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
)

// parseTypedef parses `typedef Base Name = expr;`.
func (p *Parser) parseTypedef() (ast.Declaration, error) {
	pos := p.tok.Pos
	p.next() // consume 'typedef'
	base, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewTypedefDeclaration(pos, name, base, expr), nil
}

// parseEnum parses `enum Name { "v1", Other.Union, "v2", ... };`.
// Union references are comma-separated items inside the braces and
// may be interleaved freely with string values.
func (p *Parser) parseEnum() (ast.Declaration, error) {
	pos := p.tok.Pos
	p.next() // consume 'enum'
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var values []string
	var unions []ast.QualifiedType
	for p.tok.Type != lexer.RBRACE {
		if len(values)+len(unions) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		if p.tok.Type == lexer.STRING {
			values = append(values, p.tok.Value.(string))
			p.next()
		} else {
			t, err := p.parseQualifiedType()
			if err != nil {
				return nil, err
			}
			unions = append(unions, t)
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewEnumDeclaration(pos, name, values, unions), nil
}

// parsePredicate parses
// `predicate Name(params) [: Parent1, Parent2] { stmt* }`.
func (p *Parser) parsePredicate() (*ast.PredicateDeclaration, error) {
	pos := p.tok.Pos
	p.next() // consume 'predicate'
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	var parents []ast.QualifiedType
	if p.match(lexer.COLON) {
		for {
			t, err := p.parseQualifiedType()
			if err != nil {
				return nil, err
			}
			parents = append(parents, t)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	body, err := p.parseBraceStatements()
	if err != nil {
		return nil, err
	}
	return ast.NewPredicateDeclaration(pos, name, params, parents, body), nil
}

// parseMethod parses a method declaration, whose return type has
// already been identified (by the caller's probe) as either `void` or
// a qualified type: `[void|Type] name(params) { stmt* }`.
func (p *Parser) parseMethod() (*ast.MethodDeclaration, error) {
	pos := p.tok.Pos
	var ret *ast.QualifiedType
	if p.tok.Type == lexer.VOID {
		p.next()
	} else {
		t, err := p.parseQualifiedType()
		if err != nil {
			return nil, err
		}
		ret = &t
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraceStatements()
	if err != nil {
		return nil, err
	}
	return ast.NewMethodDeclaration(pos, ret, name, params, body), nil
}

// parseBraceStatements parses `{ stmt* }` and returns the statements.
func (p *Parser) parseBraceStatements() ([]ast.Statement, error) {
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
	return stmts, nil
}

// parseClass parses `class Name [: Base1, Base2] { member* }`, dispatching
// each member to a constructor, method, field, nested type, or nested
// predicate. When the body declares no constructor, a single zero-arg
// synthetic constructor is added so every class has at least one.
func (p *Parser) parseClass() (ast.Declaration, error) {
	pos := p.tok.Pos
	p.next() // consume 'class'
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	var bases []ast.QualifiedType
	if p.match(lexer.COLON) {
		for {
			t, err := p.parseQualifiedType()
			if err != nil {
				return nil, err
			}
			bases = append(bases, t)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	decl := ast.NewClassDeclaration(pos, name, bases)
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	for p.tok.Type != lexer.RBRACE {
		if err := p.parseClassMember(decl); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	if len(decl.Constructors) == 0 {
		synth := ast.NewConstructorDeclaration(pos, nil, nil, nil)
		synth.Synthetic = true
		decl.Constructors = append(decl.Constructors, synth)
	}
	return decl, nil
}

func (p *Parser) parseClassMember(decl *ast.ClassDeclaration) error {
	switch p.tok.Type {
	case lexer.TYPEDEF:
		t, err := p.parseTypedef()
		if err != nil {
			return err
		}
		decl.Types = append(decl.Types, t)
	case lexer.ENUM:
		t, err := p.parseEnum()
		if err != nil {
			return err
		}
		decl.Types = append(decl.Types, t)
	case lexer.CLASS:
		t, err := p.parseClass()
		if err != nil {
			return err
		}
		decl.Types = append(decl.Types, t)
	case lexer.PREDICATE:
		pred, err := p.parsePredicate()
		if err != nil {
			return err
		}
		decl.Predicates = append(decl.Predicates, pred)
	case lexer.NEW:
		ctor, err := p.parseConstructor()
		if err != nil {
			return err
		}
		decl.Constructors = append(decl.Constructors, ctor)
	case lexer.VOID:
		m, err := p.parseMethod()
		if err != nil {
			return err
		}
		decl.Methods = append(decl.Methods, m)
	default:
		if p.probeMemberIsMethod() {
			m, err := p.parseMethod()
			if err != nil {
				return err
			}
			decl.Methods = append(decl.Methods, m)
			return nil
		}
		fields, err := p.parseFieldDecl()
		if err != nil {
			return err
		}
		decl.Fields = append(decl.Fields, fields...)
	}
	return nil
}

// parseFieldDecl parses `Type name [= expr] {, name [= expr]}* ;`.
func (p *Parser) parseFieldDecl() ([]ast.FieldDecl, error) {
	t, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}
	var fields []ast.FieldDecl
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
		fields = append(fields, ast.FieldDecl{Type: t, Name: name, Init: init})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return fields, nil
}

// parseConstructor parses
// `new(params) [: init {, init}*] { stmt* }`, where each init is either
// `name(args)` (a field initializer or base-constructor call).
func (p *Parser) parseConstructor() (*ast.ConstructorDeclaration, error) {
	pos := p.tok.Pos
	p.next() // consume 'new'
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	var inits []ast.Init
	if p.match(lexer.COLON) {
		for {
			name, _, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			inits = append(inits, ast.Init{Name: name, Args: args})
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	body, err := p.parseBraceStatements()
	if err != nil {
		return nil, err
	}
	return ast.NewConstructorDeclaration(pos, params, inits, body), nil
}
