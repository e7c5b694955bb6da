package parser

import (
	"math/big"

	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
)

// parseExpression is the entry point for expression parsing: equality
// is the loosest-binding level.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseEquality()
}

// parseEquality handles `==` and `!=`, left-associative.
func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseLevel1()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == lexer.EQ || p.tok.Type == lexer.NOT_EQ {
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		right, err := p.parseLevel1()
		if err != nil {
			return nil, err
		}
		left = ast.NewCompareExpression(pos, op, left, right)
	}
	return left, nil
}

// parseLevel1 handles the single precedence level shared by ordering
// comparisons, implication, and the bitwise/set operators `| & ^`. A
// contiguous run of the SAME operator is accumulated into one flat
// NaryExpression (for `| & ^`); a comparison or implication operator
// always takes exactly two operands. When the operator changes
// mid-expression, the node built so far becomes the left operand of the
// next one, composing left to right.
func (p *Parser) parseLevel1() (ast.Expression, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case lexer.LESS, lexer.LESS_EQ, lexer.GREATER_EQ, lexer.GREATER:
			op := p.tok.Type
			pos := p.tok.Pos
			p.next()
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = ast.NewCompareExpression(pos, op, left, right)
		case lexer.ARROW:
			pos := p.tok.Pos
			p.next()
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = ast.NewImplicationExpr(pos, left, right)
		case lexer.PIPE, lexer.AMP, lexer.CARET:
			op := p.tok.Type
			pos := p.tok.Pos
			operands := []ast.Expression{left}
			for p.tok.Type == op {
				p.next()
				rhs, err := p.parseSum()
				if err != nil {
					return nil, err
				}
				operands = append(operands, rhs)
			}
			left = ast.NewNaryExpression(pos, op, operands)
		default:
			return left, nil
		}
	}
}

// parseSum accumulates a run of `+`/`-` into a flat NaryExpression.
func (p *Parser) parseSum() (ast.Expression, error) {
	return p.parseNaryRun(p.parseProduct, lexer.PLUS, lexer.MINUS)
}

// parseProduct accumulates a run of `*`/`/` into a flat NaryExpression.
func (p *Parser) parseProduct() (ast.Expression, error) {
	return p.parseNaryRun(p.parseUnary, lexer.ASTERISK, lexer.SLASH)
}

// parseNaryRun parses one operand via next, then while the current
// token is one of ops, consumes it and folds in another operand,
// flattening the whole run into a single NaryExpression.
func (p *Parser) parseNaryRun(next func() (ast.Expression, error), ops ...lexer.TokenType) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	pos := p.tok.Pos
	var operands []ast.Expression
	var op lexer.TokenType
	for isOneOf(p.tok.Type, ops) {
		if operands == nil {
			operands = []ast.Expression{left}
			op = p.tok.Type
			pos = p.tok.Pos
		} else if p.tok.Type != op {
			// operator changed mid-run: close out the current node and
			// start a fresh run with it as the left operand.
			left = ast.NewNaryExpression(pos, op, operands)
			operands = []ast.Expression{left}
			op = p.tok.Type
			pos = p.tok.Pos
		}
		p.next()
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		operands = append(operands, rhs)
	}
	if operands == nil {
		return left, nil
	}
	return ast.NewNaryExpression(pos, op, operands), nil
}

func isOneOf(tt lexer.TokenType, set []lexer.TokenType) bool {
	for _, s := range set {
		if tt == s {
			return true
		}
	}
	return false
}

// parseUnary handles prefix `+`, `-`, `!`.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.tok.Type {
	case lexer.PLUS, lexer.MINUS, lexer.BANG:
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(pos, op, operand), nil
	default:
		return p.parseAtom()
	}
}

// parseAtom handles literals, parenthesized expressions, casts,
// constructor calls, qualified identifiers/calls, and `this`.
func (p *Parser) parseAtom() (ast.Expression, error) {
	switch p.tok.Type {
	case lexer.TRUE:
		pos := p.tok.Pos
		p.next()
		return ast.NewBoolLiteral(pos, true), nil
	case lexer.FALSE:
		pos := p.tok.Pos
		p.next()
		return ast.NewBoolLiteral(pos, false), nil
	case lexer.INT:
		tok := p.tok
		p.next()
		return ast.NewIntLiteral(tok.Pos, tok.Value.(int64)), nil
	case lexer.REAL:
		tok := p.tok
		p.next()
		return ast.NewRealLiteral(tok.Pos, tok.Value.(*big.Rat)), nil
	case lexer.STRING:
		tok := p.tok
		p.next()
		return ast.NewStringLiteral(tok.Pos, tok.Value.(string)), nil
	case lexer.THIS:
		pos := p.tok.Pos
		p.next()
		path := []string{"this"}
		for p.tok.Type == lexer.DOT {
			p.next()
			seg, _, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			path = append(path, seg)
		}
		if p.tok.Type == lexer.LPAREN {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return ast.NewCallExpression(pos, path, args), nil
		}
		return ast.NewIdentifier(pos, path...), nil
	case lexer.NEW:
		pos := p.tok.Pos
		p.next()
		t, err := p.parseQualifiedType()
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return ast.NewConstructorExpr(pos, t, args), nil
	case lexer.LPAREN:
		return p.parseParenOrCast()
	case lexer.IDENT:
		return p.parseIdentOrCall()
	}
	return nil, p.errorf("expression", "unexpected token %q", p.tok.Literal)
}

// parseParenOrCast disambiguates `(T) expr` from `( expr )` by
// speculatively parsing a qualified type and checking for a following
// RPAREN that is itself followed by the start of another expression;
// if that fails, it backtracks and parses a parenthesized expression.
func (p *Parser) parseParenOrCast() (ast.Expression, error) {
	pos := p.tok.Pos
	start := p.mark()
	p.next() // consume '('
	if p.tok.Type == lexer.IDENT || isPrimitiveTypeToken(p.tok.Type) {
		t, err := p.parseQualifiedType()
		if err == nil && p.tok.Type == lexer.RPAREN {
			afterParen := p.mark()
			p.next() // consume ')'
			if p.startsExpression(p.tok.Type) {
				operand, err := p.parseUnary()
				if err == nil {
					return ast.NewCastExpression(pos, t, operand), nil
				}
			}
			p.backtrack(afterParen)
		}
	}
	p.backtrack(start)
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) startsExpression(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TRUE, lexer.FALSE, lexer.INT, lexer.REAL, lexer.STRING,
		lexer.THIS, lexer.NEW, lexer.LPAREN, lexer.IDENT,
		lexer.PLUS, lexer.MINUS, lexer.BANG:
		return true
	}
	return false
}

// parseIdentOrCall parses a dotted identifier chain, optionally
// followed by an argument list making it a call.
func (p *Parser) parseIdentOrCall() (ast.Expression, error) {
	path, pos, err := p.parseQualifiedPath()
	if err != nil {
		return nil, err
	}
	if p.tok.Type == lexer.LPAREN {
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return ast.NewCallExpression(pos, path, args), nil
	}
	return ast.NewIdentifier(pos, path...), nil
}
