package parser

import (
	"strconv"

	"github.com/arminrejzovic/bosscript/lib/ast"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	if p.current().Type == bslex.Funkcija {
		return p.parseFunctionExpression()
	}
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}

	op := p.current()
	if op.Type != bslex.SimpleAssign && op.Type != bslex.ComplexAssign {
		return left, nil
	}
	if !ast.IsAssignable(left) {
		return nil, p.errorf(op, "invalid assignment target, cannot assign to %s", left.Kind())
	}
	p.consume() // operator

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpression{
		Loc:      ast.Loc{Pos: left.Position()},
		Assignee: left,
		Value:    value,
		Operator: op.Value,
	}, nil
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == bslex.LogicalOr {
		op := p.consume()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Loc: ast.Loc{Pos: left.Position()}, Left: left, Right: right, Operator: op.Value}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.current().Type == bslex.LogicalAnd {
		op := p.consume()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Loc: ast.Loc{Pos: left.Position()}, Left: left, Right: right, Operator: op.Value}
	}
	return left, nil
}

// Equality and relational operands on the right recurse into the same tier.
func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.current().Type == bslex.EqualityOperator {
		op := p.consume()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = binary(left, right, op)
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.current().Type == bslex.RelationalOperator {
		op := p.consume()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = binary(left, right, op)
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.isBinaryOperator("+", "-") {
		op := p.consume()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = binary(left, right, op)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseExponentiation()
	if err != nil {
		return nil, err
	}
	for p.isBinaryOperator("*", "/", "%") {
		op := p.consume()
		right, err := p.parseExponentiation()
		if err != nil {
			return nil, err
		}
		left = binary(left, right, op)
	}
	return left, nil
}

func (p *Parser) parseExponentiation() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Type == bslex.Exponent {
		op := p.consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary(left, right, op)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.current()
	switch {
	case p.isBinaryOperator("+", "-"),
		tok.Type == bslex.UnaryIncrement,
		tok.Type == bslex.UnaryDecrement,
		tok.Type == bslex.LogicalNot:
		p.consume()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Loc: at(tok), Operator: tok.Value, Operand: operand}, nil
	}
	return p.parseCallMember()
}

// parseCallMember folds any run of `.name`, `[expr]` and `(args)` onto a
// primary expression.
func (p *Parser) parseCallMember() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	// @name is member access on the receiver without a dot. @[expr] needs no
	// special case, the loop below handles it.
	if id, ok := expr.(*ast.Identifier); ok && id.IsThis() && p.current().Type == bslex.Identifier {
		prop := p.consume()
		expr = &ast.MemberExpression{
			Loc:      id.Loc,
			Object:   id,
			Property: &ast.Identifier{Loc: at(prop), Symbol: prop.Value},
		}
	}

	for {
		switch p.current().Type {
		case bslex.Dot:
			p.consume() // "."
			prop, err := p.expect(bslex.Identifier, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{
				Loc:      ast.Loc{Pos: expr.Position()},
				Object:   expr,
				Property: &ast.Identifier{Loc: at(prop), Symbol: prop.Value},
			}
		case bslex.OpenBracket:
			p.consume() // "["
			prop, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(bslex.CloseBracket, "expected ']'"); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{
				Loc:      ast.Loc{Pos: expr.Position()},
				Object:   expr,
				Property: prop,
				Computed: true,
			}
		case bslex.OpenParen:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{
				Loc:       ast.Loc{Pos: expr.Position()},
				Callee:    expr,
				Arguments: args,
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArguments() ([]ast.Expression, error) {
	if _, err := p.expect(bslex.OpenParen, "expected '('"); err != nil {
		return nil, err
	}
	args, err := p.parseExpressionList(bslex.CloseParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.CloseParen, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseExpressionList parses comma separated expressions up to, but not
// including, the closing token. An empty list is only allowed when the
// closing token follows at once.
func (p *Parser) parseExpressionList(closing bslex.TokenType) ([]ast.Expression, error) {
	var list []ast.Expression
	if p.current().Type == closing {
		return list, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	list = append(list, expr)
	for p.current().Type == bslex.Comma {
		p.consume() // ","
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
	return list, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()
	switch tok.Type {
	case bslex.Number:
		p.consume()
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid number '%s'", tok.Value)
		}
		return &ast.NumericLiteral{Loc: at(tok), Value: value}, nil
	case bslex.DoubleQuote:
		return p.parseStringLiteral()
	case bslex.OpenParen:
		p.consume() // "("
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(bslex.CloseParen, "expected ')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case bslex.OpenBracket:
		return p.parseArrayLiteral()
	case bslex.OpenBrace:
		return p.parseObjectLiteral()
	case bslex.Tacno, bslex.Netacno:
		p.consume()
		return &ast.BooleanLiteral{Loc: at(tok), Value: tok.Type == bslex.Tacno}, nil
	case bslex.Nedefinisano:
		p.consume()
		return &ast.NullLiteral{Loc: at(tok)}, nil
	case bslex.Javascript:
		if !p.js {
			return nil, p.errorf(tok, "javascript snippets are only allowed when targeting Javascript")
		}
		p.consume()
		return &ast.JavascriptSnippet{Loc: at(tok), Code: tok.Value}, nil
	default:
		return p.parseIdentifier()
	}
}

// parseIdentifier accepts a plain identifier or the receiver `@`.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok := p.current()
	if tok.Type == bslex.This {
		p.consume()
		return &ast.Identifier{Loc: at(tok), Symbol: ast.ThisSymbol}, nil
	}
	if tok.Type != bslex.Identifier {
		return nil, p.errorf(tok, "unexpected %s, expected an expression", describe(tok))
	}
	p.consume()
	return &ast.Identifier{Loc: at(tok), Symbol: tok.Value}, nil
}

// expectIdentifier is for names in declarations, where `@` is not allowed.
func (p *Parser) expectIdentifier(what string) (*ast.Identifier, error) {
	tok, err := p.expect(bslex.Identifier, "expected "+what)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Loc: at(tok), Symbol: tok.Value}, nil
}

func (p *Parser) parseStringLiteral() (*ast.StringLiteral, error) {
	open, err := p.expect(bslex.DoubleQuote, "expected '\"'")
	if err != nil {
		return nil, err
	}
	str, err := p.expect(bslex.String, "expected string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.DoubleQuote, "missing closing '\"' at the end of the string"); err != nil {
		return nil, err
	}
	return &ast.StringLiteral{Loc: at(open), Value: str.Value}, nil
}

func (p *Parser) parseArrayLiteral() (*ast.ArrayLiteral, error) {
	open, err := p.expect(bslex.OpenBracket, "expected '['")
	if err != nil {
		return nil, err
	}
	elements, err := p.parseExpressionList(bslex.CloseBracket)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.CloseBracket, "expected ']' to close the array"); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Loc: at(open), Elements: elements}, nil
}

func (p *Parser) parseObjectLiteral() (*ast.ObjectLiteral, error) {
	open, err := p.expect(bslex.OpenBrace, "expected '{'")
	if err != nil {
		return nil, err
	}

	obj := &ast.ObjectLiteral{Loc: at(open)}
	if p.current().Type != bslex.CloseBrace {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, prop)
		for p.current().Type == bslex.Comma {
			p.consume() // ","
			prop, err := p.parseObjectProperty()
			if err != nil {
				return nil, err
			}
			obj.Properties = append(obj.Properties, prop)
		}
	}

	if _, err := p.expect(bslex.CloseBrace, "expected ',' or '}' in object literal"); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *Parser) parseObjectProperty() (*ast.ObjectProperty, error) {
	key, err := p.expect(bslex.Identifier, "expected object key")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Colon, "expected ':' after object key"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectProperty{Loc: at(key), Key: key.Value, Value: value}, nil
}

func (p *Parser) isBinaryOperator(ops ...string) bool {
	tok := p.current()
	if tok.Type != bslex.BinaryOperator {
		return false
	}
	for _, op := range ops {
		if tok.Value == op {
			return true
		}
	}
	return false
}

func binary(left, right ast.Expression, op bslex.Token) *ast.BinaryExpression {
	return &ast.BinaryExpression{Loc: ast.Loc{Pos: left.Position()}, Left: left, Right: right, Operator: op.Value}
}
