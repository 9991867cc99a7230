package parser

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

// parseFunctionDeclaration handles both body forms:
//
//	funkcija zbir(a: broj, b: broj): broj { vrati a + b; }
//	funkcija zbir(a, b) => a + b;
func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	kw := p.consume() // "funkcija"

	name, err := p.expectIdentifier("function name")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	ret, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	var body *ast.BlockStatement
	if p.current().Type == bslex.Arrow {
		body, err = p.parseArrowBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(bslex.Semicolon, "expected ';' after arrow function body"); err != nil {
			return nil, err
		}
	} else {
		body, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
	}

	p.logger.Debug("function", "name", name.Symbol, "params", len(params))
	return &ast.FunctionDeclaration{
		Loc:        at(kw),
		Name:       name,
		Params:     params,
		ReturnType: ret,
		Body:       body,
	}, nil
}

// parseFunctionExpression is the anonymous form. An arrow body here does not
// take the ';', the enclosing statement does.
func (p *Parser) parseFunctionExpression() (*ast.FunctionExpression, error) {
	kw := p.consume() // "funkcija"

	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	ret, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	var body *ast.BlockStatement
	if p.current().Type == bslex.Arrow {
		body, err = p.parseArrowBody()
	} else {
		body, err = p.parseBlockStatement()
	}
	if err != nil {
		return nil, err
	}

	return &ast.FunctionExpression{
		Loc:        at(kw),
		Params:     params,
		ReturnType: ret,
		Body:       body,
	}, nil
}

// parseArrowBody wraps `=> expr` into a block holding that one expression.
func (p *Parser) parseArrowBody() (*ast.BlockStatement, error) {
	arrow := p.consume() // "=>"
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Loc: at(arrow), Body: []ast.Statement{expr}}, nil
}

func (p *Parser) parseParameters() ([]*ast.FunctionParameter, error) {
	if _, err := p.expect(bslex.OpenParen, "expected '(' before parameters"); err != nil {
		return nil, err
	}

	var params []*ast.FunctionParameter
	if p.current().Type != bslex.CloseParen {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		for p.current().Type == bslex.Comma {
			p.consume() // ","
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}

	if _, err := p.expect(bslex.CloseParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParameter() (*ast.FunctionParameter, error) {
	id, err := p.expectIdentifier("parameter name")
	if err != nil {
		return nil, err
	}
	param := &ast.FunctionParameter{Loc: id.Loc, Identifier: id}
	if p.current().Type == bslex.Colon {
		p.consume() // ":"
		param.Type, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}
	return param, nil
}

func (p *Parser) parseReturnType() (*ast.TypeAnnotation, error) {
	if p.current().Type != bslex.Colon {
		return nil, nil
	}
	p.consume() // ":"
	return p.parseTypeAnnotation()
}

// parseTypeAnnotation reads `name` or `name[]`.
func (p *Parser) parseTypeAnnotation() (*ast.TypeAnnotation, error) {
	name, err := p.expect(bslex.Identifier, "expected type name")
	if err != nil {
		return nil, err
	}
	ann := &ast.TypeAnnotation{Loc: at(name), TypeName: name.Value}
	if p.current().Type == bslex.OpenBracket {
		p.consume() // "["
		if _, err := p.expect(bslex.CloseBracket, "expected ']' in array type"); err != nil {
			return nil, err
		}
		ann.IsArray = true
	}
	return ann, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	kw := p.consume() // "vrati"
	stmt := &ast.ReturnStatement{Loc: at(kw)}

	if p.current().Type == bslex.Se {
		p.consume() // "se"
	} else {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Argument = arg
	}

	if _, err := p.expect(bslex.Semicolon, "expected ';' after return"); err != nil {
		return nil, err
	}
	return stmt, nil
}
