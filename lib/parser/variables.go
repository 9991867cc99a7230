package parser

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

// parseVariableStatement parses `var a = 1, b;` and `konst c = 2;`.
func (p *Parser) parseVariableStatement() (*ast.VariableStatement, error) {
	kw := p.consume() // "var" or "konst"
	stmt := &ast.VariableStatement{Loc: at(kw), Constant: kw.Type == bslex.Konst}

	decl, err := p.parseVariableDeclaration()
	if err != nil {
		return nil, err
	}
	stmt.Declarations = append(stmt.Declarations, decl)
	for p.current().Type == bslex.Comma {
		p.consume() // ","
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		stmt.Declarations = append(stmt.Declarations, decl)
	}

	if _, err := p.expect(bslex.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	name, err := p.expect(bslex.Identifier, "expected variable name")
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{Loc: at(name), Name: name.Value}

	if p.current().Type == bslex.SimpleAssign {
		p.consume() // "="
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Value = value
	}
	return decl, nil
}
