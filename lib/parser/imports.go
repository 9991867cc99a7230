package parser

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

// parseImportStatement parses `paket "ime";` for the whole package and
// `paket "ime" { a, b };` for selected names.
func (p *Parser) parseImportStatement() (*ast.ImportStatement, error) {
	kw := p.consume() // "paket"
	pkg, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ImportStatement{Loc: at(kw), Package: pkg.Value}
	if p.current().Type == bslex.Semicolon {
		p.consume()
		return stmt, nil
	}

	if _, err := p.expect(bslex.OpenBrace, "expected ';' or '{' after package name"); err != nil {
		return nil, err
	}
	if p.current().Type != bslex.CloseBrace {
		id, err := p.expectIdentifier("imported name")
		if err != nil {
			return nil, err
		}
		stmt.Imports = append(stmt.Imports, id)
		for p.current().Type == bslex.Comma {
			p.consume() // ","
			id, err := p.expectIdentifier("imported name")
			if err != nil {
				return nil, err
			}
			stmt.Imports = append(stmt.Imports, id)
		}
	}
	if _, err := p.expect(bslex.CloseBrace, "expected ',' or '}' in import list"); err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Semicolon, "expected ';' after import"); err != nil {
		return nil, err
	}

	p.logger.Debug("import", "package", stmt.Package, "names", len(stmt.Imports))
	return stmt, nil
}
