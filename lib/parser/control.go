package parser

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

func (p *Parser) parseCondition(keyword string) (ast.Expression, error) {
	if _, err := p.expect(bslex.OpenParen, "expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.CloseParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIfStatement parses `ako (c) s`, optionally followed by
// `ili ako (c) s` chains and a final `inace s`.
func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	kw, err := p.expect(bslex.Ako, "expected 'ako'")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition(kw.Value)
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Loc: at(kw), Condition: cond, Consequent: consequent}
	switch p.current().Type {
	case bslex.Ili:
		p.consume() // "ili"
		alt, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternate = alt
	case bslex.Inace:
		p.consume() // "inace"
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternate = alt
	}
	return stmt, nil
}

// parseUnlessStatement parses `osim ako (c) s [inace s]`.
func (p *Parser) parseUnlessStatement() (*ast.UnlessStatement, error) {
	kw := p.consume() // "osim"
	if _, err := p.expect(bslex.Ako, "expected 'ako' after 'osim'"); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition("osim ako")
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.UnlessStatement{Loc: at(kw), Condition: cond, Consequent: consequent}
	if p.current().Type == bslex.Inace {
		p.consume() // "inace"
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternate = alt
	}
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStatement, error) {
	kw := p.consume() // "dok"
	cond, err := p.parseCondition(kw.Value)
	if err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Loc: at(kw), Condition: cond, Body: body}, nil
}

// parseDoWhileStatement parses `radi { ... } dok (c);`.
func (p *Parser) parseDoWhileStatement() (*ast.DoWhileStatement, error) {
	kw := p.consume() // "radi"
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	dok, err := p.expect(bslex.Dok, "expected 'dok' after 'radi' block")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition(dok.Value)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Semicolon, "expected ';' after 'radi-dok'"); err != nil {
		return nil, err
	}
	return &ast.DoWhileStatement{Loc: at(kw), Condition: cond, Body: body}, nil
}

// parseForStatement parses `za svako (i od 1 do 10 korak 2) { ... }`.
func (p *Parser) parseForStatement() (*ast.ForStatement, error) {
	kw := p.consume() // "za"
	if _, err := p.expect(bslex.Svako, "expected 'svako' after 'za'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.OpenParen, "expected '(' after 'za svako'"); err != nil {
		return nil, err
	}

	counter, err := p.expectIdentifier("loop counter")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Od, "expected 'od' after loop counter"); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Do, "expected 'do' after loop start"); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ForStatement{Loc: at(kw), Counter: counter, Start: start, End: end}
	if p.current().Type == bslex.Korak {
		p.consume() // "korak"
		step, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Step = step
	}

	if _, err := p.expect(bslex.CloseParen, "expected ')' to close loop header"); err != nil {
		return nil, err
	}
	stmt.Body, err = p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseLoopBody reads a block, or `=> s` which is wrapped in a block.
func (p *Parser) parseLoopBody() (*ast.BlockStatement, error) {
	if p.current().Type != bslex.Arrow {
		return p.parseBlockStatement()
	}
	arrow := p.consume() // "=>"
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Loc: at(arrow), Body: []ast.Statement{stmt}}, nil
}

// parseBreakStatement takes an optional ';' after `prekid`.
func (p *Parser) parseBreakStatement() (*ast.BreakStatement, error) {
	kw := p.consume() // "prekid"
	if p.current().Type == bslex.Semicolon {
		p.consume()
	}
	return &ast.BreakStatement{Loc: at(kw)}, nil
}

// parseTryCatchStatement parses `probaj { } spasi { } [svakako { }]`.
func (p *Parser) parseTryCatchStatement() (*ast.TryCatchStatement, error) {
	kw := p.consume() // "probaj"
	try, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Catch, "expected 'spasi' after 'probaj' block"); err != nil {
		return nil, err
	}
	catch, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.TryCatchStatement{Loc: at(kw), Try: try, Catch: catch}
	if p.current().Type == bslex.Finally {
		p.consume() // "svakako"
		stmt.Finally, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
