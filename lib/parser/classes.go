package parser

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

// constructorName is the name given to a model's konstruktor function.
const constructorName = "konstruktor"

func (p *Parser) parseModelDefinition() (*ast.ModelDefinitionStatement, error) {
	kw := p.consume() // "model"

	name, err := p.expectIdentifier("model name")
	if err != nil {
		return nil, err
	}
	parent, err := p.parseParentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.OpenBrace, "expected '{' to open model "+name.Symbol); err != nil {
		return nil, err
	}

	model := &ast.ModelDefinitionStatement{Loc: at(kw), Name: name, Parent: parent}
	for p.current().Type != bslex.CloseBrace && !p.atEOF() {
		tok := p.current()
		switch tok.Type {
		case bslex.Constructor:
			if model.Constructor != nil {
				return nil, p.errorf(tok, "model %s already has a constructor", name.Symbol)
			}
			model.Constructor, err = p.parseConstructor()
		case bslex.Private:
			if model.Private != nil {
				return nil, p.errorf(tok, "model %s already has a '%s' block", name.Symbol, tok.Value)
			}
			model.Private, err = p.parseModelBlock()
		case bslex.Public:
			if model.Public != nil {
				return nil, p.errorf(tok, "model %s already has a '%s' block", name.Symbol, tok.Value)
			}
			model.Public, err = p.parseModelBlock()
		default:
			return nil, p.errorf(tok, "unexpected %s in model %s, expected 'konstruktor', 'privatno' or 'javno'", describe(tok), name.Symbol)
		}
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(bslex.CloseBrace, "expected '}' to close model "+name.Symbol); err != nil {
		return nil, err
	}
	if model.Constructor == nil {
		return nil, p.errorf(kw, "model %s has no constructor", name.Symbol)
	}

	p.logger.Debug("model", "name", name.Symbol)
	return model, nil
}

func (p *Parser) parseConstructor() (*ast.FunctionDeclaration, error) {
	kw := p.consume() // "konstruktor"

	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Loc:    at(kw),
		Name:   &ast.Identifier{Loc: at(kw), Symbol: constructorName},
		Params: params,
		Body:   body,
	}, nil
}

// parseModelBlock parses the body of `privatno { ... }` or `javno { ... }`.
func (p *Parser) parseModelBlock() (*ast.ModelBlock, error) {
	kw := p.consume() // "privatno" or "javno"
	if _, err := p.expect(bslex.OpenBrace, "expected '{' after '"+kw.Value+"'"); err != nil {
		return nil, err
	}

	block := &ast.ModelBlock{Loc: at(kw)}
	for p.current().Type != bslex.CloseBrace && !p.atEOF() {
		tok := p.current()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := block.Add(stmt); err != nil {
			return nil, p.errorf(tok, "%v", err)
		}
	}

	if _, err := p.expect(bslex.CloseBrace, "expected '}' to close '"+kw.Value+"'"); err != nil {
		return nil, err
	}
	return block, nil
}

// parseTypeDefinition parses a structural type:
//
//	tip Osoba < Entitet {
//	    ime: tekst;
//	    godine: broj;
//	}
func (p *Parser) parseTypeDefinition() (*ast.TypeDefinitionStatement, error) {
	kw := p.consume() // "tip"

	name, err := p.expectIdentifier("type name")
	if err != nil {
		return nil, err
	}
	parent, err := p.parseParentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.OpenBrace, "expected '{' to open type "+name.Symbol); err != nil {
		return nil, err
	}

	def := &ast.TypeDefinitionStatement{Loc: at(kw), Name: name, Parent: parent}
	for p.current().Type != bslex.CloseBrace && !p.atEOF() {
		prop, err := p.parseTypeProperty()
		if err != nil {
			return nil, err
		}
		def.Properties = append(def.Properties, prop)
	}

	if _, err := p.expect(bslex.CloseBrace, "expected '}' to close type "+name.Symbol); err != nil {
		return nil, err
	}
	if len(def.Properties) == 0 {
		p.warningf(kw, "type %s is empty", name.Symbol)
	}
	return def, nil
}

func (p *Parser) parseTypeProperty() (*ast.TypeProperty, error) {
	name, err := p.expect(bslex.Identifier, "expected property name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Colon, "expected ':' after property "+name.Value); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Semicolon, "expected ';' after property "+name.Value); err != nil {
		return nil, err
	}
	return &ast.TypeProperty{Loc: at(name), Name: name.Value, Type: typ}, nil
}

// parseParentName reads the optional `< Parent` of a type or model.
func (p *Parser) parseParentName() (*ast.Identifier, error) {
	tok := p.current()
	if tok.Type != bslex.RelationalOperator || tok.Value != "<" {
		return nil, nil
	}
	p.consume() // "<"
	return p.expectIdentifier("parent name after '<'")
}
