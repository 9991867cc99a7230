package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arminrejzovic/bosscript/lib/ast"
	"github.com/arminrejzovic/bosscript/lib/diag"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

type Option func(*Parser)

// WithJavascript enables backtick Javascript snippets.
func WithJavascript(allow bool) Option {
	return func(p *Parser) {
		p.js = allow
	}
}

func WithFilename(name string) Option {
	return func(p *Parser) {
		p.filename = name
	}
}

// WithWarnings replaces the default handler that prints warnings to stderr.
func WithWarnings(handler func(diag.Warning)) Option {
	return func(p *Parser) {
		p.warn = handler
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser is a recursive descent parser over a fully tokenized source. It
// keeps one token of lookahead and never backtracks.
type Parser struct {
	js       bool
	filename string
	warn     func(diag.Warning)
	logger   *slog.Logger

	tokens []bslex.Token
	pos    int
}

func New(opts ...Option) *Parser {
	p := &Parser{
		warn:   diag.PrintWarning,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString parses src with the default options.
func ParseString(src string, opts ...Option) (*ast.Program, error) {
	return New(opts...).ParseProgram(src)
}

// ParseProgram tokenizes src and parses it into a Program. The first lexical
// or syntax error aborts the parse and is returned as a *diag.Error.
func (p *Parser) ParseProgram(src string) (*ast.Program, error) {
	tokens, err := bslex.New(src, bslex.WithFilename(p.filename), bslex.WithJavascript(p.js)).Tokenize()
	if err != nil {
		return nil, err
	}
	p.tokens, p.pos = tokens, 0
	p.logger.Debug("tokenized", "file", p.filename, "tokens", len(tokens))

	prog := &ast.Program{Loc: at(p.current())}
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Debug("parse failed", "file", p.filename, "error", err)
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}

	p.logger.Debug("parsed", "file", p.filename, "statements", len(prog.Body))
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Type {
	case bslex.OpenBrace:
		return p.parseBlockStatement()
	case bslex.Semicolon:
		return &ast.EmptyStatement{Loc: at(p.consume())}, nil
	case bslex.Var, bslex.Konst:
		return p.parseVariableStatement()
	case bslex.Ako:
		return p.parseIfStatement()
	case bslex.Osim:
		return p.parseUnlessStatement()
	case bslex.Dok:
		return p.parseWhileStatement()
	case bslex.Radi:
		return p.parseDoWhileStatement()
	case bslex.Za:
		return p.parseForStatement()
	case bslex.Break:
		return p.parseBreakStatement()
	case bslex.Funkcija:
		return p.parseFunctionDeclaration()
	case bslex.Vrati:
		return p.parseReturnStatement()
	case bslex.Tip:
		return p.parseTypeDefinition()
	case bslex.Model:
		return p.parseModelDefinition()
	case bslex.Paket:
		return p.parseImportStatement()
	case bslex.Try:
		return p.parseTryCatchStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	open, err := p.expect(bslex.OpenBrace, "expected '{'")
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStatement{Loc: at(open)}
	for p.current().Type != bslex.CloseBrace && !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}

	if _, err := p.expect(bslex.CloseBrace, "expected '}' to close the block"); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(bslex.Semicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) current() bslex.Token {
	return p.tokens[p.pos]
}

// consume returns the current token and moves on. The cursor stays on the
// trailing EndOfFile token once it gets there.
func (p *Parser) consume() bslex.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(t bslex.TokenType, msg string) (bslex.Token, error) {
	tok := p.current()
	if tok.Type != t {
		return tok, p.errorf(tok, "%s, found %s", msg, describe(tok))
	}
	return p.consume(), nil
}

func (p *Parser) atEOF() bool {
	return p.current().Type == bslex.EndOfFile
}

func (p *Parser) errorf(tok bslex.Token, format string, args ...interface{}) error {
	return diag.Errorf(diag.ParseError, tok.Pos, format, args...)
}

func (p *Parser) warningf(tok bslex.Token, format string, args ...interface{}) {
	if p.warn != nil {
		p.warn(diag.Warning{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...)})
	}
}

func describe(tok bslex.Token) string {
	switch tok.Type {
	case bslex.EndOfFile:
		return "end of file"
	case bslex.String:
		return fmt.Sprintf("string %q", tok.Value)
	}
	return fmt.Sprintf("'%s'", tok.Value)
}

func at(tok bslex.Token) ast.Loc {
	return ast.Loc{Pos: tok.Pos}
}
