package bslex

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Definition exposes the BosScript lexer through participle's lexer interface.
var (
	Definition lexer.Definition = &definition{}

	// JavascriptDefinition also accepts Javascript snippets.
	JavascriptDefinition lexer.Definition = &definition{js: true}
)

type definition struct {
	js bool
}

func (d *definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := New(string(src), WithFilename(filename), WithJavascript(d.js)).Tokenize()
	if err != nil {
		return nil, err
	}
	return &stream{tokens: tokens}, nil
}

func (d *definition) Symbols() map[string]lexer.TokenType {
	symbols := make(map[string]lexer.TokenType, len(typeNames))
	for t, name := range typeNames {
		symbols[name] = ParticipleType(TokenType(t))
	}
	symbols["EOF"] = lexer.EOF
	return symbols
}

// ParticipleType maps a token kind onto participle's token type space.
func ParticipleType(t TokenType) lexer.TokenType {
	if t == EndOfFile {
		return lexer.EOF
	}
	return lexer.TokenType(t)
}

type stream struct {
	tokens []Token
	pos    int
}

func (s *stream) Next() (lexer.Token, error) {
	if s.pos >= len(s.tokens) {
		last := s.tokens[len(s.tokens)-1]
		return lexer.EOFToken(last.Pos), nil
	}
	t := s.tokens[s.pos]
	s.pos++
	return lexer.Token{
		Type:  ParticipleType(t.Type),
		Value: t.Value,
		Pos:   t.Pos,
	}, nil
}
