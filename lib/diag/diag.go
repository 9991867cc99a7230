// Package diag holds the positioned failures and warnings produced while
// lexing and parsing BosScript sources.
package diag

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

type Kind int

const (
	LexicalError Kind = iota
	ParseError
)

func (k Kind) String() string {
	switch k {
	case LexicalError:
		return "Lexical error"
	case ParseError:
		return "Parse error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is an unrecoverable lexing or parsing failure.
type Error struct {
	Kind Kind
	Pos  lexer.Position
	Msg  string
}

func Errorf(kind Kind, pos lexer.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, location(e.Pos), e.Msg)
}

// Warning is a non-fatal finding, parsing continues past it.
type Warning struct {
	Pos lexer.Position
	Msg string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", location(w.Pos), w.Msg)
}

func location(pos lexer.Position) string {
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
}
