package bslex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/arminrejzovic/bosscript/lib/diag"
)

var numberPattern = regexp.MustCompile(`^-?(0|[1-9](_?[0-9])*)(\.[0-9](_?[0-9])*)?([eE][-+]?[0-9]+)?$`)

type Option func(*Lexer)

// WithJavascript allows backtick delimited Javascript snippets.
func WithJavascript(allow bool) Option {
	return func(l *Lexer) {
		l.js = allow
	}
}

func WithFilename(name string) Option {
	return func(l *Lexer) {
		l.filename = name
	}
}

type Lexer struct {
	src      []rune
	filename string
	js       bool

	cursor int
	offset int
	line   int
	col    int
	tokens []Token
}

func New(src string, opts ...Option) *Lexer {
	l := &Lexer{src: []rune(src)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans src into tokens terminated by an EndOfFile token.
func Tokenize(src string, js bool) ([]Token, error) {
	return New(src, WithJavascript(js)).Tokenize()
}

func (l *Lexer) Tokenize() ([]Token, error) {
	l.cursor, l.offset, l.line, l.col = 0, 0, 1, 1
	l.tokens = nil

	for l.cursor < len(l.src) {
		if err := l.scan(); err != nil {
			return nil, err
		}
	}

	l.tokens = append(l.tokens, Token{Type: EndOfFile, Value: "EOF", Pos: l.pos()})
	return l.tokens, nil
}

func (l *Lexer) scan() error {
	r := l.src[l.cursor]

	switch r {
	case ' ', '\t', '\r', '\n':
		l.advance()
	case '(':
		l.emit(OpenParen, 1)
	case ')':
		l.emit(CloseParen, 1)
	case '[':
		l.emit(OpenBracket, 1)
	case ']':
		l.emit(CloseBracket, 1)
	case '{':
		l.emit(OpenBrace, 1)
	case '}':
		l.emit(CloseBrace, 1)
	case ',':
		l.emit(Comma, 1)
	case '.':
		l.emit(Dot, 1)
	case ':':
		l.emit(Colon, 1)
	case ';':
		l.emit(Semicolon, 1)
	case '^':
		l.emit(Exponent, 1)
	case '@':
		l.emit(This, 1)
	case '&', '|':
		if l.peek(1) != r {
			return l.errorf(l.pos(), "unexpected character '%c', did you mean '%c%c'?", r, r, r)
		}
		if r == '&' {
			l.emit(LogicalAnd, 2)
		} else {
			l.emit(LogicalOr, 2)
		}
	case '+', '-', '*', '/', '%':
		next := l.peek(1)
		switch {
		case next == '=':
			l.emit(ComplexAssign, 2)
		case r == '+' && next == '+':
			l.emit(UnaryIncrement, 2)
		case r == '-' && next == '-':
			l.emit(UnaryDecrement, 2)
		default:
			l.emit(BinaryOperator, 1)
		}
	case '=':
		switch l.peek(1) {
		case '=':
			l.emit(EqualityOperator, 2)
		case '>':
			l.emit(Arrow, 2)
		default:
			l.emit(SimpleAssign, 1)
		}
	case '!':
		if l.peek(1) == '=' {
			l.emit(EqualityOperator, 2)
		} else {
			l.emit(LogicalNot, 1)
		}
	case '<', '>':
		if l.peek(1) == '=' {
			l.emit(RelationalOperator, 2)
		} else {
			l.emit(RelationalOperator, 1)
		}
	case '"':
		l.lexString()
	case '`':
		return l.lexJavascript()
	default:
		switch {
		case isDigit(r):
			return l.lexNumber()
		case isIdentStart(r):
			l.lexIdentifier()
		default:
			return l.errorf(l.pos(), "unexpected character '%c'", r)
		}
	}
	return nil
}

func (l *Lexer) lexString() {
	l.emit(DoubleQuote, 1)

	pos := l.pos()
	var sb strings.Builder
	for l.cursor < len(l.src) && l.src[l.cursor] != '"' {
		if l.src[l.cursor] == '\\' && l.cursor+1 < len(l.src) {
			l.advance()
			switch l.advance() {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			}
			continue
		}
		sb.WriteRune(l.advance())
	}
	l.tokens = append(l.tokens, Token{Type: String, Value: sb.String(), Pos: pos})

	// unterminated strings run to the end of input without a closing quote
	if l.cursor < len(l.src) {
		l.emit(DoubleQuote, 1)
	}
}

func (l *Lexer) lexNumber() error {
	pos := l.pos()
	start := l.cursor
	end := start
	for end < len(l.src) && (isDigit(l.src[end]) || l.src[end] == '_' || l.src[end] == '.') {
		end++
	}
	if end < len(l.src) && (l.src[end] == 'e' || l.src[end] == 'E') {
		exp := end + 1
		if exp < len(l.src) && (l.src[exp] == '+' || l.src[exp] == '-') {
			exp++
		}
		if exp < len(l.src) && isDigit(l.src[exp]) {
			end = exp
			for end < len(l.src) && isDigit(l.src[end]) {
				end++
			}
		}
	}

	text := string(l.src[start:end])
	if !numberPattern.MatchString(text) {
		return l.errorf(pos, "invalid number '%s'", text)
	}
	for l.cursor < end {
		l.advance()
	}
	l.tokens = append(l.tokens, Token{Type: Number, Value: strings.ReplaceAll(text, "_", ""), Pos: pos})
	return nil
}

func (l *Lexer) lexIdentifier() {
	pos := l.pos()
	start := l.cursor
	l.advance()
	for l.cursor < len(l.src) && isIdentPart(l.src[l.cursor]) {
		l.advance()
	}
	ident := string(l.src[start:l.cursor])
	l.tokens = append(l.tokens, Token{Type: LookupIdent(ident), Value: ident, Pos: pos})
}

func (l *Lexer) lexJavascript() error {
	pos := l.pos()
	if !l.js {
		return l.errorf(pos, "javascript snippets are not allowed here")
	}

	l.advance() // `
	start := l.cursor
	for l.cursor < len(l.src) && l.src[l.cursor] != '`' {
		l.advance()
	}
	if l.cursor >= len(l.src) {
		return l.errorf(pos, "missing closing backtick")
	}
	snippet := string(l.src[start:l.cursor])
	l.advance()

	l.tokens = append(l.tokens, Token{Type: Javascript, Value: snippet, Pos: pos})
	return nil
}

func (l *Lexer) emit(t TokenType, width int) {
	pos := l.pos()
	value := string(l.src[l.cursor : l.cursor+width])
	for i := 0; i < width; i++ {
		l.advance()
	}
	l.tokens = append(l.tokens, Token{Type: t, Value: value, Pos: pos})
}

func (l *Lexer) advance() rune {
	r := l.src[l.cursor]
	l.cursor++
	l.offset += utf8.RuneLen(r)
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) peek(n int) rune {
	if l.cursor+n < len(l.src) {
		return l.src[l.cursor+n]
	}
	return 0
}

func (l *Lexer) pos() lexer.Position {
	return lexer.Position{Filename: l.filename, Offset: l.offset, Line: l.line, Column: l.col}
}

func (l *Lexer) errorf(pos lexer.Position, format string, args ...interface{}) error {
	return diag.Errorf(diag.LexicalError, pos, format, args...)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '$' || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
