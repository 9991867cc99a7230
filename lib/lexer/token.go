package bslex

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

type TokenType int

const (
	Number TokenType = iota
	String
	Identifier

	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Comma
	Dot
	Colon
	Semicolon
	DoubleQuote

	SimpleAssign
	ComplexAssign
	Exponent
	LogicalAnd
	LogicalOr
	LogicalNot
	BinaryOperator
	RelationalOperator
	EqualityOperator
	UnaryIncrement
	UnaryDecrement
	Arrow
	This

	Var
	Konst
	Model
	Za
	Svako
	Od
	Do
	Korak
	Dok
	Radi
	Break
	Funkcija
	Vrati
	Se
	Paket
	Ako
	Ili
	Inace
	Osim
	Nedefinisano
	Tacno
	Netacno
	Tip
	Private
	Public
	Try
	Catch
	Finally
	Constructor

	EndOfFile
	Javascript
)

var typeNames = [...]string{
	Number:             "Number",
	String:             "String",
	Identifier:         "Identifier",
	OpenParen:          "OpenParen",
	CloseParen:         "CloseParen",
	OpenBracket:        "OpenBracket",
	CloseBracket:       "CloseBracket",
	OpenBrace:          "OpenBrace",
	CloseBrace:         "CloseBrace",
	Comma:              "Comma",
	Dot:                "Dot",
	Colon:              "Colon",
	Semicolon:          "Semicolon",
	DoubleQuote:        "DoubleQuote",
	SimpleAssign:       "SimpleAssign",
	ComplexAssign:      "ComplexAssign",
	Exponent:           "Exponent",
	LogicalAnd:         "LogicalAnd",
	LogicalOr:          "LogicalOr",
	LogicalNot:         "LogicalNot",
	BinaryOperator:     "BinaryOperator",
	RelationalOperator: "RelationalOperator",
	EqualityOperator:   "EqualityOperator",
	UnaryIncrement:     "UnaryIncrement",
	UnaryDecrement:     "UnaryDecrement",
	Arrow:              "Arrow",
	This:               "This",
	Var:                "Var",
	Konst:              "Konst",
	Model:              "Model",
	Za:                 "Za",
	Svako:              "Svako",
	Od:                 "Od",
	Do:                 "Do",
	Korak:              "Korak",
	Dok:                "Dok",
	Radi:               "Radi",
	Break:              "Break",
	Funkcija:           "Funkcija",
	Vrati:              "Vrati",
	Se:                 "Se",
	Paket:              "Paket",
	Ako:                "Ako",
	Ili:                "Ili",
	Inace:              "Inace",
	Osim:               "Osim",
	Nedefinisano:       "Nedefinisano",
	Tacno:              "Tacno",
	Netacno:            "Netacno",
	Tip:                "Tip",
	Private:            "Private",
	Public:             "Public",
	Try:                "Try",
	Catch:              "Catch",
	Finally:            "Finally",
	Constructor:        "Constructor",
	EndOfFile:          "EndOfFile",
	Javascript:         "Javascript",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"var":          Var,
	"konst":        Konst,
	"za":           Za,
	"svako":        Svako,
	"od":           Od,
	"do":           Do,
	"korak":        Korak,
	"dok":          Dok,
	"radi":         Radi,
	"prekid":       Break,
	"funkcija":     Funkcija,
	"vrati":        Vrati,
	"se":           Se,
	"paket":        Paket,
	"ako":          Ako,
	"ili":          Ili,
	"osim":         Osim,
	"inace":        Inace,
	"inače":        Inace,
	"nedefinisano": Nedefinisano,
	"tacno":        Tacno,
	"tačno":        Tacno,
	"netacno":      Netacno,
	"netačno":      Netacno,
	"probaj":       Try,
	"spasi":        Catch,
	"svakako":      Finally,
	"tip":          Tip,
	"model":        Model,
	"privatno":     Private,
	"javno":        Public,
	"konstruktor":  Constructor,
}

// LookupIdent returns the keyword kind for ident, or Identifier.
func LookupIdent(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Identifier
}

type Token struct {
	Type  TokenType
	Value string
	Pos   lexer.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s '%s'", t.Pos.Line, t.Pos.Column, t.Type, t.Value)
}
