// Package ast defines the syntax tree produced by the BosScript parser.
//
// Node families are closed: every concrete node reports its NodeKind, and code
// that dispatches on nodes switches on the concrete type or on Kind.
package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

type Node interface {
	Kind() NodeKind
	Position() lexer.Position
}

type Statement interface {
	Node
	statementNode()
}

// Expression nodes are statements too, an expression statement is the
// expression itself.
type Expression interface {
	Statement
	expressionNode()
}

// Loc records where a node starts.
type Loc struct {
	Pos lexer.Position
}

func (l Loc) Position() lexer.Position { return l.Pos }

type NodeKind int

const (
	ProgramKind NodeKind = iota
	BlockStatementKind
	EmptyStatementKind
	BreakStatementKind
	VariableStatementKind
	VariableDeclarationKind
	IfStatementKind
	UnlessStatementKind
	WhileStatementKind
	DoWhileStatementKind
	ForStatementKind
	FunctionDeclarationKind
	ReturnStatementKind
	TypeDefinitionStatementKind
	TypePropertyKind
	TypeAnnotationKind
	FunctionParameterKind
	ModelDefinitionStatementKind
	ModelBlockKind
	ImportStatementKind
	TryCatchStatementKind

	IdentifierKind
	AssignmentExpressionKind
	MemberExpressionKind
	LogicalExpressionKind
	BinaryExpressionKind
	UnaryExpressionKind
	CallExpressionKind
	NumericLiteralKind
	StringLiteralKind
	BooleanLiteralKind
	NullLiteralKind
	ObjectLiteralKind
	ObjectPropertyKind
	ArrayLiteralKind
	FunctionExpressionKind
	JavascriptSnippetKind
)

var kindNames = [...]string{
	ProgramKind:                  "Program",
	BlockStatementKind:           "BlockStatement",
	EmptyStatementKind:           "EmptyStatement",
	BreakStatementKind:           "BreakStatement",
	VariableStatementKind:        "VariableStatement",
	VariableDeclarationKind:      "VariableDeclaration",
	IfStatementKind:              "IfStatement",
	UnlessStatementKind:          "UnlessStatement",
	WhileStatementKind:           "WhileStatement",
	DoWhileStatementKind:         "DoWhileStatement",
	ForStatementKind:             "ForStatement",
	FunctionDeclarationKind:      "FunctionDeclaration",
	ReturnStatementKind:          "ReturnStatement",
	TypeDefinitionStatementKind:  "TypeDefinitionStatement",
	TypePropertyKind:             "TypeProperty",
	TypeAnnotationKind:           "TypeAnnotation",
	FunctionParameterKind:        "FunctionParameter",
	ModelDefinitionStatementKind: "ModelDefinitionStatement",
	ModelBlockKind:               "ModelBlock",
	ImportStatementKind:          "ImportStatement",
	TryCatchStatementKind:        "TryCatchStatement",
	IdentifierKind:               "Identifier",
	AssignmentExpressionKind:     "AssignmentExpression",
	MemberExpressionKind:         "MemberExpression",
	LogicalExpressionKind:        "LogicalExpression",
	BinaryExpressionKind:         "BinaryExpression",
	UnaryExpressionKind:          "UnaryExpression",
	CallExpressionKind:           "CallExpression",
	NumericLiteralKind:           "NumericLiteral",
	StringLiteralKind:            "StringLiteral",
	BooleanLiteralKind:           "BooleanLiteral",
	NullLiteralKind:              "NullLiteral",
	ObjectLiteralKind:            "ObjectLiteral",
	ObjectPropertyKind:           "ObjectProperty",
	ArrayLiteralKind:             "ArrayLiteral",
	FunctionExpressionKind:       "FunctionExpression",
	JavascriptSnippetKind:        "JavascriptSnippet",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
