package ast

// ThisSymbol is the Identifier symbol of the implicit receiver `@`.
const ThisSymbol = "@"

type Identifier struct {
	Loc
	Symbol string
}

func (i *Identifier) IsThis() bool { return i.Symbol == ThisSymbol }

type AssignmentExpression struct {
	Loc
	Assignee Expression
	Value    Expression
	Operator string
}

// IsAssignable reports whether e may appear on the left of an assignment.
func IsAssignable(e Expression) bool {
	switch e.(type) {
	case *Identifier, *MemberExpression:
		return true
	}
	return false
}

// MemberExpression is `object.property` or, when Computed, `object[property]`.
type MemberExpression struct {
	Loc
	Object   Expression
	Property Expression
	Computed bool
}

type LogicalExpression struct {
	Loc
	Left     Expression
	Right    Expression
	Operator string
}

type BinaryExpression struct {
	Loc
	Left     Expression
	Right    Expression
	Operator string
}

type UnaryExpression struct {
	Loc
	Operator string
	Operand  Expression
}

type CallExpression struct {
	Loc
	Callee    Expression
	Arguments []Expression
}

type NumericLiteral struct {
	Loc
	Value float64
}

type StringLiteral struct {
	Loc
	Value string
}

type BooleanLiteral struct {
	Loc
	Value bool
}

type NullLiteral struct {
	Loc
}

type ObjectLiteral struct {
	Loc
	Properties []*ObjectProperty
}

type ObjectProperty struct {
	Loc
	Key   string
	Value Expression
}

type ArrayLiteral struct {
	Loc
	Elements []Expression
}

type FunctionExpression struct {
	Loc
	Params     []*FunctionParameter
	ReturnType *TypeAnnotation
	Body       *BlockStatement
}

type JavascriptSnippet struct {
	Loc
	Code string
}

func (*Identifier) Kind() NodeKind           { return IdentifierKind }
func (*AssignmentExpression) Kind() NodeKind { return AssignmentExpressionKind }
func (*MemberExpression) Kind() NodeKind     { return MemberExpressionKind }
func (*LogicalExpression) Kind() NodeKind    { return LogicalExpressionKind }
func (*BinaryExpression) Kind() NodeKind     { return BinaryExpressionKind }
func (*UnaryExpression) Kind() NodeKind      { return UnaryExpressionKind }
func (*CallExpression) Kind() NodeKind       { return CallExpressionKind }
func (*NumericLiteral) Kind() NodeKind       { return NumericLiteralKind }
func (*StringLiteral) Kind() NodeKind        { return StringLiteralKind }
func (*BooleanLiteral) Kind() NodeKind       { return BooleanLiteralKind }
func (*NullLiteral) Kind() NodeKind          { return NullLiteralKind }
func (*ObjectLiteral) Kind() NodeKind        { return ObjectLiteralKind }
func (*ObjectProperty) Kind() NodeKind       { return ObjectPropertyKind }
func (*ArrayLiteral) Kind() NodeKind         { return ArrayLiteralKind }
func (*FunctionExpression) Kind() NodeKind   { return FunctionExpressionKind }
func (*JavascriptSnippet) Kind() NodeKind    { return JavascriptSnippetKind }

func (*Identifier) statementNode()           {}
func (*AssignmentExpression) statementNode() {}
func (*MemberExpression) statementNode()     {}
func (*LogicalExpression) statementNode()    {}
func (*BinaryExpression) statementNode()     {}
func (*UnaryExpression) statementNode()      {}
func (*CallExpression) statementNode()       {}
func (*NumericLiteral) statementNode()       {}
func (*StringLiteral) statementNode()        {}
func (*BooleanLiteral) statementNode()       {}
func (*NullLiteral) statementNode()          {}
func (*ObjectLiteral) statementNode()        {}
func (*ArrayLiteral) statementNode()         {}
func (*FunctionExpression) statementNode()   {}
func (*JavascriptSnippet) statementNode()    {}

func (*Identifier) expressionNode()           {}
func (*AssignmentExpression) expressionNode() {}
func (*MemberExpression) expressionNode()     {}
func (*LogicalExpression) expressionNode()    {}
func (*BinaryExpression) expressionNode()     {}
func (*UnaryExpression) expressionNode()      {}
func (*CallExpression) expressionNode()       {}
func (*NumericLiteral) expressionNode()       {}
func (*StringLiteral) expressionNode()        {}
func (*BooleanLiteral) expressionNode()       {}
func (*NullLiteral) expressionNode()          {}
func (*ObjectLiteral) expressionNode()        {}
func (*ArrayLiteral) expressionNode()         {}
func (*FunctionExpression) expressionNode()   {}
func (*JavascriptSnippet) expressionNode()    {}
