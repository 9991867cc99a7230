package ast

import "fmt"

type Program struct {
	Loc
	Body []Statement
}

type BlockStatement struct {
	Loc
	Body []Statement
}

type EmptyStatement struct {
	Loc
}

type BreakStatement struct {
	Loc
}

// VariableStatement is a `var` or `konst` declaration list.
type VariableStatement struct {
	Loc
	Declarations []*VariableDeclaration
	Constant     bool
}

type VariableDeclaration struct {
	Loc
	Name  string
	Value Expression // nil without an initializer
}

// IfStatement covers `ako`. Alternate is nil, another *IfStatement for an
// `ili` chain, or any statement after `inace`.
type IfStatement struct {
	Loc
	Condition  Expression
	Consequent Statement
	Alternate  Statement
}

type UnlessStatement struct {
	Loc
	Condition  Expression
	Consequent Statement
	Alternate  Statement
}

type WhileStatement struct {
	Loc
	Condition Expression
	Body      *BlockStatement
}

type DoWhileStatement struct {
	Loc
	Condition Expression
	Body      *BlockStatement
}

// ForStatement is `za svako (i od start do end korak step)`.
type ForStatement struct {
	Loc
	Counter *Identifier
	Start   Expression
	End     Expression
	Step    Expression
	Body    *BlockStatement
}

type FunctionDeclaration struct {
	Loc
	Name       *Identifier
	Params     []*FunctionParameter
	ReturnType *TypeAnnotation
	Body       *BlockStatement
}

type FunctionParameter struct {
	Loc
	Identifier *Identifier
	Type       *TypeAnnotation
}

type TypeAnnotation struct {
	Loc
	TypeName string
	IsArray  bool
}

func (t *TypeAnnotation) String() string {
	if t.IsArray {
		return t.TypeName + "[]"
	}
	return t.TypeName
}

// ReturnStatement has a nil Argument for `vrati se`.
type ReturnStatement struct {
	Loc
	Argument Expression
}

type TypeDefinitionStatement struct {
	Loc
	Name       *Identifier
	Parent     *Identifier
	Properties []*TypeProperty
}

type TypeProperty struct {
	Loc
	Name string
	Type *TypeAnnotation
}

type ModelDefinitionStatement struct {
	Loc
	Name        *Identifier
	Parent      *Identifier
	Constructor *FunctionDeclaration
	Private     *ModelBlock
	Public      *ModelBlock
}

// ModelBlock holds the members of a `privatno` or `javno` section. Members are
// added through Add so only variable statements and function declarations
// ever get in.
type ModelBlock struct {
	Loc
	Body []Statement
}

func (b *ModelBlock) Add(stmt Statement) error {
	switch stmt.(type) {
	case *VariableStatement, *FunctionDeclaration:
		b.Body = append(b.Body, stmt)
		return nil
	}
	return fmt.Errorf("model members must be variables or functions, found %s", stmt.Kind())
}

// ImportStatement imports the whole package when Imports is empty.
type ImportStatement struct {
	Loc
	Package string
	Imports []*Identifier
}

type TryCatchStatement struct {
	Loc
	Try     *BlockStatement
	Catch   *BlockStatement
	Finally *BlockStatement
}

func (*Program) Kind() NodeKind                  { return ProgramKind }
func (*BlockStatement) Kind() NodeKind           { return BlockStatementKind }
func (*EmptyStatement) Kind() NodeKind           { return EmptyStatementKind }
func (*BreakStatement) Kind() NodeKind           { return BreakStatementKind }
func (*VariableStatement) Kind() NodeKind        { return VariableStatementKind }
func (*VariableDeclaration) Kind() NodeKind      { return VariableDeclarationKind }
func (*IfStatement) Kind() NodeKind              { return IfStatementKind }
func (*UnlessStatement) Kind() NodeKind          { return UnlessStatementKind }
func (*WhileStatement) Kind() NodeKind           { return WhileStatementKind }
func (*DoWhileStatement) Kind() NodeKind         { return DoWhileStatementKind }
func (*ForStatement) Kind() NodeKind             { return ForStatementKind }
func (*FunctionDeclaration) Kind() NodeKind      { return FunctionDeclarationKind }
func (*FunctionParameter) Kind() NodeKind        { return FunctionParameterKind }
func (*TypeAnnotation) Kind() NodeKind           { return TypeAnnotationKind }
func (*ReturnStatement) Kind() NodeKind          { return ReturnStatementKind }
func (*TypeDefinitionStatement) Kind() NodeKind  { return TypeDefinitionStatementKind }
func (*TypeProperty) Kind() NodeKind             { return TypePropertyKind }
func (*ModelDefinitionStatement) Kind() NodeKind { return ModelDefinitionStatementKind }
func (*ModelBlock) Kind() NodeKind               { return ModelBlockKind }
func (*ImportStatement) Kind() NodeKind          { return ImportStatementKind }
func (*TryCatchStatement) Kind() NodeKind        { return TryCatchStatementKind }

func (*Program) statementNode()                  {}
func (*BlockStatement) statementNode()           {}
func (*EmptyStatement) statementNode()           {}
func (*BreakStatement) statementNode()           {}
func (*VariableStatement) statementNode()        {}
func (*VariableDeclaration) statementNode()      {}
func (*IfStatement) statementNode()              {}
func (*UnlessStatement) statementNode()          {}
func (*WhileStatement) statementNode()           {}
func (*DoWhileStatement) statementNode()         {}
func (*ForStatement) statementNode()             {}
func (*FunctionDeclaration) statementNode()      {}
func (*FunctionParameter) statementNode()        {}
func (*TypeAnnotation) statementNode()           {}
func (*ReturnStatement) statementNode()          {}
func (*TypeDefinitionStatement) statementNode()  {}
func (*TypeProperty) statementNode()             {}
func (*ModelDefinitionStatement) statementNode() {}
func (*ModelBlock) statementNode()               {}
func (*ImportStatement) statementNode()          {}
func (*TryCatchStatement) statementNode()        {}
