package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree depth-first in source order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStatements(v, n.Body)
	case *BlockStatement:
		walkStatements(v, n.Body)
	case *EmptyStatement, *BreakStatement, *TypeAnnotation:
	case *VariableStatement:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *VariableDeclaration:
		walkExpression(v, n.Value)
	case *IfStatement:
		walkExpression(v, n.Condition)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *UnlessStatement:
		walkExpression(v, n.Condition)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *WhileStatement:
		walkExpression(v, n.Condition)
		Walk(v, n.Body)
	case *DoWhileStatement:
		Walk(v, n.Body)
		walkExpression(v, n.Condition)
	case *ForStatement:
		Walk(v, n.Counter)
		walkExpression(v, n.Start)
		walkExpression(v, n.End)
		walkExpression(v, n.Step)
		Walk(v, n.Body)
	case *FunctionDeclaration:
		Walk(v, n.Name)
		walkFunction(v, n.Params, n.ReturnType, n.Body)
	case *FunctionExpression:
		walkFunction(v, n.Params, n.ReturnType, n.Body)
	case *FunctionParameter:
		Walk(v, n.Identifier)
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *ReturnStatement:
		walkExpression(v, n.Argument)
	case *TypeDefinitionStatement:
		Walk(v, n.Name)
		if n.Parent != nil {
			Walk(v, n.Parent)
		}
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *TypeProperty:
		Walk(v, n.Type)
	case *ModelDefinitionStatement:
		Walk(v, n.Name)
		if n.Parent != nil {
			Walk(v, n.Parent)
		}
		Walk(v, n.Constructor)
		if n.Private != nil {
			Walk(v, n.Private)
		}
		if n.Public != nil {
			Walk(v, n.Public)
		}
	case *ModelBlock:
		walkStatements(v, n.Body)
	case *ImportStatement:
		for _, id := range n.Imports {
			Walk(v, id)
		}
	case *TryCatchStatement:
		Walk(v, n.Try)
		Walk(v, n.Catch)
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *Identifier, *NumericLiteral, *StringLiteral, *BooleanLiteral, *NullLiteral, *JavascriptSnippet:
	case *AssignmentExpression:
		walkExpression(v, n.Assignee)
		walkExpression(v, n.Value)
	case *MemberExpression:
		walkExpression(v, n.Object)
		walkExpression(v, n.Property)
	case *LogicalExpression:
		walkExpression(v, n.Left)
		walkExpression(v, n.Right)
	case *BinaryExpression:
		walkExpression(v, n.Left)
		walkExpression(v, n.Right)
	case *UnaryExpression:
		walkExpression(v, n.Operand)
	case *CallExpression:
		walkExpression(v, n.Callee)
		for _, a := range n.Arguments {
			walkExpression(v, a)
		}
	case *ObjectLiteral:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *ObjectProperty:
		walkExpression(v, n.Value)
	case *ArrayLiteral:
		for _, e := range n.Elements {
			walkExpression(v, e)
		}
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkStatements(v Visitor, list []Statement) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkExpression(v Visitor, e Expression) {
	if e != nil {
		Walk(v, e)
	}
}

func walkFunction(v Visitor, params []*FunctionParameter, ret *TypeAnnotation, body *BlockStatement) {
	for _, p := range params {
		Walk(v, p)
	}
	if ret != nil {
		Walk(v, ret)
	}
	Walk(v, body)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in pre-order. Children are skipped when f
// returns false. After the children of a node, f(nil) is called.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
