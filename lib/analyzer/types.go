package analyzer

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
)

type Type interface {
	Name() string
	Equals(Type) bool
}

// BuiltinType is one of the language's primitive types.
type BuiltinType struct {
	BName string
}

func (t BuiltinType) Name() string {
	return t.BName
}

func (t BuiltinType) Equals(other Type) bool {
	if other, ok := other.(BuiltinType); ok {
		return t.BName == other.BName
	}
	return false
}

func (t BuiltinType) MarshalText() ([]byte, error) {
	return []byte(t.Name()), nil
}

type ArrayType struct {
	Elem Type
}

func (t ArrayType) Name() string {
	return t.Elem.Name() + "[]"
}

func (t ArrayType) Equals(other Type) bool {
	if other, ok := other.(ArrayType); ok {
		return t.Elem.Equals(other.Elem)
	}
	return false
}

func (t ArrayType) MarshalText() ([]byte, error) {
	return []byte(t.Name()), nil
}

// CustomType names a `tip` or `model`.
type CustomType struct {
	CName string
}

func (t CustomType) Name() string {
	return t.CName
}

func (t CustomType) Equals(other Type) bool {
	if other, ok := other.(CustomType); ok {
		return t.CName == other.CName
	}
	return false
}

func (t CustomType) MarshalText() ([]byte, error) {
	return []byte(t.Name()), nil
}

var (
	Number  = BuiltinType{BName: "broj"}
	Text    = BuiltinType{BName: "tekst"}
	Boolean = BuiltinType{BName: "logicki"}
)

var builtins = map[string]Type{
	"broj":    Number,
	"tekst":   Text,
	"logicki": Boolean,
	"logički": Boolean,
}

func NewArrayType(elem Type) Type {
	return ArrayType{Elem: elem}
}

func NewCustomType(name string) Type {
	return CustomType{CName: name}
}

// FromAnnotation converts a parsed annotation, nil stays nil.
func FromAnnotation(a *ast.TypeAnnotation) Type {
	if a == nil {
		return nil
	}
	base, ok := builtins[a.TypeName]
	if !ok {
		base = NewCustomType(a.TypeName)
	}
	if a.IsArray {
		return NewArrayType(base)
	}
	return base
}

// inferType guesses the type of an initializer from its literal form.
func inferType(e ast.Expression) Type {
	switch e := e.(type) {
	case *ast.NumericLiteral:
		return Number
	case *ast.StringLiteral:
		return Text
	case *ast.BooleanLiteral:
		return Boolean
	case *ast.ArrayLiteral:
		if len(e.Elements) == 0 {
			return nil
		}
		elem := inferType(e.Elements[0])
		if elem == nil {
			return nil
		}
		for _, el := range e.Elements[1:] {
			if t := inferType(el); t == nil || !t.Equals(elem) {
				return nil
			}
		}
		return NewArrayType(elem)
	}
	return nil
}

func typeName(t Type) string {
	if t == nil {
		return "?"
	}
	return t.Name()
}
