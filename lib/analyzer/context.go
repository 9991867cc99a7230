package analyzer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Context is one lexical scope. Blocks, functions and models each open a
// child of the scope they appear in.
type Context struct {
	Parent    *Context            `json:"-" yaml:"-"`
	Children  []*Context          `json:"children,omitempty" yaml:"children,omitempty"`
	Variables map[string]Variable `json:"variables,omitempty" yaml:"variables,omitempty"`
	Functions map[string]Function `json:"functions,omitempty" yaml:"functions,omitempty"`
	Types     map[string]TypeDef  `json:"types,omitempty" yaml:"types,omitempty"`
	Models    map[string]Model    `json:"models,omitempty" yaml:"models,omitempty"`

	names map[string]lexer.Position
}

type Variable struct {
	Name     string         `json:"name" yaml:"name"`
	Type     Type           `json:"type,omitempty" yaml:"type,omitempty"`
	Constant bool           `json:"constant,omitempty" yaml:"constant,omitempty"`
	Pos      lexer.Position `json:"-" yaml:"-"`
}

type Function struct {
	Name       string         `json:"name" yaml:"name"`
	Parameters []Variable     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ReturnType Type           `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Scope      *Context       `json:"-" yaml:"-"`
	Pos        lexer.Position `json:"-" yaml:"-"`
}

type TypeDef struct {
	Name   string         `json:"name" yaml:"name"`
	Parent string         `json:"parent,omitempty" yaml:"parent,omitempty"`
	Fields []Variable     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Pos    lexer.Position `json:"-" yaml:"-"`
}

type Model struct {
	Name        string         `json:"name" yaml:"name"`
	Parent      string         `json:"parent,omitempty" yaml:"parent,omitempty"`
	Constructor Function       `json:"constructor" yaml:"constructor"`
	Private     Members        `json:"private" yaml:"private"`
	Public      Members        `json:"public" yaml:"public"`
	Scope       *Context       `json:"-" yaml:"-"`
	Pos         lexer.Position `json:"-" yaml:"-"`
}

type Members struct {
	Properties []Variable `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods    []Function `json:"methods,omitempty" yaml:"methods,omitempty"`
}

func NewContext() *Context {
	return &Context{
		Parent:    nil,
		Variables: make(map[string]Variable),
		Functions: make(map[string]Function),
		Types:     make(map[string]TypeDef),
		Models:    make(map[string]Model),
		names:     make(map[string]lexer.Position),
	}
}

func (c *Context) NewContext() *Context {
	child := &Context{
		Parent:    c,
		Variables: make(map[string]Variable),
		Functions: make(map[string]Function),
		Types:     make(map[string]TypeDef),
		Models:    make(map[string]Model),
		names:     make(map[string]lexer.Position),
	}
	c.Children = append(c.Children, child)
	return child
}

// declare reserves name in this scope. It returns the earlier position and
// false when the name is already taken here.
func (c *Context) declare(name string, pos lexer.Position) (lexer.Position, bool) {
	if prev, ok := c.names[name]; ok {
		return prev, false
	}
	c.names[name] = pos
	return pos, true
}

func (c *Context) LookupVariable(name string) (Variable, bool) {
	if v, ok := c.Variables[name]; ok {
		return v, true
	} else if c.Parent != nil {
		return c.Parent.LookupVariable(name)
	} else {
		return Variable{}, false
	}
}

func (c *Context) LookupFunction(name string) (Function, bool) {
	if v, ok := c.Functions[name]; ok {
		return v, true
	} else if c.Parent != nil {
		return c.Parent.LookupFunction(name)
	} else {
		return Function{}, false
	}
}

func (c *Context) LookupType(name string) (TypeDef, bool) {
	if v, ok := c.Types[name]; ok {
		return v, true
	} else if c.Parent != nil {
		return c.Parent.LookupType(name)
	} else {
		return TypeDef{}, false
	}
}

func (c *Context) LookupModel(name string) (Model, bool) {
	if v, ok := c.Models[name]; ok {
		return v, true
	} else if c.Parent != nil {
		return c.Parent.LookupModel(name)
	} else {
		return Model{}, false
	}
}
