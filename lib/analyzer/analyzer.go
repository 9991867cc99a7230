// Package analyzer builds a declaration outline of a parsed program. It
// records what every scope declares without resolving any uses.
package analyzer

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/arminrejzovic/bosscript/lib/ast"
)

type Import struct {
	Package string         `json:"package" yaml:"package"`
	Names   []string       `json:"names,omitempty" yaml:"names,omitempty"`
	Pos     lexer.Position `json:"-" yaml:"-"`
}

// Duplicate is a name declared twice in the same scope.
type Duplicate struct {
	Name     string         `json:"name" yaml:"name"`
	Pos      lexer.Position `json:"-" yaml:"-"`
	Previous lexer.Position `json:"-" yaml:"-"`
}

func (d Duplicate) String() string {
	return fmt.Sprintf("%d:%d: %s already declared at %d:%d", d.Pos.Line, d.Pos.Column, d.Name, d.Previous.Line, d.Previous.Column)
}

// Snippet is an embedded Javascript block found anywhere in the program.
type Snippet struct {
	Code string         `json:"code" yaml:"code"`
	Pos  lexer.Position `json:"-" yaml:"-"`
}

type Outline struct {
	Imports    []Import    `json:"imports,omitempty" yaml:"imports,omitempty"`
	Global     *Context    `json:"global" yaml:"global"`
	Duplicates []Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	Javascript []Snippet   `json:"javascript,omitempty" yaml:"javascript,omitempty"`
}

func Analyze(prog *ast.Program) *Outline {
	out := &Outline{Global: NewContext()}
	out.analyzeStatements(prog.Body, out.Global)
	ast.Inspect(prog, func(n ast.Node) bool {
		if js, ok := n.(*ast.JavascriptSnippet); ok {
			out.Javascript = append(out.Javascript, Snippet{Code: js.Code, Pos: js.Position()})
		}
		return true
	})
	return out
}

func (o *Outline) analyzeStatements(stmts []ast.Statement, ctx *Context) {
	for _, stmt := range stmts {
		o.analyzeStatement(stmt, ctx)
	}
}

func (o *Outline) analyzeStatement(stmt ast.Statement, ctx *Context) {
	switch s := stmt.(type) {
	case *ast.ImportStatement:
		imp := Import{Package: s.Package, Pos: s.Position()}
		for _, id := range s.Imports {
			imp.Names = append(imp.Names, id.Symbol)
		}
		o.Imports = append(o.Imports, imp)
	case *ast.VariableStatement:
		for _, v := range o.variables(s, ctx) {
			ctx.Variables[v.Name] = v
		}
	case *ast.FunctionDeclaration:
		fn := o.function(s, ctx)
		if o.declare(ctx, fn.Name, fn.Pos) {
			ctx.Functions[fn.Name] = fn
		}
	case *ast.TypeDefinitionStatement:
		def := TypeDef{Name: s.Name.Symbol, Pos: s.Position()}
		if s.Parent != nil {
			def.Parent = s.Parent.Symbol
		}
		for _, p := range s.Properties {
			def.Fields = append(def.Fields, Variable{Name: p.Name, Type: FromAnnotation(p.Type), Pos: p.Position()})
		}
		if o.declare(ctx, def.Name, def.Pos) {
			ctx.Types[def.Name] = def
		}
	case *ast.ModelDefinitionStatement:
		m := o.model(s, ctx)
		if o.declare(ctx, m.Name, m.Pos) {
			ctx.Models[m.Name] = m
		}
	case *ast.BlockStatement:
		o.analyzeStatements(s.Body, ctx.NewContext())
	case *ast.IfStatement:
		o.analyzeBranch(s.Consequent, ctx)
		if s.Alternate != nil {
			o.analyzeBranch(s.Alternate, ctx)
		}
	case *ast.UnlessStatement:
		o.analyzeBranch(s.Consequent, ctx)
		if s.Alternate != nil {
			o.analyzeBranch(s.Alternate, ctx)
		}
	case *ast.WhileStatement:
		o.analyzeStatements(s.Body.Body, ctx.NewContext())
	case *ast.DoWhileStatement:
		o.analyzeStatements(s.Body.Body, ctx.NewContext())
	case *ast.ForStatement:
		scope := ctx.NewContext()
		o.declare(scope, s.Counter.Symbol, s.Counter.Position())
		scope.Variables[s.Counter.Symbol] = Variable{Name: s.Counter.Symbol, Type: Number, Pos: s.Counter.Position()}
		o.analyzeStatements(s.Body.Body, scope)
	case *ast.TryCatchStatement:
		o.analyzeStatements(s.Try.Body, ctx.NewContext())
		o.analyzeStatements(s.Catch.Body, ctx.NewContext())
		if s.Finally != nil {
			o.analyzeStatements(s.Finally.Body, ctx.NewContext())
		}
	}
}

// analyzeBranch gives a non-block branch its own scope too, so
// `ako (x) var y;` does not leak y.
func (o *Outline) analyzeBranch(stmt ast.Statement, ctx *Context) {
	if block, ok := stmt.(*ast.BlockStatement); ok {
		o.analyzeStatements(block.Body, ctx.NewContext())
		return
	}
	if _, ok := stmt.(*ast.IfStatement); ok {
		o.analyzeStatement(stmt, ctx)
		return
	}
	o.analyzeStatement(stmt, ctx.NewContext())
}

func (o *Outline) variables(s *ast.VariableStatement, ctx *Context) []Variable {
	var vars []Variable
	for _, d := range s.Declarations {
		v := Variable{Name: d.Name, Constant: s.Constant, Pos: d.Position()}
		if d.Value != nil {
			v.Type = inferType(d.Value)
		}
		if o.declare(ctx, v.Name, v.Pos) {
			vars = append(vars, v)
		}
	}
	return vars
}

// function opens the function's scope, declares its parameters there and
// outlines the body in the same scope.
func (o *Outline) function(s *ast.FunctionDeclaration, ctx *Context) Function {
	fn := Function{
		Name:       s.Name.Symbol,
		ReturnType: FromAnnotation(s.ReturnType),
		Scope:      ctx.NewContext(),
		Pos:        s.Position(),
	}
	for _, p := range s.Params {
		param := Variable{Name: p.Identifier.Symbol, Type: FromAnnotation(p.Type), Pos: p.Position()}
		fn.Parameters = append(fn.Parameters, param)
		if o.declare(fn.Scope, param.Name, param.Pos) {
			fn.Scope.Variables[param.Name] = param
		}
	}
	o.analyzeStatements(s.Body.Body, fn.Scope)
	return fn
}

func (o *Outline) model(s *ast.ModelDefinitionStatement, ctx *Context) Model {
	m := Model{Name: s.Name.Symbol, Scope: ctx.NewContext(), Pos: s.Position()}
	if s.Parent != nil {
		m.Parent = s.Parent.Symbol
	}
	m.Constructor = o.function(s.Constructor, m.Scope)
	if s.Private != nil {
		m.Private = o.members(s.Private, m.Scope)
	}
	if s.Public != nil {
		m.Public = o.members(s.Public, m.Scope)
	}
	return m
}

// members outlines a model block. Private and public members share the
// model scope, so a name used in both is a duplicate.
func (o *Outline) members(block *ast.ModelBlock, scope *Context) Members {
	var ms Members
	for _, stmt := range block.Body {
		switch s := stmt.(type) {
		case *ast.VariableStatement:
			ms.Properties = append(ms.Properties, o.variables(s, scope)...)
		case *ast.FunctionDeclaration:
			fn := o.function(s, scope)
			if o.declare(scope, fn.Name, fn.Pos) {
				ms.Methods = append(ms.Methods, fn)
			}
		}
	}
	return ms
}

func (o *Outline) declare(ctx *Context, name string, pos lexer.Position) bool {
	prev, ok := ctx.declare(name, pos)
	if !ok {
		o.Duplicates = append(o.Duplicates, Duplicate{Name: name, Pos: pos, Previous: prev})
	}
	return ok
}
