package ast_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/arminrejzovic/bosscript/lib/ast"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Symbol: name}
}

// zbir(a, 1 + 2)
func sampleCall() *ast.CallExpression {
	return &ast.CallExpression{
		Callee: ident("zbir"),
		Arguments: []ast.Expression{
			ident("a"),
			&ast.BinaryExpression{
				Left:     &ast.NumericLiteral{Value: 1},
				Right:    &ast.NumericLiteral{Value: 2},
				Operator: "+",
			},
		},
	}
}

func TestNodeKind_String(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{&ast.Program{}, "Program"},
		{&ast.ModelDefinitionStatement{}, "ModelDefinitionStatement"},
		{&ast.ObjectProperty{}, "ObjectProperty"},
		{&ast.JavascriptSnippet{}, "JavascriptSnippet"},
		{ident("x"), "Identifier"},
	}
	for _, tt := range tests {
		if got := tt.node.Kind().String(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.node, got, tt.want)
		}
	}
	if got := ast.NodeKind(999).String(); got != "NodeKind(999)" {
		t.Errorf("unknown kind rendered as %q", got)
	}
}

func TestIsAssignable(t *testing.T) {
	if !ast.IsAssignable(ident("x")) {
		t.Error("identifier should be assignable")
	}
	if !ast.IsAssignable(&ast.MemberExpression{Object: ident("@"), Property: ident("x")}) {
		t.Error("member expression should be assignable")
	}
	if ast.IsAssignable(&ast.NumericLiteral{Value: 5}) {
		t.Error("numeric literal should not be assignable")
	}
	if ast.IsAssignable(sampleCall()) {
		t.Error("call expression should not be assignable")
	}
}

func TestModelBlock_Add(t *testing.T) {
	block := &ast.ModelBlock{}
	if err := block.Add(&ast.VariableStatement{}); err != nil {
		t.Errorf("variable statement rejected: %v", err)
	}
	if err := block.Add(&ast.FunctionDeclaration{Name: ident("f")}); err != nil {
		t.Errorf("function declaration rejected: %v", err)
	}
	if err := block.Add(sampleCall()); err == nil {
		t.Error("call expression accepted as model member")
	}
	if err := block.Add(&ast.IfStatement{}); err == nil {
		t.Error("if statement accepted as model member")
	}
	if len(block.Body) != 2 {
		t.Errorf("block has %d members, want 2", len(block.Body))
	}
}

func TestInspect_Order(t *testing.T) {
	var kinds []string
	ast.Inspect(sampleCall(), func(n ast.Node) bool {
		if n != nil {
			kinds = append(kinds, n.Kind().String())
		}
		return true
	})

	want := []string{"CallExpression", "Identifier", "Identifier", "BinaryExpression", "NumericLiteral", "NumericLiteral"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("visit order = %v, want %v", kinds, want)
	}
}

func TestInspect_SkipChildren(t *testing.T) {
	count := 0
	ast.Inspect(sampleCall(), func(n ast.Node) bool {
		if n == nil {
			return false
		}
		count++
		return n.Kind() != ast.BinaryExpressionKind
	})
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}

func TestWalk_OptionalChildren(t *testing.T) {
	prog := &ast.Program{Body: []ast.Statement{
		&ast.IfStatement{Condition: ident("x"), Consequent: &ast.EmptyStatement{}},
		&ast.ReturnStatement{},
		&ast.VariableStatement{Declarations: []*ast.VariableDeclaration{{Name: "y"}}},
		&ast.ModelDefinitionStatement{
			Name:        ident("Osoba"),
			Constructor: &ast.FunctionDeclaration{Name: ident("konstruktor"), Body: &ast.BlockStatement{}},
		},
		&ast.TryCatchStatement{Try: &ast.BlockStatement{}, Catch: &ast.BlockStatement{}},
	}}

	count := 0
	ast.Inspect(prog, func(n ast.Node) bool {
		if n != nil {
			count++
		}
		return true
	})
	// program, if, x, empty, return, var, decl, model, Osoba, ctor, konstruktor, body, try, block, block
	if count != 15 {
		t.Errorf("visited %d nodes, want 15", count)
	}
}

func TestDump(t *testing.T) {
	stmt := &ast.AssignmentExpression{
		Loc:      ast.Loc{Pos: lexer.Position{Line: 3, Column: 7}},
		Assignee: &ast.MemberExpression{Object: ident("@"), Property: ident("ime"), Computed: false},
		Value:    &ast.StringLiteral{Value: "Ana"},
		Operator: "=",
	}

	got, err := json.Marshal(ast.Dump(stmt, false))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"assignee":{"computed":false,"kind":"MemberExpression","object":{"kind":"Identifier","symbol":"@"},"property":{"kind":"Identifier","symbol":"ime"}},"kind":"AssignmentExpression","operator":"=","value":{"kind":"StringLiteral","value":"Ana"}}`
	if string(got) != want {
		t.Errorf("Dump =\n%s\nwant\n%s", got, want)
	}

	withPos := ast.Dump(stmt, true).(map[string]any)
	if withPos["line"] != 3 || withPos["column"] != 7 {
		t.Errorf("position = %v:%v, want 3:7", withPos["line"], withPos["column"])
	}
}

func TestDump_NilAndEmpty(t *testing.T) {
	ret := ast.Dump(&ast.ReturnStatement{}, false).(map[string]any)
	if ret["argument"] != nil {
		t.Errorf("argument = %v, want nil", ret["argument"])
	}

	imp := ast.Dump(&ast.ImportStatement{Package: "x"}, false).(map[string]any)
	imports, ok := imp["imports"].([]any)
	if !ok || len(imports) != 0 {
		t.Errorf("imports = %#v, want empty list", imp["imports"])
	}
}
