package analyzer_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/arminrejzovic/bosscript/lib/analyzer"
	"github.com/arminrejzovic/bosscript/lib/diag"
	"github.com/arminrejzovic/bosscript/lib/parser"
)

const program = `
paket "matematika" { korijen, pi };
paket "ispis";

konst verzija = "1.0";
var brojac = 0, imena = ["a", "b"];

tip Tacka {
    x: broj;
    y: broj;
}

model Osoba < Entitet {
    konstruktor(ime: tekst) {
        @ime = ime;
    }
    privatno {
        var ime;
    }
    javno {
        funkcija pozdrav(): tekst => "Zdravo " + @ime;
    }
}

funkcija udaljenost(a: Tacka, b: Tacka): broj {
    var dx = a.x - b.x;
    ako (dx < 0) {
        var negativno = tacno;
    }
    vrati korijen(dx * dx);
}

za svako (i od 0 do 3) {
    var kvadrat = i * i;
}
`

func analyze(t *testing.T, src string) *analyzer.Outline {
	t.Helper()
	prog, err := parser.ParseString(src, parser.WithWarnings(func(diag.Warning) {}))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return analyzer.Analyze(prog)
}

func TestAnalyze_Imports(t *testing.T) {
	out := analyze(t, program)
	if len(out.Imports) != 2 {
		t.Fatalf("got %d imports, want 2", len(out.Imports))
	}
	if out.Imports[0].Package != "matematika" || !reflect.DeepEqual(out.Imports[0].Names, []string{"korijen", "pi"}) {
		t.Errorf("first import = %+v", out.Imports[0])
	}
	if out.Imports[1].Package != "ispis" || len(out.Imports[1].Names) != 0 {
		t.Errorf("second import = %+v", out.Imports[1])
	}
}

func TestAnalyze_Globals(t *testing.T) {
	g := analyze(t, program).Global
	v, ok := g.LookupVariable("verzija")
	if !ok || !v.Constant || v.Type.Name() != "tekst" {
		t.Errorf("verzija = %+v, %v", v, ok)
	}
	imena, ok := g.LookupVariable("imena")
	if !ok || imena.Type == nil || imena.Type.Name() != "tekst[]" {
		t.Errorf("imena = %+v", imena)
	}
	if _, ok := g.LookupVariable("kvadrat"); ok {
		t.Error("loop variable leaked into global scope")
	}

	tacka, ok := g.LookupType("Tacka")
	if !ok || len(tacka.Fields) != 2 || !tacka.Fields[0].Type.Equals(analyzer.Number) {
		t.Errorf("Tacka = %+v", tacka)
	}

	fn, ok := g.LookupFunction("udaljenost")
	if !ok {
		t.Fatal("udaljenost not found")
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0].Type.Name() != "Tacka" || fn.ReturnType.Name() != "broj" {
		t.Errorf("udaljenost = %+v", fn)
	}
}

func TestAnalyze_Model(t *testing.T) {
	m, ok := analyze(t, program).Global.LookupModel("Osoba")
	if !ok {
		t.Fatal("Osoba not found")
	}
	if m.Parent != "Entitet" {
		t.Errorf("parent = %q", m.Parent)
	}
	if m.Constructor.Name != "konstruktor" || len(m.Constructor.Parameters) != 1 {
		t.Errorf("constructor = %+v", m.Constructor)
	}
	if len(m.Private.Properties) != 1 || m.Private.Properties[0].Name != "ime" {
		t.Errorf("private = %+v", m.Private)
	}
	if len(m.Public.Methods) != 1 || m.Public.Methods[0].ReturnType.Name() != "tekst" {
		t.Errorf("public = %+v", m.Public)
	}
}

func TestAnalyze_NestedScopes(t *testing.T) {
	out := analyze(t, program)
	fn, _ := out.Global.LookupFunction("udaljenost")

	dx, ok := fn.Scope.LookupVariable("dx")
	if !ok || dx.Type != nil {
		t.Errorf("dx = %+v, %v", dx, ok)
	}
	if _, ok := fn.Scope.LookupVariable("a"); !ok {
		t.Error("parameter a not visible in function scope")
	}
	if _, ok := fn.Scope.LookupVariable("verzija"); !ok {
		t.Error("global not visible from function scope")
	}
	if _, ok := fn.Scope.LookupVariable("negativno"); ok {
		t.Error("variable of if block visible in function scope")
	}
	if len(fn.Scope.Children) != 1 {
		t.Fatalf("function scope has %d children, want 1", len(fn.Scope.Children))
	}
	if _, ok := fn.Scope.Children[0].Variables["negativno"]; !ok {
		t.Error("negativno not declared in the if block scope")
	}
}

func TestAnalyze_Duplicates(t *testing.T) {
	out := analyze(t, `
var a = 1;
funkcija a() {}
funkcija f(x, x) {}
{ var a = 2; }
model M {
    konstruktor() {}
    privatno { var ime; }
    javno { funkcija ime() {} }
}
`)
	var names []string
	for _, d := range out.Duplicates {
		names = append(names, d.Name)
	}
	want := []string{"a", "x", "ime"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("duplicates = %v, want %v", names, want)
	}
	if d := out.Duplicates[0]; d.Pos.Line != 3 || d.Previous.Line != 2 {
		t.Errorf("duplicate a at line %d, previous %d", d.Pos.Line, d.Previous.Line)
	}
}

func TestScanSymbols(t *testing.T) {
	prog, err := parser.ParseString(program, parser.WithWarnings(func(diag.Warning) {}))
	if err != nil {
		t.Fatal(err)
	}
	symbols, imports := analyzer.ScanSymbols(prog.Body)
	want := map[string]string{
		"korijen":    "import",
		"pi":         "import",
		"verzija":    "constant",
		"brojac":     "variable",
		"imena":      "variable",
		"Tacka":      "type",
		"Osoba":      "model",
		"udaljenost": "function",
	}
	if !reflect.DeepEqual(symbols, want) {
		t.Errorf("symbols = %v, want %v", symbols, want)
	}
	if !reflect.DeepEqual(imports, []string{"matematika", "ispis"}) {
		t.Errorf("imports = %v", imports)
	}
}

func TestOutline_Fprint(t *testing.T) {
	var buf bytes.Buffer
	analyze(t, program).Fprint(&buf)
	got := buf.String()
	for _, want := range []string{
		`paket "matematika" { korijen, pi }`,
		`paket "ispis"`,
		"tip Tacka\n",
		"model Osoba < Entitet\n",
		"  konstruktor(ime: tekst)\n",
		"  privatno var ime\n",
		"  javno funkcija pozdrav(): tekst\n",
		"funkcija udaljenost(a: Tacka, b: Tacka): broj\n",
		"konst verzija: tekst\n",
		"var brojac: broj\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("outline missing %q:\n%s", want, got)
		}
	}
}

func TestFromAnnotation(t *testing.T) {
	if analyzer.FromAnnotation(nil) != nil {
		t.Error("nil annotation should give nil type")
	}
	prog, err := parser.ParseString("funkcija f(a: logički, b: Osoba[]) {}")
	if err != nil {
		t.Fatal(err)
	}
	fn := analyzer.Analyze(prog).Global.Functions["f"]
	if !fn.Parameters[0].Type.Equals(analyzer.Boolean) {
		t.Errorf("a = %s", fn.Parameters[0].Type.Name())
	}
	if !fn.Parameters[1].Type.Equals(analyzer.NewArrayType(analyzer.NewCustomType("Osoba"))) {
		t.Errorf("b = %s", fn.Parameters[1].Type.Name())
	}
}

func TestAnalyze_Javascript(t *testing.T) {
	src := "var a = `1 + 1`;\nfunkcija f() {\n    `console.log(a)`;\n}"
	prog, err := parser.ParseString(src, parser.WithJavascript(true))
	if err != nil {
		t.Fatal(err)
	}
	out := analyzer.Analyze(prog)
	if len(out.Javascript) != 2 {
		t.Fatalf("snippets = %+v", out.Javascript)
	}
	if out.Javascript[0].Code != "1 + 1" || out.Javascript[1].Code != "console.log(a)" {
		t.Errorf("snippets = %+v", out.Javascript)
	}
	if pos := out.Javascript[1].Pos; pos.Line != 3 || pos.Column != 5 {
		t.Errorf("second snippet at %d:%d, want 3:5", pos.Line, pos.Column)
	}

	var buf bytes.Buffer
	out.Fprint(&buf)
	if !strings.Contains(buf.String(), "javascript 3:5\n") {
		t.Errorf("outline:\n%s", buf.String())
	}
}
