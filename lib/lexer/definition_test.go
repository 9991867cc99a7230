package bslex_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

func TestDefinition_MatchesTokenize(t *testing.T) {
	input := "var x = \"a\";\nx += 2 ^ 3;"
	want := mustTokenize(t, input, false)

	lex, err := bslex.Definition.Lex("test.boss", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	got, err := lexer.ConsumeAll(lex)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Type != bslex.ParticipleType(want[i].Type) || got[i].Value != want[i].Value {
			t.Errorf("token %d: got %d %q, want %s %q", i, got[i].Type, got[i].Value, want[i].Type, want[i].Value)
		}
		if got[i].Pos.Line != want[i].Pos.Line || got[i].Pos.Column != want[i].Pos.Column {
			t.Errorf("token %d: got %d:%d, want %d:%d", i, got[i].Pos.Line, got[i].Pos.Column, want[i].Pos.Line, want[i].Pos.Column)
		}
		if got[i].Pos.Filename != "test.boss" {
			t.Errorf("token %d: filename %q", i, got[i].Pos.Filename)
		}
	}
	if !got[len(got)-1].EOF() {
		t.Errorf("last token is not EOF: %v", got[len(got)-1])
	}
}

func TestDefinition_Symbols(t *testing.T) {
	symbols := bslex.Definition.Symbols()
	if symbols["EOF"] != lexer.EOF {
		t.Errorf("EOF symbol = %d, want %d", symbols["EOF"], lexer.EOF)
	}
	if symbols["Funkcija"] != bslex.ParticipleType(bslex.Funkcija) {
		t.Errorf("Funkcija symbol = %d", symbols["Funkcija"])
	}
	if symbols["EndOfFile"] != lexer.EOF {
		t.Errorf("EndOfFile symbol = %d, want EOF", symbols["EndOfFile"])
	}
}

func TestDefinition_LexicalError(t *testing.T) {
	if _, err := bslex.Definition.Lex("", strings.NewReader("`js`")); err == nil {
		t.Error("Definition accepted a Javascript snippet")
	}
	if _, err := bslex.JavascriptDefinition.Lex("", strings.NewReader("`js`")); err != nil {
		t.Errorf("JavascriptDefinition rejected a snippet: %v", err)
	}
}
