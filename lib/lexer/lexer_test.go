package bslex_test

import (
	"errors"
	"testing"

	"github.com/arminrejzovic/bosscript/lib/diag"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
)

type tokenCase struct {
	typ   bslex.TokenType
	value string
}

func mustTokenize(t *testing.T, input string, js bool) []bslex.Token {
	t.Helper()
	tokens, err := bslex.Tokenize(input, js)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

func runCases(t *testing.T, input string, want []tokenCase) {
	t.Helper()
	tokens := mustTokenize(t, input, false)
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tc := range want {
		if tokens[i].Type != tc.typ {
			t.Errorf("case %d: type mismatch, got %s, want %s (value %q)", i, tokens[i].Type, tc.typ, tokens[i].Value)
		}
		if tokens[i].Value != tc.value {
			t.Errorf("case %d: value mismatch, got %q, want %q", i, tokens[i].Value, tc.value)
		}
	}
}

func lexError(t *testing.T, input string, js bool) *diag.Error {
	t.Helper()
	_, err := bslex.Tokenize(input, js)
	if err == nil {
		t.Fatalf("Tokenize(%q) succeeded, want lexical error", input)
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("Tokenize(%q) returned %T, want *diag.Error", input, err)
	}
	if de.Kind != diag.LexicalError {
		t.Fatalf("error kind = %s, want %s", de.Kind, diag.LexicalError)
	}
	return de
}

func TestLexer_Keywords(t *testing.T) {
	input := `var konst model za svako od do korak dok radi prekid funkcija vrati se paket
ako ili inace inače osim nedefinisano tacno tačno netacno netačno tip privatno javno
probaj spasi svakako konstruktor ime`

	runCases(t, input, []tokenCase{
		{bslex.Var, "var"},
		{bslex.Konst, "konst"},
		{bslex.Model, "model"},
		{bslex.Za, "za"},
		{bslex.Svako, "svako"},
		{bslex.Od, "od"},
		{bslex.Do, "do"},
		{bslex.Korak, "korak"},
		{bslex.Dok, "dok"},
		{bslex.Radi, "radi"},
		{bslex.Break, "prekid"},
		{bslex.Funkcija, "funkcija"},
		{bslex.Vrati, "vrati"},
		{bslex.Se, "se"},
		{bslex.Paket, "paket"},
		{bslex.Ako, "ako"},
		{bslex.Ili, "ili"},
		{bslex.Inace, "inace"},
		{bslex.Inace, "inače"},
		{bslex.Osim, "osim"},
		{bslex.Nedefinisano, "nedefinisano"},
		{bslex.Tacno, "tacno"},
		{bslex.Tacno, "tačno"},
		{bslex.Netacno, "netacno"},
		{bslex.Netacno, "netačno"},
		{bslex.Tip, "tip"},
		{bslex.Private, "privatno"},
		{bslex.Public, "javno"},
		{bslex.Try, "probaj"},
		{bslex.Catch, "spasi"},
		{bslex.Finally, "svakako"},
		{bslex.Constructor, "konstruktor"},
		{bslex.Identifier, "ime"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_KeywordsAreCaseSensitive(t *testing.T) {
	runCases(t, "Var AKO Tacno", []tokenCase{
		{bslex.Identifier, "Var"},
		{bslex.Identifier, "AKO"},
		{bslex.Identifier, "Tacno"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_Operators(t *testing.T) {
	input := `+ - * / % += -= *= /= %= ++ -- = == => ! != < > <= >= && || ^ @`

	runCases(t, input, []tokenCase{
		{bslex.BinaryOperator, "+"},
		{bslex.BinaryOperator, "-"},
		{bslex.BinaryOperator, "*"},
		{bslex.BinaryOperator, "/"},
		{bslex.BinaryOperator, "%"},
		{bslex.ComplexAssign, "+="},
		{bslex.ComplexAssign, "-="},
		{bslex.ComplexAssign, "*="},
		{bslex.ComplexAssign, "/="},
		{bslex.ComplexAssign, "%="},
		{bslex.UnaryIncrement, "++"},
		{bslex.UnaryDecrement, "--"},
		{bslex.SimpleAssign, "="},
		{bslex.EqualityOperator, "=="},
		{bslex.Arrow, "=>"},
		{bslex.LogicalNot, "!"},
		{bslex.EqualityOperator, "!="},
		{bslex.RelationalOperator, "<"},
		{bslex.RelationalOperator, ">"},
		{bslex.RelationalOperator, "<="},
		{bslex.RelationalOperator, ">="},
		{bslex.LogicalAnd, "&&"},
		{bslex.LogicalOr, "||"},
		{bslex.Exponent, "^"},
		{bslex.This, "@"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_OperatorsWithoutSpaces(t *testing.T) {
	runCases(t, "a+=b==c&&d<=e", []tokenCase{
		{bslex.Identifier, "a"},
		{bslex.ComplexAssign, "+="},
		{bslex.Identifier, "b"},
		{bslex.EqualityOperator, "=="},
		{bslex.Identifier, "c"},
		{bslex.LogicalAnd, "&&"},
		{bslex.Identifier, "d"},
		{bslex.RelationalOperator, "<="},
		{bslex.Identifier, "e"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_Structural(t *testing.T) {
	runCases(t, "( ) [ ] { } , . : ;", []tokenCase{
		{bslex.OpenParen, "("},
		{bslex.CloseParen, ")"},
		{bslex.OpenBracket, "["},
		{bslex.CloseBracket, "]"},
		{bslex.OpenBrace, "{"},
		{bslex.CloseBrace, "}"},
		{bslex.Comma, ","},
		{bslex.Dot, "."},
		{bslex.Colon, ":"},
		{bslex.Semicolon, ";"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_LoneAmpersandOrPipe(t *testing.T) {
	for _, input := range []string{"a & b", "a | b", "&", "a &| b"} {
		lexError(t, input, false)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"7", "7"},
		{"12_345", "12345"},
		{"3.14", "3.14"},
		{"0.5", "0.5"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
		{"2E+8", "2E+8"},
		{"1_000.000_1", "1000.0001"},
	}

	for _, tt := range tests {
		tokens := mustTokenize(t, tt.input, false)
		if len(tokens) != 2 {
			t.Errorf("%q: got %d tokens, want a single number: %v", tt.input, len(tokens)-1, tokens)
			continue
		}
		if tokens[0].Type != bslex.Number || tokens[0].Value != tt.want {
			t.Errorf("%q: got %s %q, want Number %q", tt.input, tokens[0].Type, tokens[0].Value, tt.want)
		}
	}
}

func TestLexer_InvalidNumbers(t *testing.T) {
	for _, input := range []string{"0123", "12.", "1__0", "1.2.3", "1_"} {
		lexError(t, input, false)
	}
}

func TestLexer_NegativeNumberIsTwoTokens(t *testing.T) {
	runCases(t, "-5", []tokenCase{
		{bslex.BinaryOperator, "-"},
		{bslex.Number, "5"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_NumberFollowedByIdentifier(t *testing.T) {
	runCases(t, "1em", []tokenCase{
		{bslex.Number, "1"},
		{bslex.Identifier, "em"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_Strings(t *testing.T) {
	runCases(t, `"zdravo svijete"`, []tokenCase{
		{bslex.DoubleQuote, `"`},
		{bslex.String, "zdravo svijete"},
		{bslex.DoubleQuote, `"`},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_StringEscapes(t *testing.T) {
	tokens := mustTokenize(t, `"a\nb\tc\rd\\e\"f"`, false)
	want := "a\nb\tc\rd\\e\"f"
	if tokens[1].Type != bslex.String {
		t.Fatalf("token 1 is %s, want String", tokens[1].Type)
	}
	if tokens[1].Value != want {
		t.Errorf("decoded %q, want %q", tokens[1].Value, want)
	}
	if tokens[2].Type != bslex.DoubleQuote {
		t.Errorf("escaped quote closed the string early: %v", tokens)
	}
}

func TestLexer_EmptyString(t *testing.T) {
	runCases(t, `""`, []tokenCase{
		{bslex.DoubleQuote, `"`},
		{bslex.String, ""},
		{bslex.DoubleQuote, `"`},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_UnterminatedString(t *testing.T) {
	runCases(t, `"nije zatvoren; var x`, []tokenCase{
		{bslex.DoubleQuote, `"`},
		{bslex.String, "nije zatvoren; var x"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_Identifiers(t *testing.T) {
	runCases(t, "$x _y čaša a1 tacnost", []tokenCase{
		{bslex.Identifier, "$x"},
		{bslex.Identifier, "_y"},
		{bslex.Identifier, "čaša"},
		{bslex.Identifier, "a1"},
		{bslex.Identifier, "tacnost"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	de := lexError(t, "var x = 1;\nx # 2;", false)
	if de.Pos.Line != 2 || de.Pos.Column != 3 {
		t.Errorf("error at %d:%d, want 2:3", de.Pos.Line, de.Pos.Column)
	}
}

func TestLexer_Javascript(t *testing.T) {
	tokens := mustTokenize(t, "x = `console.log(1);\nalert(2);`;", true)
	want := []tokenCase{
		{bslex.Identifier, "x"},
		{bslex.SimpleAssign, "="},
		{bslex.Javascript, "console.log(1);\nalert(2);"},
		{bslex.Semicolon, ";"},
		{bslex.EndOfFile, "EOF"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tc := range want {
		if tokens[i].Type != tc.typ || tokens[i].Value != tc.value {
			t.Errorf("case %d: got %s %q, want %s %q", i, tokens[i].Type, tokens[i].Value, tc.typ, tc.value)
		}
	}
	if tokens[2].Pos.Line != 1 || tokens[2].Pos.Column != 5 {
		t.Errorf("snippet at %d:%d, want 1:5", tokens[2].Pos.Line, tokens[2].Pos.Column)
	}
	if tokens[3].Pos.Line != 2 {
		t.Errorf("semicolon on line %d, want 2", tokens[3].Pos.Line)
	}
}

func TestLexer_JavascriptDisallowed(t *testing.T) {
	lexError(t, "`alert(1)`", false)
}

func TestLexer_JavascriptUnterminated(t *testing.T) {
	de := lexError(t, "x = `alert(1)", true)
	if de.Pos.Column != 5 {
		t.Errorf("error column = %d, want 5", de.Pos.Column)
	}
}

func TestLexer_Position(t *testing.T) {
	input := "var ime = \"Ana\";\n\tinače\r\n  @x"
	tokens := mustTokenize(t, input, false)

	want := []struct {
		typ       bslex.TokenType
		line, col int
	}{
		{bslex.Var, 1, 1},
		{bslex.Identifier, 1, 5},
		{bslex.SimpleAssign, 1, 9},
		{bslex.DoubleQuote, 1, 11},
		{bslex.String, 1, 12},
		{bslex.DoubleQuote, 1, 15},
		{bslex.Semicolon, 1, 16},
		{bslex.Inace, 2, 2},
		{bslex.This, 3, 3},
		{bslex.Identifier, 3, 4},
		{bslex.EndOfFile, 3, 5},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Type != w.typ || tok.Pos.Line != w.line || tok.Pos.Column != w.col {
			t.Errorf("token %d: got %s at %d:%d, want %s at %d:%d", i, tok.Type, tok.Pos.Line, tok.Pos.Column, w.typ, w.line, w.col)
		}
	}
}

func TestLexer_Filename(t *testing.T) {
	tokens, err := bslex.New("x", bslex.WithFilename("main.boss")).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Pos.Filename != "main.boss" {
		t.Errorf("filename = %q, want main.boss", tokens[0].Pos.Filename)
	}
}

func TestLexer_AlwaysEndsWithEOF(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "x"} {
		tokens := mustTokenize(t, input, false)
		if last := tokens[len(tokens)-1]; last.Type != bslex.EndOfFile {
			t.Errorf("%q: last token is %s, want EndOfFile", input, last.Type)
		}
	}
}

func TestLexer_Program(t *testing.T) {
	input := `funkcija zbir(a, b) => a + b;`
	runCases(t, input, []tokenCase{
		{bslex.Funkcija, "funkcija"},
		{bslex.Identifier, "zbir"},
		{bslex.OpenParen, "("},
		{bslex.Identifier, "a"},
		{bslex.Comma, ","},
		{bslex.Identifier, "b"},
		{bslex.CloseParen, ")"},
		{bslex.Arrow, "=>"},
		{bslex.Identifier, "a"},
		{bslex.BinaryOperator, "+"},
		{bslex.Identifier, "b"},
		{bslex.Semicolon, ";"},
		{bslex.EndOfFile, "EOF"},
	})
}

func TestLookupIdent(t *testing.T) {
	if got := bslex.LookupIdent("inače"); got != bslex.Inace {
		t.Errorf("LookupIdent(inače) = %s, want Inace", got)
	}
	if got := bslex.LookupIdent("ime"); got != bslex.Identifier {
		t.Errorf("LookupIdent(ime) = %s, want Identifier", got)
	}
}
