package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/arminrejzovic/bosscript/lib/ast"
	"github.com/arminrejzovic/bosscript/lib/diag"
	bslex "github.com/arminrejzovic/bosscript/lib/lexer"
	"github.com/arminrejzovic/bosscript/lib/parser"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "tokens",
		Usage:     "Print the tokens of a BosScript file",
		Category:  "inspect",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			jsFlag(),
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Tokenize a string instead of a file",
			},
		},
		Action: tokens,
	}, &cli.Command{
		Name:      "parse",
		Usage:     "Parse a BosScript file and print its syntax tree",
		Category:  "inspect",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			jsFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "Output format, json or yaml",
			},
			&cli.BoolFlag{
				Name:    "positions",
				Aliases: []string{"p"},
				Usage:   "Include line and column of every node",
			},
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Parse a string instead of a file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the tree to a file instead of stdout",
			},
		},
		Action: parse,
	})
}

// tokens drives the lexer through its participle definition, the same path
// any participle based tooling would take.
func tokens(c *cli.Context) error {
	src, name, err := readInput(c)
	if err != nil {
		return err
	}

	def := bslex.Definition
	if c.Bool("js") {
		def = bslex.JavascriptDefinition
	}
	names := make(map[lexer.TokenType]string)
	for sym, t := range def.Symbols() {
		names[t] = sym
	}
	names[lexer.EOF] = bslex.EndOfFile.String()

	lex, err := def.Lex(name, strings.NewReader(src))
	if err != nil {
		diag.Display(c.App.ErrWriter, src, err)
		return cli.Exit(color.RedString("Tokenizing %s failed", name), 1)
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return cli.Exit(color.RedString("Tokenizing %s failed: %s", name, err), 1)
	}

	for _, t := range toks {
		fmt.Fprintf(c.App.Writer, "%d:%d %s '%s'\n", t.Pos.Line, t.Pos.Column, names[t.Type], t.Value)
	}
	logger.Debug("tokenized", "file", name, "tokens", len(toks))
	return nil
}

func parse(c *cli.Context) error {
	src, name, err := readInput(c)
	if err != nil {
		return err
	}

	prog, err := parser.ParseString(src,
		parser.WithJavascript(c.Bool("js")),
		parser.WithFilename(name),
		parser.WithWarnings(warningPrinter(c.App.ErrWriter)),
		parser.WithLogger(logger),
	)
	if err != nil {
		diag.Display(c.App.ErrWriter, src, err)
		return cli.Exit(color.RedString("Parsing %s failed", name), 1)
	}

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(color.RedString("Error creating %s: %s", path, err), 1)
		}
		defer f.Close()
		out = f
	}

	if err := encode(out, c.String("format"), ast.Dump(prog, c.Bool("positions"))); err != nil {
		return cli.Exit(color.RedString("Error encoding AST: %s", err), 1)
	}
	return nil
}
