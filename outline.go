package main

import (
	"fmt"
	"sort"

	"github.com/arminrejzovic/bosscript/lib/analyzer"
	"github.com/arminrejzovic/bosscript/lib/diag"
	"github.com/arminrejzovic/bosscript/lib/parser"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "outline",
		Usage:     "List the imports and declarations of a BosScript file",
		Category:  "inspect",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			jsFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format, text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "symbols",
				Usage: "Only list top level names and their kinds",
			},
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Outline a string instead of a file",
			},
		},
		Action: outline,
	})
}

func outline(c *cli.Context) error {
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

	if c.Bool("symbols") {
		symbols, imports := analyzer.ScanSymbols(prog.Body)
		for _, pkg := range imports {
			fmt.Fprintf(c.App.Writer, "%q package\n", pkg)
		}
		names := make([]string, 0, len(symbols))
		for n := range symbols {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(c.App.Writer, "%s %s\n", n, symbols[n])
		}
		return nil
	}

	out := analyzer.Analyze(prog)
	if c.String("format") == "text" {
		out.Fprint(c.App.Writer)
	} else if err := encode(c.App.Writer, c.String("format"), out); err != nil {
		return cli.Exit(color.RedString("Error encoding outline: %s", err), 1)
	}

	for _, d := range out.Duplicates {
		diag.FprintWarning(c.App.ErrWriter, diag.Warning{Pos: d.Pos, Msg: d.Name + " is declared more than once"})
	}
	return nil
}
