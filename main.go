package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/arminrejzovic/bosscript/lib/diag"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Version is the toolchain version checked against a project's requires.
const Version = "0.1.0"

var (
	commands []*cli.Command
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func newApp() *cli.App {
	return &cli.App{
		Name:                   "bosscript",
		Usage:                  "Tokenize, parse and check BosScript sources",
		Version:                Version,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print debug logs to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			return nil
		},
		Commands: commands,
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
}

// jsFlag is shared by every command that lexes source.
func jsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "js",
		Usage:   "Allow Javascript snippets between backticks",
		EnvVars: []string{"BOSSCRIPT_JS"},
	}
}

// readInput returns the source named by the first argument, or the
// --input-str flag when the command has one and it is set.
func readInput(c *cli.Context) (src, name string, err error) {
	if c.IsSet("input-str") {
		return c.String("input-str"), "<string>", nil
	}

	filename := c.Args().First()
	if filename == "" {
		return "", "", cli.Exit(color.RedString("Error: No file specified"), 1)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", "", cli.Exit(color.RedString("Error reading %s: %s", filename, err), 1)
	}
	return string(data), filename, nil
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("unknown format %q, use json or yaml", format)
}

// warningPrinter prints warnings to w. It is safe to share between
// goroutines.
func warningPrinter(w io.Writer) func(diag.Warning) {
	var mu sync.Mutex
	return func(warning diag.Warning) {
		mu.Lock()
		defer mu.Unlock()
		diag.FprintWarning(w, warning)
	}
}
