package main

import (
	"os"
	"path/filepath"

	"github.com/arminrejzovic/bosscript/lib/cache"
	"github.com/arminrejzovic/bosscript/lib/diag"
	"github.com/arminrejzovic/bosscript/lib/parser"
	"github.com/arminrejzovic/bosscript/lib/project"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:  "check",
		Usage: "Check that BosScript files parse",
		Description: "Parses the given files, or every source of the project when no files are given." +
			"\nFiles that parsed cleanly and have not changed since are skipped.",
		Category:  "project",
		ArgsUsage: "[files...]",
		Flags: []cli.Flag{
			jsFlag(),
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   ".",
				Usage:   "Project directory or config file",
			},
			&cli.BoolFlag{
				Name:    "no-cache",
				Aliases: []string{"n"},
				Usage:   "Parse every file and leave the cache alone",
			},
			&cli.StringFlag{
				Name:    "cache-dir",
				Usage:   "Where parse results are cached (default: <project>/.bosscript/cache)",
				EnvVars: []string{"BOSSCRIPT_CACHE_DIR"},
			},
		},
		Action: check,
	})
}

// loadProject accepts either a project directory or a path to its config.
func loadProject(path string) (project.Config, string, error) {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		conf, err := project.LoadFile(path)
		return conf, filepath.Dir(path), err
	}
	conf, err := project.Load(path)
	return conf, path, err
}

func check(c *cli.Context) error {
	files := c.Args().Slice()
	js := c.Bool("js")
	root := "."

	if len(files) == 0 {
		conf, dir, err := loadProject(c.String("config"))
		if err != nil {
			return cli.Exit(color.RedString("Error loading project: %s", err), 1)
		}
		if err := conf.CheckToolchain(Version); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
		root = dir
		js = js || conf.Javascript
		files, err = conf.Sources(root)
		if err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
		logger.Debug("project loaded", "name", conf.Name, "sources", len(files))
	}

	cacheDir := c.String("cache-dir")
	if cacheDir == "" {
		cacheDir = filepath.Join(root, ".bosscript", "cache")
	}
	proj, err := cache.NewProject(cacheDir, root)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}
	proj.SetLogger(logger)
	if js {
		proj.SetMode("js")
	}

	useCache := !c.Bool("no-cache")
	if useCache {
		if err := proj.Load(); err != nil {
			color.New(color.FgYellow).Fprintf(c.App.ErrWriter, "[WARN] ignoring cache: %s\n", err)
		}
	}

	warn := warningPrinter(c.App.ErrWriter)
	results := proj.Check(c.Context, files, func(name, src string) (int, error) {
		warnings := 0
		_, err := parser.ParseString(src,
			parser.WithJavascript(js),
			parser.WithFilename(name),
			parser.WithWarnings(func(w diag.Warning) {
				warnings++
				warn(w)
			}),
			parser.WithLogger(logger),
		)
		return warnings, err
	})

	failed, cached := 0, 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
		if r.Err == nil {
			continue
		}
		failed++
		src, _ := os.ReadFile(r.File)
		diag.Display(c.App.ErrWriter, string(src), r.Err)
	}

	if useCache {
		if err := proj.Save(); err != nil {
			color.New(color.FgYellow).Fprintf(c.App.ErrWriter, "[WARN] could not save cache: %s\n", err)
		}
	}

	if failed > 0 {
		return cli.Exit(color.RedString("%d of %d files failed", failed, len(results)), 1)
	}
	color.New(color.FgGreen).Fprintf(c.App.Writer, "Checked %d files (%d cached)\n", len(results), cached)
	return nil
}
