package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arminrejzovic/bosscript/lib/project"
	"github.com/arminrejzovic/bosscript/util"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

const mainTemplate = `funkcija main() {
    ispis("Zdravo, svijete!");
}

main();
`

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new BosScript project",
		Category:  "project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "The name of the project",
			},
			&cli.BoolFlag{
				Name:  "toml",
				Usage: "Write bosscript.toml instead of bosscript.yaml",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept the defaults without asking",
			},
		},
		Action: initProject,
	})
}

func initProject(c *cli.Context) error {
	rootDir := c.Args().First()
	if rootDir == "" {
		rootDir = "."
	}
	yes := c.Bool("yes")
	w := c.App.Writer

	// Check if the directory exists
	if _, err := os.Stat(rootDir); !os.IsNotExist(err) {
		// The directory exists, check if it has any contents
		files, err := os.ReadDir(rootDir)
		if err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		if len(files) > 0 && !yes {
			if !util.PromptYN("The directory is not empty, continue?", false) {
				return nil
			}
		}
	} else {
		if err := os.MkdirAll(rootDir, 0755); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		fmt.Fprintln(w, "Created directory:", rootDir)
	}

	name := c.String("name")
	if name == "" {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
		name = filepath.Base(abs)
	}

	conf := project.Config{}
	conf.CreateDefault(name)
	if !yes && !util.PromptYN("Use default configuration?", true) {
		conf.Name = util.PromptString("Project name", conf.Name)
		conf.Description = util.PromptString("Project description", conf.Description)
		conf.Version = util.PromptString("Project version", conf.Version)
		conf.Main = util.PromptString("Main file", conf.Main)
		conf.Author = util.PromptString("Author", conf.Author)
		conf.License = util.PromptString("License", conf.License)
	}
	conf.SourceDir = filepath.Dir(filepath.FromSlash(conf.Main))

	mainPath := filepath.Join(rootDir, filepath.FromSlash(conf.Main))
	if err := os.MkdirAll(filepath.Dir(mainPath), 0755); err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}
	if _, err := os.Stat(mainPath); os.IsNotExist(err) {
		if err := os.WriteFile(mainPath, []byte(mainTemplate), 0644); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		fmt.Fprintln(w, "Created file:", mainPath)
	}

	confFile := project.YAMLFile
	if c.Bool("toml") {
		confFile = project.TOMLFile
	}
	confPath := filepath.Join(rootDir, confFile)
	if err := conf.Save(confPath, yes); err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	color.New(color.FgGreen).Fprintln(w, "Created file:", confPath)
	return nil
}
