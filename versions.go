package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:  "version",
		Usage: "Print the toolchain version",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "Also check the version against the project in this directory or config file",
			},
		},
		Action: version,
	})
}

func version(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "bosscript %s\n", Version)

	path := c.String("check")
	if path == "" {
		return nil
	}
	conf, _, err := loadProject(path)
	if err != nil {
		return cli.Exit(color.RedString("Error loading project: %s", err), 1)
	}
	if err := conf.CheckToolchain(Version); err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}
	color.New(color.FgGreen).Fprintf(c.App.Writer, "Project %s accepts this toolchain\n", conf.Name)
	return nil
}
