// Package cmd wires the command line interface: flag parsing, the
// interactive wizard, logging setup and terminal output. The core lives in
// pkg/ and never touches any of this.
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/agentverse/create-agentverse-agent/pkg/version"
)

var Version = version.String()

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "create-agentverse-agent",
		Usage:   "Create an AgentVerse agent with an interactive wizard",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Aliases: []string{"d"}, Value: false, Usage: "Quick start with default values"},
			&cli.BoolFlag{Name: "advanced", Aliases: []string{"a"}, Value: false, Usage: "Advanced mode with all configuration options"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"o"}, Value: false, Usage: "Overwrite existing project if it exists"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "", Usage: "Seed the wizard from a .toml, .yaml or .json file"},
			&cli.BoolFlag{Name: "debug", Value: false, Usage: "Write debug logs to a per-run log file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCreate(ctx, cmd)
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("create-agentverse-agent version %s\n", Version)
					return nil
				},
			},
		},
	}

	return app.Run(ctx, args)
}
