/*
Copyright © 2025 the h2c authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/h2c-tools/torturegen/pkg/logging"
)

const name = "torturegen"

// overridden during build with ldflags
var version = "dev"

// New assembles the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Generate deterministic Kubernetes manifest torture fixtures for h2c",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := ""
			if cmd.Bool("debug") {
				level = "debug"
			}
			logging.SetDefaultStructuredLogger(name, version, level, cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			versionCmd(),
		},
	}
}

// Run executes the CLI with the given arguments. Called by main.
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}
