/*
Copyright © 2025 the h2c authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/h2c-tools/torturegen/pkg/errors"
	"github.com/h2c-tools/torturegen/pkg/generator"
	"github.com/h2c-tools/torturegen/pkg/serializers"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		Aliases:               []string{"gen"},
		EnableShellCompletion: true,
		Usage:                 "Generate a torture-test manifest corpus for scale factor n",
		ArgsUsage:             "<n>",
		Description: `Generates n releases, each with n Deployments, n ConfigMaps, n Secrets,
n Services, and 1 Ingress. Two axes of load for the downstream consumer:

  1. Cross-release configmap mounts: every deployment mounts ALL n² configmaps
     (from every release, not just its own), so mount resolution totals
     n² deployments × n² mounts = n⁴.

  2. Env vars with cluster FQDNs: every deployment carries one env var per
     all n² service FQDNs, so hostname rewriting scans n² envs × n² known
     services = n⁴.

Output is deterministic: re-running with the same n produces byte-identical
files, and checksums.txt at the corpus root records the digests.

# Examples

Generate with n=15 into the default scale-named temp directory:
  torturegen generate 15

Custom output directory:
  torturegen generate 15 --output /tmp/corpus

Inspect the cost plan without writing anything:
  torturegen generate 50 --plan-only --plan-format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (default: <tmp>/h2c-torture-<n>/manifests)",
			},
			&cli.StringFlag{
				Name:  "plan-format",
				Value: "table",
				Usage: "Cost plan format (yaml, json, table)",
			},
			&cli.BoolFlag{
				Name:  "plan-only",
				Usage: "Print the cost plan and exit without writing files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			n, err := parseScale(cmd.Args().First())
			if err != nil {
				return err
			}

			planFormat := serializers.Format(cmd.String("plan-format"))
			if planFormat.IsUnknown() {
				return fmt.Errorf("unknown plan format: %q, valid formats are: yaml, json, table", planFormat)
			}

			gen, err := generator.New(generator.Config{
				Scale:     n,
				OutputDir: cmd.String("output"),
			})
			if err != nil {
				return err
			}

			// Report the cost the downstream consumer will face before
			// writing anything.
			plan := gen.Plan()
			slog.Info("generation plan",
				"scale", plan.Scale,
				"releases", plan.Releases,
				"deployments", plan.Deployments,
				"mount_resolutions", plan.MountResolutions,
				"env_rewrites", plan.EnvRewrites,
				"output_dir", plan.OutputDir,
			)
			if err := serializers.NewStdoutWriter(planFormat).Serialize(plan); err != nil {
				return err
			}

			if cmd.Bool("plan-only") {
				return nil
			}

			res, err := gen.Run(ctx)
			if err != nil {
				slog.Error("generation failed", "error", err)
				return err
			}

			fmt.Printf("\n%s\n", res.Summary())
			fmt.Printf("%d release directories written to %s\n", plan.Releases, res.OutputDir)
			return nil
		},
	}
}

// parseScale validates the positional scale argument. The n >= 1 bound is
// enforced again by generator.New; this keeps the CLI diagnostic close to
// what the user typed.
func parseScale(arg string) (int, error) {
	if arg == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "missing required argument: n (scale factor)")
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput,
			fmt.Sprintf("invalid scale factor %q: must be an integer", arg), err)
	}
	if n < 1 {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidInput,
			"scale factor n must be >= 1", map[string]any{"scale": n})
	}

	return n, nil
}
