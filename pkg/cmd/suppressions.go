package cmd

import (
	"context"

	"github.com/pseudomuto/commentary/pkg/analysis"
	"github.com/pseudomuto/commentary/pkg/config"
	"github.com/pseudomuto/commentary/pkg/format"
	"github.com/urfave/cli/v3"
)

// suppressions creates a command that prints the line suppressions of each
// file as YAML, one document per file.
func suppressions(cfg *config.Config, fmtr *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "suppressions",
		Usage:     "Print suppression directives found in line comments",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "marker",
				Aliases: []string{"m"},
				Usage:   "suppression marker (overrides suppress_marker)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := pathArg(cmd)
			if err != nil {
				return err
			}

			opts, err := cfg.AnalysisOptions()
			if err != nil {
				return err
			}

			if cmd.IsSet("marker") {
				opts.SuppressMarker = cmd.String("marker")
			}

			var files []format.FileSuppressions
			err = analyzePath(path, cfg, opts, func(r *analysis.Report) error {
				files = append(files, format.FileSuppressions{File: r.Filename, Suppressions: r.Suppressions})
				return nil
			})
			if err != nil {
				return err
			}

			return fmtr.Suppressions(cmd.Writer, files...)
		},
	}
}
