package cmd

import (
	"context"

	"github.com/pseudomuto/commentary/pkg/analysis"
	"github.com/pseudomuto/commentary/pkg/config"
	"github.com/pseudomuto/commentary/pkg/format"
	"github.com/urfave/cli/v3"
)

// tree creates a command that prints the syntax tree of each file with its
// formal comments attached.
//
// Examples:
//
//	commentary tree classes/Greeter.cls
//	commentary tree --order reverse classes/
func tree(cfg *config.Config, fmtr *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "Print the syntax tree with documentation comments attached",
		ArgsUsage: "<path>",
		Flags:     []cli.Flag{orderFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := pathArg(cmd)
			if err != nil {
				return err
			}

			opts, err := analysisOptions(cfg, cmd)
			if err != nil {
				return err
			}

			return analyzePath(path, cfg, opts, func(r *analysis.Report) error {
				return fmtr.Tree(cmd.Writer, r.Root)
			})
		},
	}
}
