package cmd

import (
	"context"

	"github.com/pseudomuto/commentary/pkg/analysis"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/config"
	"github.com/pseudomuto/commentary/pkg/format"
	"github.com/urfave/cli/v3"
)

// commented creates a command that lists the declarations containing an
// ordinary (non-documentation) comment. With --comments each declaration is
// followed by the comments it contains.
func commented(cfg *config.Config, fmtr *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "commented",
		Usage:     "List declarations that contain ordinary comments",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			orderFlag(),
			&cli.BoolFlag{
				Name:    "comments",
				Aliases: []string{"c"},
				Usage:   "print the comments found in each declaration",
			},
		},
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
				if !cmd.Bool("comments") {
					return fmtr.Declarations(cmd.Writer, r.Filename, r.Commented)
				}

				for _, n := range r.Commented {
					if err := fmtr.Declarations(cmd.Writer, r.Filename, []ast.Node{n}); err != nil {
						return err
					}

					if err := fmtr.Comments(cmd.Writer, r.CommentsIn(n)); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}
