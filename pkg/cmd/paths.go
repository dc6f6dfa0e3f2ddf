package cmd

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/analysis"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/config"
	"github.com/urfave/cli/v3"
)

const orderFlagName = "order"

// orderFlag overrides the configured visit order for a single run.
func orderFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    orderFlagName,
		Aliases: []string{"o"},
		Usage:   "node visit order (preorder, postorder, reverse)",
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

// pathArg returns the single path argument of cmd.
func pathArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", errors.New("exactly one path argument is required")
	}

	return cmd.Args().First(), nil
}

// analysisOptions resolves the options for cmd, applying the --order flag
// over the configuration.
func analysisOptions(cfg *config.Config, cmd *cli.Command) (analysis.Options, error) {
	opts, err := cfg.AnalysisOptions()
	if err != nil {
		return opts, err
	}

	if name := cmd.String(orderFlagName); name != "" {
		if opts.Order, err = ast.ParseOrder(name); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// analyzePath analyses either a single file or every matching file below a
// directory, calling fn with each report. Directories are processed in
// lexicographical order.
func analyzePath(path string, cfg *config.Config, opts analysis.Options, fn func(*analysis.Report) error) error {
	files, err := sourceFiles(path, cfg)
	if err != nil {
		return err
	}

	for _, file := range files {
		slog.Debug("Analysing file", "path", file)

		report, err := analysis.Path(file, opts)
		if err != nil {
			return errors.Wrapf(err, "failed to analyse file: %s", file)
		}

		if err := fn(report); err != nil {
			return err
		}
	}

	return nil
}

// sourceFiles returns path itself when it is a file, or the files below it
// whose extension is configured.
func sourceFiles(path string, cfg *config.Config) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && cfg.Matches(p) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no source files found in directory: %s", path)
	}

	return files, nil
}
