package main

import (
	"context"
	"os"

	"github.com/pseudomuto/commentary/pkg/cmd"
	"github.com/pseudomuto/commentary/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(os.Args),
		fx.Supply(&cmd.Version{Version: version, Commit: commit, Timestamp: date}),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	)

	if err := app.Start(context.Background()); err != nil {
		os.Exit(1)
	}

	sig := <-app.Wait()
	_ = app.Stop(context.Background())
	os.Exit(sig.ExitCode)
}
