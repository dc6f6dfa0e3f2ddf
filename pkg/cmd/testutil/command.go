package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/commentary/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// RunCommand executes a command as a subcommand of a test app and returns
// everything it wrote.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	command.Writer = &buf
	app := &cli.Command{
		Name:     "test",
		Writer:   &buf,
		Commands: []*cli.Command{command},
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(context.Background(), fullArgs)
	return buf.String(), err
}

// WriteSource writes content to name below dir, creating parent directories,
// and returns the file's path.
func WriteSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return path
}
