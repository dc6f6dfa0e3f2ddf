package format_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/commentary/pkg/analysis"
	. "github.com/pseudomuto/commentary/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.cls"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.cls files found in testdata directory")

	for _, inputFile := range matches {
		// "greeter.in.cls" -> "greeter.cls" and "greeter.tree"
		base := strings.TrimSuffix(filepath.Base(inputFile), ".in.cls")
		outputName := base + ".tree"

		t.Run(outputName, func(t *testing.T) {
			src, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			report, err := analysis.File(base+".cls", string(src), analysis.Options{})
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, New(nil).Tree(&buf, report.Root))

			golden.Assert(t, buf.String(), outputName)
		})
	}
}
