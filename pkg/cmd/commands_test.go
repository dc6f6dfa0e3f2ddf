package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/commentary/pkg/cmd/testutil"
	"github.com/pseudomuto/commentary/pkg/config"
	"github.com/stretchr/testify/require"
)

const greeter = `/** Greets people. */
public class Greeter {
    /** Says hello. */
    public String greet(String name) {
        // NOPMD concatenation is fine
        return 'Hello ' + name;
    }

    private Integer count = 0; // NOSONAR
}
`

const farewell = `public class Farewell {
    public void wave() {
        /* not a doc */
    }
}
`

func TestTreeCommand_RequiresPath(t *testing.T) {
	cfg := config.Default()

	_, err := testutil.RunCommand(t, tree(cfg, cfg.GetFormatter()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestTreeCommand_SingleFile(t *testing.T) {
	path := testutil.WriteSource(t, t.TempDir(), "Greeter.cls", greeter)
	cfg := config.Default()

	out, err := testutil.RunCommand(t, tree(cfg, cfg.GetFormatter()), path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "CompilationUnit "+path+" [2:1-10:1]", lines[0])
	require.Equal(t, "  UserClass Greeter [2:1-10:1]", lines[1])
	require.Equal(t, "    FormalComment Greets people. [1:1-1:21]", lines[2])
	require.Contains(t, out, "    Method greet [4:5-7:5]\n      FormalComment Says hello. [3:5-3:22]\n")
	require.Contains(t, out, "    Method <init> <synthetic>\n      FieldInitializer count <synthetic>\n")
}

func TestTreeCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSource(t, dir, "b/Greeter.cls", greeter)
	testutil.WriteSource(t, dir, "a/Farewell.cls", farewell)
	testutil.WriteSource(t, dir, "README.md", "# not source")

	cfg := config.Default()
	out, err := testutil.RunCommand(t, tree(cfg, cfg.GetFormatter()), dir)
	require.NoError(t, err)

	farewellAt := strings.Index(out, "UserClass Farewell")
	greeterAt := strings.Index(out, "UserClass Greeter")
	require.NotEqual(t, -1, farewellAt)
	require.NotEqual(t, -1, greeterAt)
	require.Less(t, farewellAt, greeterAt)
	require.NotContains(t, out, "README")
}

func TestTreeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := testutil.WriteSource(t, dir, "Bad.cls", "public class {")
	cfg := config.Default()

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{name: "parse error", args: []string{bad}, err: "failed to analyse file"},
		{name: "missing path", args: []string{dir + "/Missing.cls"}, err: "failed to access path"},
		{name: "empty directory", args: []string{t.TempDir()}, err: "no source files found in directory"},
		{name: "unknown order", args: []string{"--order", "sideways", bad}, err: "unknown visit order: sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.RunCommand(t, tree(cfg, cfg.GetFormatter()), tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestSuppressionsCommand(t *testing.T) {
	path := testutil.WriteSource(t, t.TempDir(), "Greeter.cls", greeter)

	t.Run("default marker", func(t *testing.T) {
		cfg := config.Default()

		out, err := testutil.RunCommand(t, suppressions(cfg, cfg.GetFormatter()), path)
		require.NoError(t, err)
		require.Equal(t, "file: "+path+"\nsuppressions:\n  5: concatenation is fine\n", out)
	})

	t.Run("marker flag", func(t *testing.T) {
		cfg := config.Default()

		out, err := testutil.RunCommand(t, suppressions(cfg, cfg.GetFormatter()), "--marker", "NOSONAR", path)
		require.NoError(t, err)
		require.Equal(t, "file: "+path+"\nsuppressions:\n  9: \"\"\n", out)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg, err := config.LoadConfig(strings.NewReader(`suppress_marker: ""`))
		require.NoError(t, err)

		out, err := testutil.RunCommand(t, suppressions(cfg, cfg.GetFormatter()), path)
		require.NoError(t, err)
		require.Equal(t, "file: "+path+"\nsuppressions: {}\n", out)
	})
}

func TestCommentedCommand(t *testing.T) {
	dir := t.TempDir()
	greeterPath := testutil.WriteSource(t, dir, "Greeter.cls", greeter)
	farewellPath := testutil.WriteSource(t, dir, "Farewell.cls", farewell)
	cfg := config.Default()

	out, err := testutil.RunCommand(t, commented(cfg, cfg.GetFormatter()), dir)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		farewellPath + ":1:1: UserClass Farewell",
		farewellPath + ":2:5: Method wave",
		greeterPath + ":2:1: UserClass Greeter",
		greeterPath + ":4:5: Method greet",
		"",
	}, "\n"), out)

	out, err = testutil.RunCommand(t, commented(cfg, cfg.GetFormatter()), "--order", "postorder", greeterPath)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		greeterPath + ":4:5: Method greet",
		greeterPath + ":2:1: UserClass Greeter",
		"",
	}, "\n"), out)
}

func TestCommentedCommand_WithComments(t *testing.T) {
	path := testutil.WriteSource(t, t.TempDir(), "Farewell.cls", farewell)
	cfg := config.Default()

	out, err := testutil.RunCommand(t, commented(cfg, cfg.GetFormatter()), "--comments", path)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		path + ":1:1: UserClass Farewell",
		"  3:9 /* not a doc */",
		path + ":2:5: Method wave",
		"  3:9 /* not a doc */",
		"",
	}, "\n"), out)
}
