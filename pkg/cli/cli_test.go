package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var commands Commands
	kctx, err := Parse(&commands, args, kong.Exit(func(int) { t.Fatal("kong exited") }))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	err = kctx.Run(&Context{Out: out, Logger: slogt.New(t)})
	return out.String(), err
}

func TestTraverseAllOrders(t *testing.T) {
	out, err := run(t, "traverse", "5", "3", "7", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "in:   1 3 4 5 7 \n"+
		"pre:  5 3 1 4 7 \n"+
		"post: 1 4 3 7 5 \n"+
		"min:  1\n"+
		"max:  7\n", out)
}

func TestTraverseWithRemovals(t *testing.T) {
	out, err := run(t, "traverse", "--order=in", "--remove=5,3", "5", "3", "7")
	require.NoError(t, err)
	assert.Equal(t, "in:   7 \nmin:  7\nmax:  7\n", out)
}

func TestTraverseEmptyTree(t *testing.T) {
	out, err := run(t, "traverse", "--order=pre")
	require.NoError(t, err)
	assert.Equal(t, "pre:  \nmin:  error: empty container\nmax:  error: empty container\n", out)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("1\n5 3 7\n3 5 7 \n1\n5\n3 7 \n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("1\n5 3 7\n3 5 7\n1\n5\n5 7\n"), 0o600))

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": Passed: 2, Failed: 0\n", out)

	out, err = run(t, "check", good, bad)
	assert.ErrorContains(t, err, "1 checks failed")
	assert.Contains(t, out, bad+": Passed: 1, Failed: 1")
}

func TestNewContextVerbose(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	ctx := NewContext(&bytes.Buffer{}, true)
	assert.True(t, ctx.Logger.Enabled(context.Background(), slog.LevelDebug))

	ctx = NewContext(&bytes.Buffer{}, false)
	assert.False(t, ctx.Logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseRejectsUnknownOrder(t *testing.T) {
	exited := -1
	var commands Commands
	_, err := Parse(&commands, []string{"traverse", "--order=level", "1"},
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(code int) { exited = code }))

	assert.Error(t, err)
	assert.NotEqual(t, -1, exited, "parse errors should go through kong's exit")
}

func TestRunUsesVerboseFlag(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var commands Commands
	out := &bytes.Buffer{}
	err := Run(&commands, []string{"--verbose", "traverse", "--order=in", "2", "1"}, out)
	require.NoError(t, err)
	assert.True(t, commands.Verbose)
	assert.Equal(t, "in:   1 2 \nmin:  1\nmax:  2\n", out.String())
}
