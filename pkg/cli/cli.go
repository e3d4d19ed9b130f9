package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Commands is the kong command tree of the searchtree binary.
type Commands struct {
	Verbose  bool        `short:"v" help:"Log every tree check and structural change"`
	Check    CheckCmd    `cmd:"" help:"Run batch test files against the search tree"`
	Traverse TraverseCmd `cmd:"" help:"Insert values and print the tree traversals"`
}

var CLI Commands

// Context is handed to every command Run method.
type Context struct {
	Out    io.Writer
	Logger *slog.Logger
}

// NewContext builds the run context and installs its logger as the slog default.
func NewContext(out io.Writer, verbose bool) *Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return &Context{
		Out:    out,
		Logger: logger,
	}
}

// Parse fills commands from args. Parse errors print the usage and exit through kong,
// unless opts override kong.Exit.
func Parse(commands *Commands, args []string, opts ...kong.Option) (*kong.Context, error) {
	options := []kong.Option{
		kong.Name("searchtree"),
		kong.Description("Exercise an unbalanced binary search tree from the command line."),
		kong.UsageOnError(),
	}
	parser, err := kong.New(commands, append(options, opts...)...)
	if err != nil {
		return nil, err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return nil, err
	}
	return kctx, nil
}

// Run parses args into commands and runs the selected command, writing its output to out.
func Run(commands *Commands, args []string, out io.Writer, opts ...kong.Option) error {
	kctx, err := Parse(commands, args, opts...)
	if err != nil {
		return err
	}
	return kctx.Run(NewContext(out, commands.Verbose))
}
