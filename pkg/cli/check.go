package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bcolb/searchtree/pkg/driver"
)

type CheckCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Test files in the batch driver format"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(ctx *Context) error {
	var errs []error
	failed := 0

	for _, file := range cmd.Files {
		report, err := checkFile(ctx, file)
		if report != nil {
			fmt.Fprintf(ctx.Out, "%s: %s\n", file, report)
			failed += report.Failed
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}

	if failed > 0 {
		errs = append(errs, fmt.Errorf("%d checks failed", failed))
	}
	return errors.Join(errs...)
}

func checkFile(ctx *Context, path string) (*driver.Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ctx.Logger.Info("running test file", "file", path)
	return driver.Run(file, driver.WithLogger(ctx.Logger.With("file", path)))
}
