// Package driver runs batch tree test files.
//
// A test file is line oriented:
//
//	<case count>
//	per case:
//	  <values to insert, whitespace separated>
//	  <expected in-order rendering>
//	  <removal count>
//	  per removal:
//	    <value to remove>
//	    <expected in-order rendering after the removal>
//
// Each case starts from an empty tree; removals within a case are cumulative.
// Expected renderings are compared ignoring trailing whitespace.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bcolb/searchtree/pkg/bst"
	"github.com/bcolb/searchtree/pkg/render"
)

var ErrMalformedInput = errors.New("malformed test input")

type Option func(*runner) *runner

// WithLogger sets the logger receiving one debug record per check and one warning per failure.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) *runner {
		r.logger = logger
		return r
	}
}

type runner struct {
	lines  *lineReader
	logger *slog.Logger
	report *Report
}

// Run executes every case of the test file read from r.
// On malformed input it returns the report of the checks done so far together with an
// error wrapping ErrMalformedInput.
func Run(r io.Reader, opts ...Option) (*Report, error) {
	run := &runner{
		lines:  newLineReader(r),
		logger: slog.Default(),
		report: &Report{},
	}
	for _, opt := range opts {
		run = opt(run)
	}

	if err := run.all(); err != nil {
		return run.report, err
	}
	return run.report, nil
}

func (r *runner) all() error {
	cases, err := r.count("case count")
	if err != nil {
		return err
	}
	for i := 1; i <= cases; i++ {
		if err := r.testCase(i); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) testCase(index int) error {
	tree := bst.New[int]()

	line, err := r.lines.next()
	if err != nil {
		return err
	}
	values, err := render.Ints(line)
	if err != nil {
		return r.lines.malformed(err)
	}
	for _, v := range values {
		tree.Insert(v)
	}

	if err := r.check(tree, index, "insert "+render.Sequence(values)); err != nil {
		return err
	}

	removals, err := r.count("removal count")
	if err != nil {
		return err
	}
	for j := 0; j < removals; j++ {
		line, err := r.lines.next()
		if err != nil {
			return err
		}
		v, err := render.Int(line)
		if err != nil {
			return r.lines.malformed(err)
		}
		tree.Remove(v)

		if err := r.check(tree, index, fmt.Sprintf("remove %d", v)); err != nil {
			return err
		}
	}
	return nil
}

// check reads the next expected rendering and compares the tree in-order traversal against it.
func (r *runner) check(tree *bst.Tree[int], index int, step string) error {
	expected, err := r.lines.next()
	if err != nil {
		return err
	}
	actual := render.Tree(tree, bst.InOrder)

	if render.Normalize(expected) == render.Normalize(actual) {
		r.report.Passed++
		r.logger.Debug("check passed", "case", index, "step", step, "in_order", actual)
		return nil
	}

	failure := Failure{
		Case:     index,
		Line:     r.lines.number,
		Step:     step,
		Expected: expected,
		Actual:   actual,
	}
	r.report.Failed++
	r.report.Failures = append(r.report.Failures, failure)
	r.logger.Warn("check failed", "case", index, "line", failure.Line, "step", step,
		"expected", expected, "actual", actual)
	return nil
}

func (r *runner) count(what string) (int, error) {
	line, err := r.lines.next()
	if err != nil {
		return 0, err
	}
	n, err := render.Int(line)
	if err != nil {
		return 0, r.lines.malformed(fmt.Errorf("%s: %w", what, err))
	}
	if n < 0 {
		return 0, r.lines.malformed(fmt.Errorf("%s: negative value %d", what, n))
	}
	return n, nil
}

// lineReader hands out lines one by one and remembers the 1-based number of the last one.
type lineReader struct {
	scanner *bufio.Scanner
	number  int
}

// MaxLineSize is the longest line a test file may hold.
const MaxLineSize = 16 * 1024 * 1024

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &lineReader{scanner: scanner}
}

func (l *lineReader) next() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: line %d: longer than %d bytes: %w", ErrMalformedInput, l.number+1, MaxLineSize, err)
		} else if err != nil {
			return "", fmt.Errorf("reading line %d: %w", l.number+1, err)
		}
		return "", fmt.Errorf("%w: line %d: unexpected end of input", ErrMalformedInput, l.number+1)
	}
	l.number++
	return l.scanner.Text(), nil
}

func (l *lineReader) malformed(err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformedInput, l.number, err)
}
