package driver

import (
	"fmt"
	"strings"
)

// records one check whose in-order rendering differed from the expected line
type Failure struct {
	Case     int    // 1-based index of the test case
	Line     int    // line of the expected rendering in the test file
	Step     string // what was done to the tree before the check
	Expected string
	Actual   string
}

func (f Failure) String() string {
	return fmt.Sprintf("case %d, line %d, after %s: expected %q, got %q",
		f.Case, f.Line, strings.TrimSpace(f.Step), f.Expected, f.Actual)
}

// Report counts the checks of a test run.
type Report struct {
	Passed   int
	Failed   int
	Failures []Failure
}

// OK reports whether no check failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) String() string {
	str := fmt.Sprintf("Passed: %d, Failed: %d", r.Passed, r.Failed)
	for _, failure := range r.Failures {
		str += "\n  " + failure.String()
	}
	return str
}
