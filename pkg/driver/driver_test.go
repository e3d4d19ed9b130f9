package driver

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/bcolb/searchtree/pkg/render"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenarioFile(t *testing.T) {
	file, err := os.Open("testdata/scenarios.txt")
	require.NoError(t, err)
	defer file.Close()

	report, err := Run(file, WithLogger(slogt.New(t)))
	require.NoError(t, err)
	assert.True(t, report.OK(), report.String())
	assert.Equal(t, 7, report.Passed)
	assert.Equal(t, "Passed: 7, Failed: 0", report.String())
}

func TestRunReportsFailures(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"5 3 7",
		"3 5 7 ",
		"1",
		"5",
		"3 5 ", // wrong, 7 is promoted and 5 is gone
	}, "\n")

	report, err := Run(strings.NewReader(input), WithLogger(slogt.New(t)))
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)

	require.Len(t, report.Failures, 1)
	failure := report.Failures[0]
	assert.Equal(t, 1, failure.Case)
	assert.Equal(t, 6, failure.Line)
	assert.Equal(t, "remove 5", failure.Step)
	assert.Equal(t, "3 5 ", failure.Expected)
	assert.Equal(t, "3 7 ", failure.Actual)
	assert.Contains(t, report.String(), `case 1, line 6, after remove 5: expected "3 5 ", got "3 7 "`)
}

func TestRunMalformedInput(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		line    string
		checked int
	}{
		{"bad case count", "two\n", "line 1", 0},
		{"non numeric value", "1\n5 x 7\n", "line 2", 0},
		{"truncated", "1\n5 3 7\n3 5 7 \n", "line 4", 1},
		{"two values to remove", "1\n5 3\n3 5\n1\n3 5\n", "line 5", 1},
		{"negative removal count", "1\n5\n5\n-1\n", "line 4", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := Run(strings.NewReader(tc.input), WithLogger(slogt.New(t)))
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), tc.line)
			require.NotNil(t, report)
			assert.Equal(t, tc.checked, report.Passed+report.Failed)
		})
	}
}

func TestRunEmptyFileWithZeroCases(t *testing.T) {
	report, err := Run(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, report.Passed)
}

func TestRunLongInsertionLine(t *testing.T) {
	// skewed input, one line well past the default bufio.Scanner limit
	values := make([]int, 20000)
	for i := range values {
		values[i] = i
	}
	sequence := render.Sequence(values)
	require.Greater(t, len(sequence), 64*1024)

	input := "1\n" + sequence + "\n" + sequence + "\n0\n"
	report, err := Run(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, report.OK(), report.String())
	assert.Equal(t, 1, report.Passed)
}

func TestRunLineTooLong(t *testing.T) {
	input := "1\n" + strings.Repeat("1 ", MaxLineSize/2+1) + "\n"
	report, err := Run(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, err.Error(), "line 2")
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Passed+report.Failed)
}
