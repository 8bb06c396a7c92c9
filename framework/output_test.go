package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestPrintResultsAllPassed(t *testing.T) {
	results := Results{Tests: []TestResult{
		{TestID: idOf("a")},
		{TestID: idOf("b"), Skipped: true},
	}}
	var buf bytes.Buffer
	PrintResults(&buf, results)
	assert.Equal(t, "All tests passed (1 passed, 1 skipped)\n", buf.String())
}

func TestPrintResultsWithFailures(t *testing.T) {
	failure := TestResult{TestID: idOf("a", "b"), Errors: []error{errors.New("first line\nsecond line")}}
	results := Results{
		Tests:    []TestResult{{TestID: idOf("a", "c")}, failure},
		Failures: []TestResult{failure},
	}
	var buf bytes.Buffer
	PrintResults(&buf, results)
	assert.Equal(t, "FAILED TESTS (1):\n* a/b\n    first line\n1 passed, 1 failed, 0 skipped\n", buf.String())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Equal(t, "", buf.String())

	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("slow"))
	PrintFilterDescription(&buf, f)
	assert.Contains(t, buf.String(), `skip any matching "slow"`)
	assert.NotContains(t, buf.String(), "not matching")
}

func TestConsoleTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ConsoleTestLogger{DebugOutputOnFailure: true, Output: &buf}
	id := idOf("a")
	logger.TestStarted(id)
	logger.TestError(id, errors.New("x\ny"))
	logger.TestFinished(id, true, CapturedOutput{{Message: "detail"}})
	out := buf.String()
	assert.Contains(t, out, "[a]\n  x\n  y\n  FAILED: a\n")
	assert.Contains(t, out, "    DEBUG [")
	assert.Contains(t, out, "] detail\n")

	buf.Reset()
	logger.TestFinished(id, false, CapturedOutput{{Message: "detail"}})
	assert.Equal(t, "", buf.String())

	logger.TestSkipped(id, "why")
	assert.Equal(t, "  SKIPPED: a (why)\n", buf.String())
}
