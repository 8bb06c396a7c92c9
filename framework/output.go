package framework

import (
	"fmt"
	"io"
	"strings"
)

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}

// PrintResults writes a summary of the test run, listing each failed test with its errors.
func PrintResults(out io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(out, "All tests passed (%d passed, %d skipped)\n", results.Passed(), results.Skipped())
		return
	}
	failedColor.Fprintf(out, "FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "* %s\n", f.TestID)
		for _, e := range f.Errors {
			fmt.Fprintf(out, "    %s\n", strings.SplitN(e.Error(), "\n", 2)[0])
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed, %d skipped\n", results.Passed(), len(results.Failures), results.Skipped())
}
