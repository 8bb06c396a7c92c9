package framework

import (
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of tests that ran to completion without failing.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n - len(r.Failures)
}

// Skipped returns the number of tests that were started and then skipped.
func (r Results) Skipped() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID for a subtest of this one.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
