package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of a single test or subtest. It provides the same basic operations as
// Go's *testing.T, but can be used outside of the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
	hasSubtests bool
}

// Run creates a root test context and runs the specified action within it, returning the
// accumulated results of that action and all subtests it started.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		c.runCleanups()
		if len(c.id.Path) == 0 || (c.hasSubtests && !c.failed) {
			return // a group of tests is only reported if it failed in itself
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) runCleanups() {
	for len(c.cleanups) > 0 {
		last := len(c.cleanups) - 1
		f := c.cleanups[last]
		c.cleanups = c.cleanups[:last]
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.Debug("panic in deferred cleanup: %+v", r)
				}
			}()
			f()
		}()
	}
}

// ID returns the full identifier of this test.
func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest with the specified name. The subtest is skipped if it is excluded by the
// filter that was passed to the top-level Run.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasSubtests = true

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Failed returns true if this test has recorded any failure so far.
func (c *Context) Failed() bool {
	return c.failed
}

// Errorf records a test failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow causes the test to exit immediately. Any failures should have already been reported
// with Errorf.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to be run when the test exits, whether it succeeded or failed.
// Deferred functions run in reverse order of registration, as with the defer statement.
func (c *Context) Defer(cleanup func()) {
	c.cleanups = append(c.cleanups, cleanup)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError removes the leading blank line and the "Error Trace:" block that testify
// assertions add to their failure messages, since the trace only points into this harness.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var out []string
	inTrace := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Error Trace:") {
			inTrace = true
			continue
		}
		if inTrace {
			if strings.HasSuffix(strings.TrimSpace(strings.SplitN(trimmed, "\t", 2)[0]), ":") {
				inTrace = false
			} else {
				continue
			}
		}
		if len(out) == 0 && trimmed == "" {
			continue
		}
		out = append(out, line)
	}
	return errors.New(strings.Join(out, "\n"))
}
