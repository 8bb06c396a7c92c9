package countertests

import (
	"time"

	"github.com/launchdarkly/counter-e2e-tests/browser"
	"github.com/launchdarkly/counter-e2e-tests/fixture"
	"github.com/launchdarkly/counter-e2e-tests/framework"
	"github.com/launchdarkly/counter-e2e-tests/framework/harness"
	"github.com/launchdarkly/counter-e2e-tests/pagedef"
)

// Config holds the parameters of a test run that are not part of the harness.
type Config struct {
	// FixtureName is the fixture resource with the expected counter values.
	FixtureName       string
	CounterSelector   string
	IncrementSelector string
	// WaitTimeout is how long an assertion on the page keeps retrying before it fails.
	WaitTimeout  time.Duration
	WaitInterval time.Duration
	// Repeat runs the whole suite this many times, each with fresh setup.
	Repeat int
}

func (c Config) withDefaults() Config {
	if c.FixtureName == "" {
		c.FixtureName = pagedef.CounterFixtureName
	}
	if c.CounterSelector == "" {
		c.CounterSelector = pagedef.CounterSelector
	}
	if c.IncrementSelector == "" {
		c.IncrementSelector = pagedef.IncrementSelector
	}
	if c.WaitTimeout <= 0 {
		c.WaitTimeout = browser.DefaultWaitTimeout
	}
	if c.WaitInterval <= 0 {
		c.WaitInterval = browser.DefaultWaitInterval
	}
	if c.Repeat < 1 {
		c.Repeat = 1
	}
	return c
}

type environment struct {
	harness  *harness.TestHarness
	fixtures fixture.Loader
	config   Config
}

// T represents a test or subtest in our counter test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T. The page interaction methods also have assertions built in, causing the test to
// immediately fail if something unexpected happens.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer schedules cleanup to run when this test exits.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}
