package countertests

import (
	"fmt"

	"github.com/launchdarkly/counter-e2e-tests/fixture"
	"github.com/launchdarkly/counter-e2e-tests/framework"
	"github.com/launchdarkly/counter-e2e-tests/framework/harness"
)

func RunTestSuite(
	harness *harness.TestHarness,
	fixtures fixture.Loader,
	config Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{
		harness:  harness,
		fixtures: fixtures,
		config:   config.withDefaults(),
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		if env.config.Repeat == 1 {
			t.Run("Counter App", DoCounterAppTests)
			return
		}
		for i := 1; i <= env.config.Repeat; i++ {
			t.Run(fmt.Sprintf("run %d", i), func(t *T) {
				t.Run("Counter App", DoCounterAppTests)
			})
		}
	})
}
