package countertests

import (
	"github.com/launchdarkly/counter-e2e-tests/fixture"
)

// counterScenario runs a test that starts from a freshly loaded application page and freshly
// loaded fixture data. Setup completes, or the test exits, before the body is called.
func counterScenario(t *T, name string, body func(t *T, page *CounterPage, data fixture.CounterData)) {
	t.Run(name, func(t *T) {
		page := OpenCounterPage(t)
		data := LoadCounterFixture(t)
		body(t, page, data)
	})
}

func DoCounterAppTests(t *T) {
	counterScenario(t, `increments counter to 1 when "Increment" is pressed`,
		func(t *T, page *CounterPage, data fixture.CounterData) {
			page.RequireCounterText(t, fixture.FormatNumber(data.Initial))
			page.IncrementAndCheck(t, data.Incremented)
		})
}
