package countertests

import (
	"errors"

	"github.com/launchdarkly/counter-e2e-tests/browser"
	"github.com/launchdarkly/counter-e2e-tests/fixture"

	"github.com/stretchr/testify/require"
)

// CounterPage is a browser page showing the counter application.
type CounterPage struct {
	page   browser.Page
	config Config
}

// OpenCounterPage opens a new browser page and navigates to the application. The page is closed
// when the test exits. If the page can't be opened or loaded, the test fails and exits.
func OpenCounterPage(t *T) *CounterPage {
	page, err := t.env.harness.OpenPage(t.context.DebugLogger())
	require.NoError(t, err, "could not open browser page")
	t.Defer(func() {
		if err := page.Close(); err != nil {
			t.Debug("Error closing browser page: %s", err)
		}
	})

	url := t.env.harness.BaseURL()
	require.NoError(t, page.Navigate(url), "could not load page under test")
	return &CounterPage{page: page, config: t.env.config}
}

// LoadCounterFixture reads the counter fixture. If it is missing or malformed, the test fails
// and exits.
func LoadCounterFixture(t *T) fixture.CounterData {
	name := t.env.config.FixtureName
	data, err := t.env.fixtures.LoadCounterData(name)
	require.NoError(t, err, "could not load fixture %q", name)
	t.Debug("Loaded fixture %q: %s", name, data)
	return data
}

// RequireCounterText waits until the counter element's text is exactly the expected string. If
// it does not get there within the wait timeout, the test fails and exits.
func (p *CounterPage) RequireCounterText(t *T, expected string) {
	sel := p.config.CounterSelector
	err := browser.WaitForText(p.page, sel, expected, p.config.WaitTimeout, p.config.WaitInterval)
	if err == nil {
		t.Debug("Text of %s is %q", sel, expected)
		return
	}
	var mismatch browser.TextMismatchError
	if errors.As(err, &mismatch) {
		require.Equal(t, mismatch.Expected, mismatch.Actual, "text of %s did not match", sel)
	}
	require.NoError(t, err)
}

// Increment clicks the increment control.
func (p *CounterPage) Increment(t *T) {
	require.NoError(t, p.page.Click(p.config.IncrementSelector, p.config.WaitTimeout),
		"could not click increment control")
}

// IncrementAndCheck clicks the increment control and then requires the counter to show the
// expected value.
func (p *CounterPage) IncrementAndCheck(t *T, incremented float64) {
	p.Increment(t)
	p.RequireCounterText(t, fixture.FormatNumber(incremented))
}
