package browser

import (
	"fmt"
	"time"

	"github.com/launchdarkly/counter-e2e-tests/framework"
)

const (
	DefaultWaitTimeout  = time.Second * 4
	DefaultWaitInterval = time.Millisecond * 50
)

// Page is a single browser page. Selectors are CSS selectors. Methods that take a timeout wait
// up to that long for the element to appear.
type Page interface {
	Navigate(url string) error
	TextContent(selector string, timeout time.Duration) (string, error)
	Click(selector string, timeout time.Duration) error
	Close() error
}

// PageOpener creates pages that share no state with each other. Browser console output for a
// page is written to the logger.
type PageOpener interface {
	OpenPage(logger framework.Logger) (Page, error)
}

// TextMismatchError means an element was found but its text never became what was expected.
type TextMismatchError struct {
	Selector string
	Expected string
	Actual   string
}

func (e TextMismatchError) Error() string {
	return fmt.Sprintf("text of %s was %q, expected %q", e.Selector, e.Actual, e.Expected)
}

// WaitForText polls the element's text content until it is exactly equal to expected. If the
// timeout elapses first, it returns a TextMismatchError with the last text that was seen, or
// the last read error if the element could never be read.
func WaitForText(page Page, selector, expected string, timeout, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultWaitInterval
	}
	deadline := time.Now().Add(timeout)
	var lastErr error
	var lastText *string
	for {
		readTimeout := time.Until(deadline)
		if readTimeout < interval {
			readTimeout = interval
		}
		actual, err := page.TextContent(selector, readTimeout)
		if err == nil {
			if actual == expected {
				return nil
			}
			lastText = &actual
		} else {
			lastErr = err
		}
		if !time.Now().Before(deadline) {
			break
		}
		time.Sleep(interval)
	}
	if lastText != nil {
		return TextMismatchError{Selector: selector, Expected: expected, Actual: *lastText}
	}
	return fmt.Errorf("could not read text of %s: %w", selector, lastErr)
}
