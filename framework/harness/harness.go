package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/launchdarkly/counter-e2e-tests/browser"
	"github.com/launchdarkly/counter-e2e-tests/framework"

	"github.com/avast/retry-go"
)

const statusQueryInterval = time.Millisecond * 100

// TargetInfo is what we learned about the page under test from the initial status query.
type TargetInfo struct {
	URL         string
	StatusCode  int
	ContentType string
}

// TestHarness knows where the page under test lives and how to open browser pages for it.
type TestHarness struct {
	baseURL    string
	targetInfo TargetInfo
	pages      browser.PageOpener
	logger     framework.Logger
}

// NewTestHarness creates a TestHarness instance, and verifies that the page under test is being
// served by querying its base URL until it responds or statusQueryTimeout elapses.
func NewTestHarness(
	baseURL string,
	pages browser.PageOpener,
	statusQueryTimeout time.Duration,
	debugLogger framework.Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	if startupOutput == nil {
		startupOutput = io.Discard
	}
	if pages == nil {
		return nil, errors.New("no browser was provided")
	}

	info, err := queryTargetInfo(baseURL, statusQueryTimeout, debugLogger, startupOutput)
	if err != nil {
		return nil, err
	}

	return &TestHarness{
		baseURL:    baseURL,
		targetInfo: info,
		pages:      pages,
		logger:     debugLogger,
	}, nil
}

func (h *TestHarness) BaseURL() string {
	return h.baseURL
}

func (h *TestHarness) TargetInfo() TargetInfo {
	return h.targetInfo
}

// OpenPage opens a new browser page that is not shared with any other test. The caller is
// responsible for closing it.
func (h *TestHarness) OpenPage(logger framework.Logger) (browser.Page, error) {
	if logger == nil {
		logger = h.logger
	}
	return h.pages.OpenPage(logger)
}

// statusError is a probe result that retrying will not change.
type statusError struct {
	statusCode int
	err        error
}

func (e statusError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("invalid page URL: %s", e.err)
	}
	return fmt.Sprintf("page under test returned status code %d", e.statusCode)
}

func queryTargetInfo(
	url string,
	timeout time.Duration,
	logger framework.Logger,
	output io.Writer,
) (TargetInfo, error) {
	fmt.Fprintf(output, "Connecting to page under test at %s", url)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var info TargetInfo
	var lastErr error
	err := retry.Do(
		func() error {
			fmt.Fprintf(output, ".")
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return statusError{err: err}
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				logger.Printf("Status query failed: %s", err)
				lastErr = err
				return err
			}
			if resp.Body != nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}
			if resp.StatusCode >= 400 {
				return statusError{statusCode: resp.StatusCode}
			}
			info = TargetInfo{
				URL:         url,
				StatusCode:  resp.StatusCode,
				ContentType: resp.Header.Get("Content-Type"),
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(timeout/statusQueryInterval)+1),
		retry.Delay(statusQueryInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var se statusError
			return !errors.As(err, &se)
		}),
	)
	fmt.Fprintln(output)
	if err != nil {
		var se statusError
		if errors.As(err, &se) {
			return TargetInfo{}, se
		}
		if lastErr == nil {
			lastErr = err
		}
		return TargetInfo{}, fmt.Errorf("timed out, result of last query was: %w", lastErr)
	}
	fmt.Fprintf(output, "Status query returned %d (%s)\n", info.StatusCode, info.ContentType)
	return info, nil
}
