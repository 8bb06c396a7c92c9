package harness

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/counter-e2e-tests/browser"
	"github.com/launchdarkly/counter-e2e-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpener struct {
	loggers []framework.Logger
}

func (f *fakeOpener) OpenPage(logger framework.Logger) (browser.Page, error) {
	f.loggers = append(f.loggers, logger)
	return nil, nil
}

func TestHarnessRecordsTargetInfo(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(200, http.Header{"Content-Type": {"text/html"}}, []byte("<html></html>"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var out bytes.Buffer
		h, err := NewTestHarness(server.URL, &fakeOpener{}, time.Second, nil, &out)
		require.NoError(t, err)
		assert.Equal(t, server.URL, h.BaseURL())
		assert.Equal(t, TargetInfo{URL: server.URL, StatusCode: 200, ContentType: "text/html"}, h.TargetInfo())
		assert.Contains(t, out.String(), "Connecting to page under test at "+server.URL+".")
		assert.Contains(t, out.String(), "Status query returned 200 (text/html)")
	})
}

func TestHarnessFailsImmediatelyOnErrorStatus(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(404))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		_, err := NewTestHarness(server.URL, &fakeOpener{}, time.Second, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "page under test returned status code 404", err.Error())
		assert.Len(t, requestsCh, 1)
	})
}

func TestHarnessTimesOutIfPageIsUnreachable(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	start := time.Now()
	_, err := NewTestHarness(url, &fakeOpener{}, time.Millisecond*300, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out, result of last query was")
	assert.GreaterOrEqual(t, int64(time.Since(start)), int64(time.Millisecond*300))
}

func TestHarnessGivesUpAtTimeoutIfPageStalls(t *testing.T) {
	stall := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	httphelpers.WithServer(stall, func(server *httptest.Server) {
		start := time.Now()
		_, err := NewTestHarness(server.URL, &fakeOpener{}, time.Millisecond*300, nil, nil)
		elapsed := time.Since(start)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out, result of last query was")
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Less(t, int64(elapsed), int64(time.Millisecond*900), "took %s", elapsed)
	})
}

func TestHarnessRequiresBrowser(t *testing.T) {
	_, err := NewTestHarness("http://localhost", nil, time.Second, nil, nil)
	assert.Error(t, err)
}

func TestOpenPageUsesDebugLoggerByDefault(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		opener := &fakeOpener{}
		debugLogger := &framework.CapturingLogger{}
		h, err := NewTestHarness(server.URL, opener, time.Second, debugLogger, nil)
		require.NoError(t, err)

		testLogger := &framework.CapturingLogger{}
		_, _ = h.OpenPage(testLogger)
		_, _ = h.OpenPage(nil)
		require.Len(t, opener.loggers, 2)
		assert.Same(t, testLogger, opener.loggers[0])
		assert.Same(t, debugLogger, opener.loggers[1])
	})
}
