package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/launchdarkly/counter-e2e-tests/framework"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

const navigationTimeout = time.Second * 30

// Options configures how NewBrowser gets a Chrome instance.
type Options struct {
	// RemoteURL is the DevTools websocket URL of an already running browser. If it is empty,
	// a local Chrome is started.
	RemoteURL string
	// ExecPath overrides the location of the local Chrome executable.
	ExecPath string
	Headless bool
	Logger   framework.Logger
}

// Browser drives Chrome through the DevTools protocol. Each page it opens is a separate tab.
type Browser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	cancelAlloc context.CancelFunc
	logger      framework.Logger
}

type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger framework.Logger
}

func NewBrowser(opts Options) (*Browser, error) {
	logger := opts.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}

	var allocCtx context.Context
	var cancelAlloc context.CancelFunc
	if opts.RemoteURL != "" {
		logger.Printf("Connecting to browser at %s", opts.RemoteURL)
		allocCtx, cancelAlloc = chromedp.NewRemoteAllocator(context.Background(), opts.RemoteURL)
	} else {
		allocOpts := append([]chromedp.ExecAllocatorOption(nil), chromedp.DefaultExecAllocatorOptions[:]...)
		if !opts.Headless {
			allocOpts = append(allocOpts, chromedp.Flag("headless", false))
		}
		if opts.ExecPath != "" {
			allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
		}
		allocCtx, cancelAlloc = chromedp.NewExecAllocator(context.Background(), allocOpts...)
	}

	ctx, cancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(framework.LoggerWithPrefix(logger, "chromedp: ").Printf),
		chromedp.WithErrorf(framework.LoggerWithPrefix(logger, "chromedp error: ").Printf),
	)
	// The first Run on a context is what actually starts or attaches to the browser.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		cancelAlloc()
		return nil, fmt.Errorf("could not start browser: %w", err)
	}
	return &Browser{ctx: ctx, cancel: cancel, cancelAlloc: cancelAlloc, logger: logger}, nil
}

// OpenPage opens a new tab.
func (b *Browser) OpenPage(logger framework.Logger) (Page, error) {
	if logger == nil {
		logger = b.logger
	}
	ctx, cancel := chromedp.NewContext(b.ctx)
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		logPageEvent(logger, ev)
	})
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("could not open browser tab: %w", err)
	}
	return &chromePage{ctx: ctx, cancel: cancel, logger: logger}, nil
}

// logPageEvent copies the page's console output and uncaught exceptions to the test's log.
func logPageEvent(logger framework.Logger, ev interface{}) {
	switch ev := ev.(type) {
	case *runtime.EventConsoleAPICalled:
		var parts []string
		for _, arg := range ev.Args {
			if arg.Value != nil {
				parts = append(parts, string(arg.Value))
			} else {
				parts = append(parts, arg.Description)
			}
		}
		logger.Printf("console.%s: %s", ev.Type, strings.Join(parts, " "))
	case *runtime.EventExceptionThrown:
		if ev.ExceptionDetails != nil {
			logger.Printf("uncaught exception in page: %s", ev.ExceptionDetails.Error())
		}
	}
}

// Close shuts down the browser, or disconnects from it if it was a remote browser.
func (b *Browser) Close() {
	b.cancel()
	b.cancelAlloc()
}

func (p *chromePage) Navigate(url string) error {
	p.logger.Printf("Navigating to %s", url)
	ctx, cancel := context.WithTimeout(p.ctx, navigationTimeout)
	defer cancel()
	resp, err := chromedp.RunResponse(ctx, chromedp.Navigate(url))
	if err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	if resp != nil {
		return checkNavigationStatus(url, resp.Status)
	}
	return nil
}

// checkNavigationStatus fails a navigation whose document was an HTTP error response, even
// though the browser rendered it.
func checkNavigationStatus(url string, status int64) error {
	if status >= 400 {
		return fmt.Errorf("navigation to %s failed: page returned status code %d", url, status)
	}
	return nil
}

// TextContent returns the DOM textContent of the element, which unlike innerText preserves
// whitespace exactly.
func (p *chromePage) TextContent(selector string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()
	var text string
	if err := chromedp.Run(ctx, chromedp.TextContent(selector, &text, chromedp.ByQuery)); err != nil {
		return "", describeElementError(selector, timeout, err)
	}
	return text, nil
}

func (p *chromePage) Click(selector string, timeout time.Duration) error {
	p.logger.Printf("Clicking %s", selector)
	ctx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()
	if err := chromedp.Run(ctx, chromedp.Click(selector, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return describeElementError(selector, timeout, err)
	}
	return nil
}

func (p *chromePage) Close() error {
	err := chromedp.Cancel(p.ctx)
	p.cancel()
	return err
}

func describeElementError(selector string, timeout time.Duration, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("element %s was not found within %s: %w", selector, timeout, err)
	}
	return fmt.Errorf("element %s: %w", selector, err)
}
