package main

import (
	"fmt"
	"os"
	"time"

	"github.com/launchdarkly/counter-e2e-tests/browser"
	"github.com/launchdarkly/counter-e2e-tests/countertests"
	"github.com/launchdarkly/counter-e2e-tests/fixture"
	"github.com/launchdarkly/counter-e2e-tests/framework"
	"github.com/launchdarkly/counter-e2e-tests/framework/harness"

	"github.com/sirupsen/logrus"
)

const statusQueryTimeout = time.Second * 10

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not read .env file: %s\n", err)
		return 1
	}

	var params commandParams
	if !params.Read(args) {
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		logger := logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.DebugLevel)
		mainDebugLogger = logger
	}

	b, err := browser.NewBrowser(browser.Options{
		RemoteURL: params.chromeURL,
		ExecPath:  params.chromePath,
		Headless:  params.headless,
		Logger:    mainDebugLogger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Browser error: %s\n", err)
		return 1
	}
	defer b.Close()

	h, err := harness.NewTestHarness(
		params.pageURL,
		b,
		statusQueryTimeout,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Page under test error: %s\n", err)
		return 1
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	config := countertests.Config{
		FixtureName:       params.fixtureName,
		CounterSelector:   params.counterSelector,
		IncrementSelector: params.incrementSelector,
		WaitTimeout:       params.waitTimeout,
		Repeat:            params.repeat,
	}

	results := countertests.RunTestSuite(h, fixture.Loader{Dir: params.fixtureDir}, config,
		params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(args[0], params, results.Failures))
		return 1
	}
	return 0
}
