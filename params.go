package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/counter-e2e-tests/browser"
	"github.com/launchdarkly/counter-e2e-tests/framework"
	"github.com/launchdarkly/counter-e2e-tests/pagedef"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
)

const (
	envURL       = "COUNTER_TESTS_URL"
	envFixtures  = "COUNTER_TESTS_FIXTURES"
	envChromeURL = "COUNTER_TESTS_CHROME_URL"

	defaultFixtureDir = "fixtures"
)

type commandParams struct {
	pageURL           string
	fixtureDir        string
	fixtureName       string
	chromeURL         string
	chromePath        string
	headless          bool
	counterSelector   string
	incrementSelector string
	waitTimeout       time.Duration
	repeat            int
	filters           framework.RegexFilters
	debug             bool
	debugAll          bool

	// passthrough holds the arguments other than -run and -skip, for building a rerun command.
	passthrough []string
}

// loadDotEnv reads a .env file in the current directory, if there is one. Variables that are
// already set in the environment take precedence.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func envOrDefault(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

func (c *commandParams) Read(args []string) bool {
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.StringVar(&c.pageURL, "url", envOrDefault(envURL, pagedef.DefaultBaseURL), "base URL of the counter application")
	flags.StringVar(&c.fixtureDir, "fixtures", envOrDefault(envFixtures, defaultFixtureDir), "directory containing fixture files")
	flags.StringVar(&c.fixtureName, "fixture", pagedef.CounterFixtureName, "name of the counter fixture")
	flags.StringVar(&c.chromeURL, "chrome-url", os.Getenv(envChromeURL), "DevTools websocket URL of a running browser")
	flags.StringVar(&c.chromePath, "chrome-path", "", "path of the Chrome executable to start")
	flags.BoolVar(&c.headless, "headless", true, "run Chrome without a window")
	flags.StringVar(&c.counterSelector, "counter-selector", pagedef.CounterSelector, "CSS selector of the counter element")
	flags.StringVar(&c.incrementSelector, "increment-selector", pagedef.IncrementSelector, "CSS selector of the increment control")
	flags.DurationVar(&c.waitTimeout, "timeout", browser.DefaultWaitTimeout, "how long to wait for the page to show an expected value")
	flags.IntVar(&c.repeat, "repeat", 1, "number of times to run the tests")
	flags.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	flags.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	flags.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	flags.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := flags.Parse(args[1:]); err != nil {
		return false
	}
	if len(flags.Args()) != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		return false
	}
	if c.repeat < 1 {
		fmt.Fprintln(os.Stderr, "-repeat must be at least 1")
		flags.Usage()
		return false
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name != "run" && f.Name != "skip" {
			c.passthrough = append(c.passthrough, "-"+f.Name+"="+f.Value.String())
		}
	})
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a command line that runs only the tests that failed, with the same
// parameters otherwise.
func rerunCommand(program string, params commandParams, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	b.add(params.passthrough...)
	for _, f := range failures {
		b.add("-run", framework.ExactPattern(f.TestID))
	}
	return b.String()
}
