// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of end-to-end tests.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 2. Each test captures its own debug output, which a TestLogger can print when the test
// finishes.
//
// The domain-specific code that knows what is being tested is responsible for providing
// a domain-specific test API on top of the test context. Finding and talking to the
// application under test is the job of the harness subpackage.
package framework
