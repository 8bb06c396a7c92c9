// Package countertests contains the end-to-end tests for the counter application and their
// supporting API.
//
// Test harness infrastructure that is not specific to the counter application, such as test
// contexts, filtering, and reporting, is in the lower-level framework package. Browser
// automation is in the browser package.
package countertests
