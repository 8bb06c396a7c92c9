// Package pagedef describes the contract between the tests and the counter application: where
// it is served, which elements the tests interact with, and the shape of the fixture data.
//
// None of this is enforced by the application itself, so if the application changes these
// values must change with it.
package pagedef

const (
	// DefaultBaseURL is where the counter application is expected to be served.
	DefaultBaseURL = "http://localhost:3000"

	// CounterSelector is the element whose text content is the current counter value.
	CounterSelector = "#counter"

	// IncrementSelector is the control that increments the counter when clicked.
	IncrementSelector = "#increment"

	// CounterFixtureName is the name of the fixture resource with the expected counter values.
	CounterFixtureName = "counter"

	FieldInitial     = "initial"
	FieldIncremented = "incremented"
)
