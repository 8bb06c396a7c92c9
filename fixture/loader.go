package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const fileExtension = ".json"

// ErrNotFound is returned, wrapped, when a fixture resource does not exist.
var ErrNotFound = errors.New("fixture not found")

// MalformedError means a fixture resource exists but could not be read or did not have the
// expected content.
type MalformedError struct {
	Name string
	Err  error
}

func (e MalformedError) Error() string {
	return fmt.Sprintf("fixture %q is malformed: %s", e.Name, e.Err)
}

func (e MalformedError) Unwrap() error {
	return e.Err
}

// Loader reads named fixtures from JSON files in a directory.
type Loader struct {
	Dir string
}

// Path returns the file that the named fixture is read from.
func (l Loader) Path(name string) string {
	if !strings.HasSuffix(name, fileExtension) {
		name += fileExtension
	}
	return filepath.Join(l.Dir, name)
}

// Load reads a fixture as an arbitrary JSON value. Every call reads the file again.
func (l Loader) Load(name string) (ldvalue.Value, error) {
	path := l.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ldvalue.Null(), fmt.Errorf("%w: %q (no file at %s)", ErrNotFound, name, path)
		}
		return ldvalue.Null(), MalformedError{Name: name, Err: err}
	}
	var value ldvalue.Value
	if err := json.Unmarshal(data, &value); err != nil {
		return ldvalue.Null(), MalformedError{Name: name, Err: fmt.Errorf("not valid JSON: %w", err)}
	}
	return value, nil
}

// LoadCounterData reads a fixture and parses it as CounterData.
func (l Loader) LoadCounterData(name string) (CounterData, error) {
	value, err := l.Load(name)
	if err != nil {
		return CounterData{}, err
	}
	data, err := ParseCounterData(value)
	if err != nil {
		return CounterData{}, MalformedError{Name: name, Err: err}
	}
	return data, nil
}
