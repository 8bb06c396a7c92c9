package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func writeFixture(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestLoadCounterData(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "counter.json", `{"initial": 0, "incremented": 1}`)
	loader := Loader{Dir: dir}

	data, err := loader.LoadCounterData("counter")
	require.NoError(t, err)
	assert.Equal(t, CounterData{Initial: 0, Incremented: 1}, data)

	data, err = loader.LoadCounterData("counter.json")
	require.NoError(t, err)
	assert.Equal(t, CounterData{Initial: 0, Incremented: 1}, data)
}

func TestLoadReadsFileEveryTime(t *testing.T) {
	dir := t.TempDir()
	loader := Loader{Dir: dir}
	writeFixture(t, dir, "counter.json", `{"initial": 0, "incremented": 1}`)
	first, err := loader.LoadCounterData("counter")
	require.NoError(t, err)

	writeFixture(t, dir, "counter.json", `{"initial": 5, "incremented": 6}`)
	second, err := loader.LoadCounterData("counter")
	require.NoError(t, err)

	assert.Equal(t, CounterData{Initial: 0, Incremented: 1}, first)
	assert.Equal(t, CounterData{Initial: 5, Incremented: 6}, second)
}

func TestLoadMissingFixture(t *testing.T) {
	_, err := Loader{Dir: t.TempDir()}.LoadCounterData("counter")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var malformed MalformedError
	assert.False(t, errors.As(err, &malformed))
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "counter.json", `{"initial": 0,`)
	_, err := Loader{Dir: dir}.Load("counter")
	require.Error(t, err)
	var malformed MalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "counter", malformed.Name)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestLoadCounterDataWithBadFields(t *testing.T) {
	for name, content := range map[string]string{
		"not an object":       `[0, 1]`,
		"missing initial":     `{"incremented": 1}`,
		"missing incremented": `{"initial": 0}`,
		"null field":          `{"initial": null, "incremented": 1}`,
		"string field":        `{"initial": "0", "incremented": 1}`,
		"boolean field":       `{"initial": 0, "incremented": true}`,
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFixture(t, dir, "counter.json", content)
			_, err := Loader{Dir: dir}.LoadCounterData("counter")
			require.Error(t, err)
			var malformed MalformedError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestParseCounterDataIgnoresOtherProperties(t *testing.T) {
	value := ldvalue.ObjectBuild().
		Set("initial", ldvalue.Int(2)).
		Set("incremented", ldvalue.Int(3)).
		Set("comment", ldvalue.String("x")).
		Build()
	data, err := ParseCounterData(value)
	require.NoError(t, err)
	assert.Equal(t, CounterData{Initial: 2, Incremented: 3}, data)
	assert.Equal(t, "{initial: 2, incremented: 3}", data.String())
}

func TestParseCounterDataErrorMessages(t *testing.T) {
	_, err := ParseCounterData(ldvalue.ArrayOf())
	assert.EqualError(t, err, "expected a JSON object, got array")

	_, err = ParseCounterData(ldvalue.ObjectBuild().Set("initial", ldvalue.Int(0)).Build())
	assert.EqualError(t, err, `required field "incremented" is missing`)

	_, err = ParseCounterData(ldvalue.ObjectBuild().Set("initial", ldvalue.String("0")).Build())
	assert.EqualError(t, err, `field "initial" must be a number, got string`)
}
