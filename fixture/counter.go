package fixture

import (
	"fmt"

	"github.com/launchdarkly/counter-e2e-tests/pagedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CounterData is the expected state of the counter before and after one increment.
type CounterData struct {
	Initial     float64
	Incremented float64
}

func (d CounterData) String() string {
	return fmt.Sprintf("{initial: %s, incremented: %s}", FormatNumber(d.Initial), FormatNumber(d.Incremented))
}

// ParseCounterData requires a JSON object in which both fields are present and numeric. Other
// properties are ignored.
func ParseCounterData(value ldvalue.Value) (CounterData, error) {
	if value.Type() != ldvalue.ObjectType {
		return CounterData{}, fmt.Errorf("expected a JSON object, got %s", value.Type())
	}
	initial, err := requireNumber(value, pagedef.FieldInitial)
	if err != nil {
		return CounterData{}, err
	}
	incremented, err := requireNumber(value, pagedef.FieldIncremented)
	if err != nil {
		return CounterData{}, err
	}
	return CounterData{Initial: initial, Incremented: incremented}, nil
}

func requireNumber(object ldvalue.Value, key string) (float64, error) {
	v := object.GetByKey(key)
	switch v.Type() {
	case ldvalue.NumberType:
		return v.Float64Value(), nil
	case ldvalue.NullType:
		return 0, fmt.Errorf("required field %q is missing", key)
	default:
		return 0, fmt.Errorf("field %q must be a number, got %s", key, v.Type())
	}
}
