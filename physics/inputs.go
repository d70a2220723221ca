package physics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DefaultTheta is the polar angle used when a request omits theta: the
// equatorial plane, where sin^2(theta) = 1.
const DefaultTheta = math.Pi / 2

// DefaultHubbleParameter is used by the FLRW solver when the request does
// not supply one, in km/s/Mpc.
const DefaultHubbleParameter = 70.0

// number extracts a numeric field from a loosely-typed inputs map.
// JSON numbers arrive as float64; json.Number, Go integer kinds, and
// numeric strings are accepted too. Returns present=false when the field
// is absent or null.
func number(inputs map[string]any, field string) (value float64, present bool, err error) {
	raw, ok := inputs[field]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, convErr := v.Float64()
		if convErr != nil {
			return 0, true, &InputError{Field: field, Message: fmt.Sprintf("field %q is not a number: %v", field, convErr)}
		}
		return f, true, nil
	case string:
		f, convErr := strconv.ParseFloat(v, 64)
		if convErr != nil {
			return 0, true, &InputError{Field: field, Message: fmt.Sprintf("field %q is not a number: %q", field, v)}
		}
		return f, true, nil
	default:
		return 0, true, &InputError{Field: field, Message: fmt.Sprintf("field %q has unsupported type %T", field, raw)}
	}
}

// requireNumber extracts a numeric field that must be present.
func requireNumber(inputs map[string]any, field string) (float64, error) {
	v, present, err := number(inputs, field)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, missingField(field)
	}
	return v, nil
}

// numberOr extracts a numeric field, substituting def when absent.
func numberOr(inputs map[string]any, field string, def float64) (float64, error) {
	v, present, err := number(inputs, field)
	if err != nil {
		return 0, err
	}
	if !present {
		return def, nil
	}
	return v, nil
}

// stringField extracts a string field; present=false when absent or not a
// string.
func stringField(inputs map[string]any, field string) (string, bool) {
	raw, ok := inputs[field]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
