// Package normalizer converts raw store documents into canonical entities.
// Every function here is total: any input shape maps to a fully populated
// record with deterministic fallbacks, so no optional or mistyped value
// leaks past this boundary.
package normalizer

import (
	"math"
	"strconv"
)

// toNumber coerces a raw value to a finite float64. Numeric strings are
// parsed; NaN, infinities and non-numeric types fall back to 0.
func toNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}

		return v
	case float32:
		return toNumber(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}

		return parsed
	default:
		return 0
	}
}

// toString coerces a raw value to a string. Finite numbers are stringified;
// any other type falls back to the empty string.
func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}

		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return toString(float64(v))
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// toMoney coerces a raw value to a non-negative amount.
func toMoney(value any) float64 {
	return math.Max(0, toNumber(value))
}

// toMillis coerces a raw value to a positive epoch-milliseconds timestamp,
// returning 0 when the value is absent or not a positive number.
func toMillis(value any) int64 {
	n := toNumber(value)
	if n <= 0 {
		return 0
	}

	return int64(n)
}
