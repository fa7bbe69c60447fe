package checks

import (
	"github.com/spf13/cast"
)

// toString converts a dynamic value into its string form. Nil and values
// without a string form become "".
func toString(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

// toFloat converts a dynamic value into a float64, falling back to 0 for
// values that are not numeric.
func toFloat(v any) float64 {
	return cast.ToFloat64(v)
}

// firstParam returns the first parameter, reporting false when it is
// missing or nil.
func firstParam(params []any) (any, bool) {
	if len(params) == 0 || params[0] == nil {
		return nil, false
	}
	return params[0], true
}
