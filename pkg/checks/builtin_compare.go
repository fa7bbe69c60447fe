package checks

import (
	"unicode/utf8"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

func init() {
	Register("ValIn", func() Check { return In{} })
	Register("ValLwth", func() Check { return LowerThan{} })
	Register("ValGrth", func() Check { return GreaterThan{} })
	Register("ValMatch", func() Check { return Match{} })
	Register("ValMatchci", func() Check { return MatchCI{} })
	Register("ValMinLen", func() Check { return MinLen{} })
	Register("ValMaxLen", func() Check { return MaxLen{} })
}

// In passes when the input equals one of the parameters, compared by their
// string form. It fails when no parameters are given.
type In struct{}

func (In) Run(_ string, input any, params []any) bool {
	if len(params) == 0 {
		return false
	}
	value := toString(input)
	for _, p := range params {
		if toString(p) == value {
			return true
		}
	}
	return false
}

// LowerThan passes when the numeric input is strictly lower than the first parameter.
type LowerThan struct{}

func (LowerThan) Run(_ string, input any, params []any) bool {
	p, ok := firstParam(params)
	if !ok {
		return false
	}
	return toFloat(input) < toFloat(p)
}

// GreaterThan passes when the numeric input is strictly greater than the first parameter.
type GreaterThan struct{}

func (GreaterThan) Run(_ string, input any, params []any) bool {
	p, ok := firstParam(params)
	if !ok {
		return false
	}
	return toFloat(input) > toFloat(p)
}

// Match passes when the input equals the first parameter.
type Match struct{}

func (Match) Run(_ string, input any, params []any) bool {
	p, ok := firstParam(params)
	if !ok {
		return false
	}
	return toString(input) == toString(p)
}

// MatchCI passes when the input equals the first parameter ignoring case.
type MatchCI struct{}

func (MatchCI) Run(_ string, input any, params []any) bool {
	p, ok := firstParam(params)
	if !ok {
		return false
	}
	fold := cases.Fold()
	return fold.String(toString(input)) == fold.String(toString(p))
}

// MinLen passes when the input has at least as many characters as the first parameter.
type MinLen struct{}

func (MinLen) Run(_ string, input any, params []any) bool {
	limit, ok := intParam(params)
	if !ok {
		return false
	}
	return utf8.RuneCountInString(toString(input)) >= limit
}

// MaxLen passes when the input has at most as many characters as the first parameter.
type MaxLen struct{}

func (MaxLen) Run(_ string, input any, params []any) bool {
	limit, ok := intParam(params)
	if !ok {
		return false
	}
	return utf8.RuneCountInString(toString(input)) <= limit
}

func intParam(params []any) (int, bool) {
	p, ok := firstParam(params)
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(p)
	if err != nil {
		return 0, false
	}
	return n, true
}
