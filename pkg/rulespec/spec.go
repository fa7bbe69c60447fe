package rulespec

import (
	"strings"
)

// Separator splits field keys into name and alias, and check strings into
// the check type and its parameters.
const Separator = ";"

// FieldKey is a parsed rule key in the form "name" or "name;alias".
type FieldKey struct {
	Name  string
	Alias string
}

// HasAlias reports whether the key carries a display alias.
func (k FieldKey) HasAlias() bool {
	return k.Alias != ""
}

// ParseFieldKey splits a rule key into the field name and its optional alias.
// Keys without a separator pass through unchanged.
func ParseFieldKey(key string) FieldKey {
	name, alias, found := strings.Cut(key, Separator)
	if !found {
		return FieldKey{Name: key}
	}
	return FieldKey{Name: name, Alias: alias}
}

// Param is a single check parameter. Ref is set when the parameter was
// written as "%otherField%" and must be dereferenced against the input data.
type Param struct {
	Value string
	Ref   string
}

// IsRef reports whether the parameter is a cross-field reference.
func (p Param) IsRef() bool {
	return p.Ref != ""
}

func parseParam(token string) Param {
	if len(token) > 2 && strings.HasPrefix(token, "%") && strings.HasSuffix(token, "%") {
		return Param{Value: token, Ref: token[1 : len(token)-1]}
	}
	return Param{Value: token}
}

// CheckSpec is a parsed check string in the form "type;p1;p2;...".
type CheckSpec struct {
	Raw    string
	Type   string
	Params []Param
}

// ParseCheck parses a single entry of a field's check chain.
// It returns ErrEmptyCheck when the string carries no check type.
func ParseCheck(raw string) (CheckSpec, error) {
	parts := strings.Split(raw, Separator)
	if parts[0] == "" {
		return CheckSpec{Raw: raw}, ErrEmptyCheck
	}

	spec := CheckSpec{
		Raw:    raw,
		Type:   parts[0],
		Params: make([]Param, 0, len(parts)-1),
	}
	for _, token := range parts[1:] {
		spec.Params = append(spec.Params, parseParam(token))
	}
	return spec, nil
}

// CheckType returns the type token of a raw check string without parsing
// its parameters.
func CheckType(raw string) string {
	typ, _, _ := strings.Cut(raw, Separator)
	return typ
}

// Params holds the runtime values of a check's parameters together with the
// positions that were resolved from other fields.
type Params struct {
	Values []any
	// Replaced maps a parameter position to the name of the field it was
	// read from.
	Replaced map[int]string
}

// Len returns the number of parameter values.
func (p Params) Len() int {
	return len(p.Values)
}

// IsReplaced reports whether the value at position i came from another field.
func (p Params) IsReplaced(i int) bool {
	_, ok := p.Replaced[i]
	return ok
}

// Resolve produces the runtime parameters for the check. Literal parameters
// pass through as strings; references are replaced with the referenced
// field's current input, or nil when the field is absent from data.
func (s CheckSpec) Resolve(data map[string]any) Params {
	params := Params{
		Values:   make([]any, 0, len(s.Params)),
		Replaced: make(map[int]string),
	}
	for i, p := range s.Params {
		if !p.IsRef() {
			params.Values = append(params.Values, p.Value)
			continue
		}
		params.Values = append(params.Values, data[p.Ref])
		params.Replaced[i] = p.Ref
	}
	return params
}
