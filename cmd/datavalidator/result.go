package main

import (
	"github.com/dmitrymomot/datavalidator"
	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
)

// FieldResult holds the messages of one failed field.
type FieldResult struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// Result is the printable outcome of a validate run.
type Result struct {
	Passed bool          `json:"passed"`
	Fields []FieldResult `json:"fields,omitempty"`
	Debug  []string      `json:"debug,omitempty"`
}

// NewResult collects the failed fields of v in rule order.
func NewResult(v *datavalidator.Validator, rules rulespec.Rules, debug bool) *Result {
	r := &Result{Passed: v.Passed()}

	errs := v.Errors()
	for _, name := range fieldOrder(rules) {
		if msgs, ok := errs[name]; ok {
			r.Fields = append(r.Fields, FieldResult{Field: name, Messages: msgs})
			delete(errs, name)
		}
	}
	// fields outside the rule set cannot fail, but keep the output complete
	for _, name := range sortedKeys(errs) {
		r.Fields = append(r.Fields, FieldResult{Field: name, Messages: errs[name]})
	}

	if debug {
		r.Debug = v.DebugErrors()
	}
	return r
}
