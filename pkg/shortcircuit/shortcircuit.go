package shortcircuit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
)

// RequiredCheck is the check type the default rules key on.
const RequiredCheck = "required"

// negationPrefix marks a rule that matches when the check is absent.
const negationPrefix = "!"

// Rule describes when a field's check chain is skipped or reduced.
type Rule struct {
	// CheckID is the check type looked up in the chain, compared case-insensitively.
	CheckID string
	// Negated rules match when the chain does not contain CheckID.
	Negated bool
	// TriggerInputs are the input values that activate the rule.
	TriggerInputs []any
	// RunCheck reduces the chain to the triggering check when true,
	// and skips the field when false.
	RunCheck bool
}

// NewRule builds a rule from a check id that may carry a leading "!" for
// negation. It returns ErrInvalidRule for an empty id or trigger set.
func NewRule(checkID string, triggerInputs []any, runCheck bool) (Rule, error) {
	negated := strings.HasPrefix(checkID, negationPrefix)
	id := strings.TrimPrefix(checkID, negationPrefix)
	if id == "" {
		return Rule{}, fmt.Errorf("%w: empty check id", ErrInvalidRule)
	}
	if len(triggerInputs) == 0 {
		return Rule{}, fmt.Errorf("%w: no trigger inputs for %q", ErrInvalidRule, checkID)
	}
	return Rule{
		CheckID:       id,
		Negated:       negated,
		TriggerInputs: append([]any(nil), triggerInputs...),
		RunCheck:      runCheck,
	}, nil
}

// String renders the rule id in its registration form.
func (r Rule) String() string {
	if r.Negated {
		return negationPrefix + r.CheckID
	}
	return r.CheckID
}

// DefaultRules returns the two built-in rules: an empty input on a field
// with "required" runs only that check, and an empty input on a field
// without it skips the field.
func DefaultRules() []Rule {
	empty := []any{nil, ""}
	return []Rule{
		{CheckID: RequiredCheck, TriggerInputs: empty, RunCheck: true},
		{CheckID: RequiredCheck, Negated: true, TriggerInputs: empty, RunCheck: false},
	}
}

// triggeredBy reports whether input is one of the rule's trigger values.
func (r Rule) triggeredBy(input any) bool {
	for _, v := range r.TriggerInputs {
		if reflect.DeepEqual(v, input) {
			return true
		}
	}
	return false
}

// find returns the first check in chain whose type matches the rule id.
func (r Rule) find(chain []string) (string, bool) {
	for _, raw := range chain {
		if strings.EqualFold(rulespec.CheckType(raw), r.CheckID) {
			return raw, true
		}
	}
	return "", false
}
