package shortcircuit

// Action is the outcome of evaluating short-circuit rules for a field.
type Action int

const (
	// Run executes the full, unmodified chain.
	Run Action = iota
	// Collapse executes only the check that triggered the rule.
	Collapse
	// Skip runs no checks and records no errors for the field.
	Skip
)

func (a Action) String() string {
	switch a {
	case Collapse:
		return "collapse"
	case Skip:
		return "skip"
	default:
		return "run"
	}
}

// Decision describes which checks of a chain are executed.
type Decision struct {
	Action Action
	// Checks is the chain to run. Nil when the field is skipped.
	Checks []string
	// Rule is the rule that matched, nil when no rule did.
	Rule *Rule
}

// Evaluator applies short-circuit rules in registration order.
// It is not safe to call Add concurrently with Evaluate.
type Evaluator struct {
	rules []Rule
}

// NewEvaluator creates an evaluator holding the default rules followed by extra.
func NewEvaluator(extra ...Rule) *Evaluator {
	rules := DefaultRules()
	rules = append(rules, extra...)
	return &Evaluator{rules: rules}
}

// Add appends a rule. Appended rules are consulted after the existing ones.
func (e *Evaluator) Add(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Rules returns a copy of the registered rules in evaluation order.
func (e *Evaluator) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Evaluate decides which checks of chain run for the given input.
// The first matching rule wins; the chain is only ever reduced.
func (e *Evaluator) Evaluate(chain []string, input any) Decision {
	for i := range e.rules {
		rule := &e.rules[i]

		check, present := rule.find(chain)
		if present == rule.Negated {
			continue
		}
		if !rule.triggeredBy(input) {
			continue
		}

		matched := *rule
		if !rule.RunCheck {
			return Decision{Action: Skip, Rule: &matched}
		}
		if rule.Negated {
			// No check to collapse to: the rule only stops evaluation.
			return Decision{Action: Run, Checks: chain, Rule: &matched}
		}
		return Decision{Action: Collapse, Checks: []string{check}, Rule: &matched}
	}

	return Decision{Action: Run, Checks: chain}
}
