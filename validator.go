package datavalidator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/datavalidator/pkg/checks"
	"github.com/dmitrymomot/datavalidator/pkg/errorstore"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
	"github.com/dmitrymomot/datavalidator/pkg/messages"
	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
	"github.com/dmitrymomot/datavalidator/pkg/shortcircuit"
)

const component = "validator"

// Validator checks input data against ordered per-field rule chains and
// collects a rendered error message for every failed check.
//
// Configuration (custom checks, short-circuit rules, custom messages) is
// kept across runs; errors and diagnostics are reset by each Validate call.
// A Validator is not safe for concurrent use.
type Validator struct {
	logger    *slog.Logger
	observer  Observer
	registry  *checks.Registry
	evaluator *shortcircuit.Evaluator
	store     *errorstore.Store
	catalog   func(context.Context) (messages.Catalog, error)

	// setupDebug holds construction diagnostics; they survive runs.
	setupDebug []string
}

// New creates a validator. Without options it renders messages from the
// bundled catalog and logs nothing.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger:    logger.Discard(),
		registry:  checks.NewRegistry(),
		evaluator: shortcircuit.NewEvaluator(),
		catalog:   bundledCatalog,
	}
	for _, opt := range opts {
		opt(v)
	}

	catalog, err := v.catalog(context.Background())
	if err != nil {
		v.logger.Warn("message catalog not loaded, using an empty catalog", logger.Error(err))
		v.setupDebug = append(v.setupDebug, fmt.Sprintf("The message catalog couldn't be loaded. [error: %v]", err))
		catalog = messages.Catalog{}
	}
	v.store = errorstore.New(messages.NewRenderer(catalog))

	return v
}

// Validate runs the rule set against data. Fields are processed in rule
// order. With singleFail, a field stops at its first failed check.
//
// Malformed check strings and unknown check types are recorded as
// diagnostics (see DebugErrors) and never abort the run.
func (v *Validator) Validate(data map[string]any, rules rulespec.Rules, singleFail bool) {
	fields, aliases := rules.Normalize()
	v.store.SetAliases(aliases)
	v.store.ClearMessages()

	for _, f := range fields {
		v.validateField(data, f, singleFail)
	}

	v.logger.Debug("validation finished",
		slog.Int("fields", len(fields)),
		logger.Count(v.store.Count()),
	)
}

func (v *Validator) validateField(data map[string]any, field rulespec.Field, singleFail bool) {
	input := data[field.Name]

	decision := v.evaluator.Evaluate(field.Checks, input)
	if decision.Action == shortcircuit.Skip {
		v.notify(Outcome{Field: field.Name, Input: input, Result: ResultSkipped})
		return
	}

	for _, raw := range decision.Checks {
		spec, err := rulespec.ParseCheck(raw)
		if err != nil {
			v.diagnose(field.Name, raw, input,
				fmt.Sprintf("The %s validation option for %s field is not usable.", raw, field.Name), err)
			continue
		}

		check, err := v.registry.Resolve(spec.Type)
		if err != nil {
			v.diagnose(field.Name, raw, input,
				fmt.Sprintf("The %s check isn't defined.", checks.Identifier(spec.Type)), err)
			continue
		}

		params := spec.Resolve(data)
		if check.Run(field.Name, input, params.Values) {
			v.notify(Outcome{Field: field.Name, Check: raw, Input: input, Result: ResultPassed})
			continue
		}

		v.store.SetError(field.Name, spec.Type, input, params)
		v.notify(Outcome{Field: field.Name, Check: raw, Input: input, Result: ResultFailed})
		if singleFail {
			return
		}
	}
}

func (v *Validator) diagnose(field, check string, input any, message string, err error) {
	v.store.SetDebugError(fmt.Sprintf("%s [field: %s | option: %s | input: %s]",
		message, field, check, formatInput(input)))
	v.logger.Debug("check not usable",
		logger.Field(field),
		logger.Check(check),
		logger.Input(input),
		logger.Error(err),
	)
	v.notify(Outcome{Field: field, Check: check, Input: input, Result: ResultUnresolved})
}

func (v *Validator) notify(o Outcome) {
	if v.observer != nil {
		v.observer(o)
	}
}

// Passed reports whether the last run recorded no errors.
func (v *Validator) Passed() bool {
	return v.store.Count() == 0
}

// Failed reports whether the last run recorded at least one error.
func (v *Validator) Failed() bool {
	return v.store.Count() != 0
}

// AddValidation registers a custom check under checkType. It takes
// precedence over a built-in check of the same type and replaces an
// earlier custom check.
func (v *Validator) AddValidation(checkType string, fn checks.Func) error {
	if err := v.registry.RegisterCustom(checkType, fn); err != nil {
		return errors.Join(ErrInvalidArgument, err)
	}
	return nil
}

// AddShortCircuit appends a short-circuit rule. A leading "!" on checkID
// makes the rule match fields whose chain lacks the check. When an input
// in triggerInputs matches, the chain is reduced to the matching check
// (runCheck true) or the field is skipped (runCheck false).
func (v *Validator) AddShortCircuit(checkID string, triggerInputs []any, runCheck bool) error {
	rule, err := shortcircuit.NewRule(checkID, triggerInputs, runCheck)
	if err != nil {
		return errors.Join(ErrInvalidArgument, err)
	}
	v.evaluator.Add(rule)
	return nil
}

// AddMessage overrides the message template of checkType for every field.
func (v *Validator) AddMessage(message, checkType string) error {
	if err := v.store.AddMessage(message, checkType); err != nil {
		return errors.Join(ErrInvalidArgument, err)
	}
	return nil
}

// AddFieldMessage overrides the message template of checkType for field.
// It takes precedence over AddMessage.
func (v *Validator) AddFieldMessage(message, checkType, field string) error {
	if err := v.store.AddFieldMessage(message, checkType, field); err != nil {
		return errors.Join(ErrInvalidArgument, err)
	}
	return nil
}

// Errors returns every recorded message keyed by field.
func (v *Validator) Errors() map[string][]string {
	return v.store.Errors()
}

// FieldErrors returns the messages of field in check order.
func (v *Validator) FieldErrors(field string) []string {
	return v.store.FieldErrors(field)
}

// Error returns the message of field at index or an error wrapping ErrNotFound.
func (v *Validator) Error(field string, index int) (string, error) {
	return v.store.Error(field, index)
}

// DebugErrors returns the internal diagnostics: construction problems
// followed by the problems of the last run.
func (v *Validator) DebugErrors() []string {
	out := make([]string, 0, len(v.setupDebug))
	out = append(out, v.setupDebug...)
	return append(out, v.store.DebugErrors()...)
}

// Err returns nil when the last run passed and a ValidationError otherwise.
func (v *Validator) Err() error {
	if v.Passed() {
		return nil
	}
	verr := NewValidationError()
	for _, field := range v.store.Fields() {
		for _, msg := range v.store.FieldErrors(field) {
			verr.Add(field, msg)
		}
	}
	return verr
}

func formatInput(input any) string {
	if input == nil {
		return ""
	}
	return fmt.Sprintf("%v", input)
}
