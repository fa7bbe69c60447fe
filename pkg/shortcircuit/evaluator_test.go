package shortcircuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datavalidator/pkg/shortcircuit"
)

func TestEvaluator_DefaultRules(t *testing.T) {
	t.Parallel()

	e := shortcircuit.NewEvaluator()

	t.Run("required with nil input collapses", func(t *testing.T) {
		d := e.Evaluate([]string{"email", "required", "lwth;18"}, nil)
		assert.Equal(t, shortcircuit.Collapse, d.Action)
		assert.Equal(t, []string{"required"}, d.Checks)
		require.NotNil(t, d.Rule)
		assert.Equal(t, "required", d.Rule.String())
	})

	t.Run("required with empty string collapses", func(t *testing.T) {
		d := e.Evaluate([]string{"required", "email"}, "")
		assert.Equal(t, shortcircuit.Collapse, d.Action)
		assert.Equal(t, []string{"required"}, d.Checks)
	})

	t.Run("required match is case-insensitive", func(t *testing.T) {
		d := e.Evaluate([]string{"REQUIRED", "email"}, nil)
		assert.Equal(t, shortcircuit.Collapse, d.Action)
		assert.Equal(t, []string{"REQUIRED"}, d.Checks)
	})

	t.Run("no required with empty input skips", func(t *testing.T) {
		d := e.Evaluate([]string{"email", "lwth;18"}, "")
		assert.Equal(t, shortcircuit.Skip, d.Action)
		assert.Nil(t, d.Checks)
		require.NotNil(t, d.Rule)
		assert.Equal(t, "!required", d.Rule.String())
	})

	t.Run("check with required prefix is not required", func(t *testing.T) {
		d := e.Evaluate([]string{"required_if;other"}, nil)
		assert.Equal(t, shortcircuit.Skip, d.Action)
	})

	t.Run("non empty input runs full chain", func(t *testing.T) {
		chain := []string{"required", "lwth;18"}
		d := e.Evaluate(chain, 20)
		assert.Equal(t, shortcircuit.Run, d.Action)
		assert.Equal(t, chain, d.Checks)
		assert.Nil(t, d.Rule)
	})

	t.Run("zero is not an empty input", func(t *testing.T) {
		d := e.Evaluate([]string{"lwth;18"}, 0)
		assert.Equal(t, shortcircuit.Run, d.Action)
	})
}

func TestEvaluator_CustomRules(t *testing.T) {
	t.Parallel()

	t.Run("appended rule collapses to its check with params", func(t *testing.T) {
		rule, err := shortcircuit.NewRule("in", []any{"n/a"}, true)
		require.NoError(t, err)

		e := shortcircuit.NewEvaluator()
		e.Add(rule)

		d := e.Evaluate([]string{"alpha", "in;yes;no"}, "n/a")
		assert.Equal(t, shortcircuit.Collapse, d.Action)
		assert.Equal(t, []string{"in;yes;no"}, d.Checks)
	})

	t.Run("appended rule skips field", func(t *testing.T) {
		rule, err := shortcircuit.NewRule("optional", []any{"-"}, false)
		require.NoError(t, err)

		e := shortcircuit.NewEvaluator(rule)
		d := e.Evaluate([]string{"optional", "email"}, "-")
		assert.Equal(t, shortcircuit.Skip, d.Action)
	})

	t.Run("defaults win over appended rules", func(t *testing.T) {
		rule, err := shortcircuit.NewRule("email", []any{nil}, false)
		require.NoError(t, err)

		e := shortcircuit.NewEvaluator(rule)
		d := e.Evaluate([]string{"required", "email"}, nil)
		assert.Equal(t, shortcircuit.Collapse, d.Action)
		assert.Equal(t, []string{"required"}, d.Checks)
	})

	t.Run("negated rule with run check keeps chain", func(t *testing.T) {
		rule, err := shortcircuit.NewRule("!strict", []any{"skip-me"}, true)
		require.NoError(t, err)
		assert.True(t, rule.Negated)

		chain := []string{"alpha", "min_len;3"}
		e := shortcircuit.NewEvaluator(rule)
		d := e.Evaluate(chain, "skip-me")
		assert.Equal(t, shortcircuit.Run, d.Action)
		assert.Equal(t, chain, d.Checks)
		require.NotNil(t, d.Rule)
		assert.Equal(t, "!strict", d.Rule.String())
	})

	t.Run("rules are returned in evaluation order", func(t *testing.T) {
		rule, err := shortcircuit.NewRule("x", []any{1}, true)
		require.NoError(t, err)

		rules := shortcircuit.NewEvaluator(rule).Rules()
		require.Len(t, rules, 3)
		assert.Equal(t, "x", rules[2].CheckID)
	})
}

func TestNewRule_Invalid(t *testing.T) {
	t.Parallel()

	_, err := shortcircuit.NewRule("", []any{nil}, true)
	assert.ErrorIs(t, err, shortcircuit.ErrInvalidRule)

	_, err = shortcircuit.NewRule("!", []any{nil}, true)
	assert.ErrorIs(t, err, shortcircuit.ErrInvalidRule)

	_, err = shortcircuit.NewRule("required", nil, true)
	assert.ErrorIs(t, err, shortcircuit.ErrInvalidRule)
}

func TestAction_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "run", shortcircuit.Run.String())
	assert.Equal(t, "collapse", shortcircuit.Collapse.String())
	assert.Equal(t, "skip", shortcircuit.Skip.String())
}
