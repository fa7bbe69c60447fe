package datavalidator_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datavalidator"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
	"github.com/dmitrymomot/datavalidator/pkg/shortcircuit"
)

func TestValidate_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("failed comparison records one message", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(
			map[string]any{"age": 20},
			rulespec.Rules{}.Add("age", "required", "lwth;18"),
			false,
		)

		assert.True(t, v.Failed())
		assert.Equal(t, []string{"The age field must be lower than 18."}, v.FieldErrors("age"))
	})

	t.Run("missing required field collapses to required and uses alias", func(t *testing.T) {
		for _, singleFail := range []bool{false, true} {
			v := datavalidator.New()
			v.Validate(
				map[string]any{},
				rulespec.Rules{}.Add("email;Email Address", "required", "email"),
				singleFail,
			)

			assert.Equal(t, []string{"The Email Address field is required."}, v.FieldErrors("email"))
			assert.Len(t, v.Errors(), 1)
		}
	})

	t.Run("cross field reference with case-insensitive match", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(
			map[string]any{"password": "Abc123", "confirm_password": "abc123"},
			rulespec.Rules{}.Add("confirm_password;Confirm Password", "matchci;%password%"),
			false,
		)

		assert.True(t, v.Passed())
		assert.NotContains(t, v.Errors(), "confirm_password")
	})

	t.Run("malformed check records a diagnostic and siblings still run", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(
			map[string]any{"age": 20},
			rulespec.Rules{}.Add("age", "required", "", "lwth;18"),
			false,
		)

		debug := v.DebugErrors()
		require.Len(t, debug, 1)
		assert.Equal(t, "The  validation option for age field is not usable. [field: age | option:  | input: 20]", debug[0])
		assert.Equal(t, []string{"The age field must be lower than 18."}, v.FieldErrors("age"))
	})
}

func TestValidate_ShortCircuitDefaults(t *testing.T) {
	t.Parallel()

	for _, input := range []any{nil, ""} {
		t.Run("required runs alone", func(t *testing.T) {
			var ran []string
			v := datavalidator.New(datavalidator.WithObserver(func(o datavalidator.Outcome) {
				ran = append(ran, o.Check)
			}))
			v.Validate(
				map[string]any{"name": input},
				rulespec.Rules{}.Add("name", "min_len;3", "required", "alpha"),
				false,
			)

			assert.Equal(t, []string{"required"}, ran)
			assert.Len(t, v.FieldErrors("name"), 1)
		})

		t.Run("optional empty field is skipped", func(t *testing.T) {
			var outcomes []datavalidator.Outcome
			v := datavalidator.New(datavalidator.WithObserver(func(o datavalidator.Outcome) {
				outcomes = append(outcomes, o)
			}))
			v.Validate(
				map[string]any{"nickname": input},
				rulespec.Rules{}.Add("nickname", "min_len;3", "alpha"),
				false,
			)

			assert.True(t, v.Passed())
			require.Len(t, outcomes, 1)
			assert.Equal(t, datavalidator.ResultSkipped, outcomes[0].Result)
			assert.Empty(t, outcomes[0].Check)
		})
	}

	t.Run("zero values are not empty", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(
			map[string]any{"count": 0, "flag": false},
			rulespec.Rules{}.
				Add("count", "grth;5").
				Add("flag", "in;true"),
			false,
		)

		assert.Len(t, v.FieldErrors("count"), 1)
		assert.Len(t, v.FieldErrors("flag"), 1)
	})

	t.Run("required match ignores case", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(
			map[string]any{},
			rulespec.Rules{}.Add("name", "REQUIRED", "alpha"),
			false,
		)
		assert.Len(t, v.FieldErrors("name"), 1)
	})
}

func TestValidate_SingleFail(t *testing.T) {
	t.Parallel()

	rules := rulespec.Rules{}.Add("age", "lwth;18", "grth;30", "in;1;2")
	data := map[string]any{"age": 20}

	t.Run("all failing checks recorded", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(data, rules, false)
		assert.Len(t, v.FieldErrors("age"), 3)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(data, rules, true)
		assert.Equal(t, []string{"The age field must be lower than 18."}, v.FieldErrors("age"))
	})

	t.Run("other fields still validated", func(t *testing.T) {
		v := datavalidator.New()
		v.Validate(
			map[string]any{"age": 20, "name": "x1"},
			rules.Add("name", "alpha", "min_len;3"),
			true,
		)
		assert.Len(t, v.FieldErrors("age"), 1)
		assert.Len(t, v.FieldErrors("name"), 1)
	})
}

func TestValidate_UnknownCheck(t *testing.T) {
	t.Parallel()

	var outcomes []datavalidator.Outcome
	v := datavalidator.New(datavalidator.WithObserver(func(o datavalidator.Outcome) {
		outcomes = append(outcomes, o)
	}))
	v.Validate(
		map[string]any{"code": "abc"},
		rulespec.Rules{}.Add("code", "no_such_check;1", "alpha"),
		false,
	)

	assert.True(t, v.Passed())
	require.Len(t, v.DebugErrors(), 1)
	assert.Equal(t, "The ValNoSuchCheck check isn't defined. [field: code | option: no_such_check;1 | input: abc]", v.DebugErrors()[0])

	require.Len(t, outcomes, 2)
	assert.Equal(t, datavalidator.ResultUnresolved, outcomes[0].Result)
	assert.Equal(t, datavalidator.ResultPassed, outcomes[1].Result)
}

func TestValidate_ResetsBetweenRuns(t *testing.T) {
	t.Parallel()

	v := datavalidator.New()
	require.NoError(t, v.AddMessage("%field% is needed", "required"))

	v.Validate(map[string]any{"name": "x"}, rulespec.Rules{}.Add("name", "required", "", "in;a"), false)
	assert.True(t, v.Failed())
	assert.Len(t, v.DebugErrors(), 1)

	v.Validate(map[string]any{"name": "ok"}, rulespec.Rules{}.Add("name", "required"), false)
	assert.True(t, v.Passed())
	assert.Empty(t, v.Errors())
	assert.Empty(t, v.DebugErrors())

	v.Validate(map[string]any{}, rulespec.Rules{}.Add("name", "required"), false)
	assert.Equal(t, []string{"name is needed"}, v.FieldErrors("name"), "custom messages survive runs")
}

func TestValidate_DuplicateFieldKeys(t *testing.T) {
	t.Parallel()

	v := datavalidator.New()
	v.Validate(
		map[string]any{"age": 20},
		rulespec.Rules{}.
			Add("age;Your Age", "grth;30").
			Add("age", "lwth;18"),
		false,
	)

	assert.Equal(t, []string{"The Your Age field must be lower than 18."}, v.FieldErrors("age"))
}

func TestAddValidation(t *testing.T) {
	t.Parallel()

	t.Run("custom check overrides built-in", func(t *testing.T) {
		v := datavalidator.New()
		rules := rulespec.Rules{}.Add("age", "lwth;18")

		v.Validate(map[string]any{"age": 20}, rules, false)
		require.True(t, v.Failed())

		require.NoError(t, v.AddValidation("lwth", func(_ string, _ any, _ []any) bool { return true }))
		v.Validate(map[string]any{"age": 20}, rules, false)
		assert.True(t, v.Passed())
	})

	t.Run("custom check receives resolved params", func(t *testing.T) {
		var got []any
		v := datavalidator.New()
		require.NoError(t, v.AddValidation("even_with", func(field string, input any, params []any) bool {
			got = params
			return field == "b" && input == 4
		}))

		v.Validate(map[string]any{"a": 2, "b": 4}, rulespec.Rules{}.Add("b", "even_with;%a%;lit;%missing%"), false)
		assert.True(t, v.Passed())
		assert.Equal(t, []any{2, "lit", nil}, got)
	})

	t.Run("custom type is case sensitive", func(t *testing.T) {
		v := datavalidator.New()
		require.NoError(t, v.AddValidation("Starts", func(string, any, []any) bool { return true }))
		v.Validate(map[string]any{"x": "y"}, rulespec.Rules{}.Add("x", "starts"), false)
		assert.Len(t, v.DebugErrors(), 1)
	})

	t.Run("rejects invalid arguments", func(t *testing.T) {
		v := datavalidator.New()
		assert.ErrorIs(t, v.AddValidation("", func(string, any, []any) bool { return true }), datavalidator.ErrInvalidArgument)
		assert.ErrorIs(t, v.AddValidation("x", nil), datavalidator.ErrInvalidArgument)
	})
}

func TestAddShortCircuit(t *testing.T) {
	t.Parallel()

	t.Run("skip on sentinel input", func(t *testing.T) {
		v := datavalidator.New()
		require.NoError(t, v.AddShortCircuit("in", []any{"n/a"}, false))

		v.Validate(map[string]any{"color": "n/a"}, rulespec.Rules{}.Add("color", "in;red;green"), false)
		assert.True(t, v.Passed())
	})

	t.Run("collapse to matching check", func(t *testing.T) {
		var ran []string
		v := datavalidator.New(datavalidator.WithObserver(func(o datavalidator.Outcome) {
			ran = append(ran, o.Check)
		}))
		require.NoError(t, v.AddShortCircuit("in", []any{"none"}, true))

		v.Validate(map[string]any{"color": "none"}, rulespec.Rules{}.Add("color", "alpha", "in;red;green", "min_len;10"), false)
		assert.Equal(t, []string{"in;red;green"}, ran)
		assert.Len(t, v.FieldErrors("color"), 1)
	})

	t.Run("negated rule with run check keeps the chain", func(t *testing.T) {
		v := datavalidator.New()
		require.NoError(t, v.AddShortCircuit("!email", []any{"none"}, true))

		v.Validate(map[string]any{"color": "none"}, rulespec.Rules{}.Add("color", "in;red", "min_len;10"), false)
		assert.Len(t, v.FieldErrors("color"), 2)
	})

	t.Run("option appends rules", func(t *testing.T) {
		rule, err := shortcircuit.NewRule("!required", []any{"-"}, false)
		require.NoError(t, err)

		v := datavalidator.New(datavalidator.WithShortCircuits(rule))
		v.Validate(map[string]any{"note": "-"}, rulespec.Rules{}.Add("note", "min_len;5"), false)
		assert.True(t, v.Passed())
	})

	t.Run("rejects invalid arguments", func(t *testing.T) {
		v := datavalidator.New()
		assert.ErrorIs(t, v.AddShortCircuit("", []any{nil}, true), datavalidator.ErrInvalidArgument)
		assert.ErrorIs(t, v.AddShortCircuit("!", []any{nil}, true), datavalidator.ErrInvalidArgument)
		assert.ErrorIs(t, v.AddShortCircuit("in", nil, true), datavalidator.ErrInvalidArgument)
		assert.ErrorIs(t, v.AddShortCircuit("in", []any{}, true), shortcircuit.ErrInvalidRule)
	})
}

func TestMessages(t *testing.T) {
	t.Parallel()

	t.Run("field message wins over type message", func(t *testing.T) {
		v := datavalidator.New()
		require.NoError(t, v.AddMessage("%field% missing", "required"))
		require.NoError(t, v.AddFieldMessage("please enter %field%", "required", "email"))

		v.Validate(map[string]any{}, rulespec.Rules{}.Add("email;E-mail", "required").Add("name", "required"), false)
		assert.Equal(t, []string{"please enter E-mail"}, v.FieldErrors("email"))
		assert.Equal(t, []string{"name missing"}, v.FieldErrors("name"))
	})

	t.Run("reference renders referenced field alias", func(t *testing.T) {
		v := datavalidator.New()
		require.NoError(t, v.AddFieldMessage("%field% must match %%0%%", "matchci", "confirm_password"))

		v.Validate(
			map[string]any{"password": "Abc123", "confirm_password": "xyz"},
			rulespec.Rules{}.
				Add("password;Password", "required").
				Add("confirm_password;Confirm Password", "matchci;%password%"),
			false,
		)
		assert.Equal(t, []string{"Confirm Password must match Password"}, v.FieldErrors("confirm_password"))
	})

	t.Run("rejects empty check type", func(t *testing.T) {
		v := datavalidator.New()
		assert.ErrorIs(t, v.AddMessage("x", ""), datavalidator.ErrInvalidArgument)
		assert.ErrorIs(t, v.AddFieldMessage("x", "", "f"), datavalidator.ErrInvalidArgument)
	})
}

func TestErrorQueries(t *testing.T) {
	t.Parallel()

	v := datavalidator.New()
	v.Validate(
		map[string]any{"age": 20},
		rulespec.Rules{}.Add("name", "required").Add("age", "lwth;18", "grth;30"),
		false,
	)

	t.Run("index lookup matches map", func(t *testing.T) {
		for field, msgs := range v.Errors() {
			for i, want := range msgs {
				got, err := v.Error(field, i)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}
	})

	t.Run("missing entries", func(t *testing.T) {
		_, err := v.Error("age", 2)
		assert.ErrorIs(t, err, datavalidator.ErrNotFound)
		_, err = v.Error("email", 0)
		assert.ErrorIs(t, err, datavalidator.ErrNotFound)
		assert.Empty(t, v.FieldErrors("email"))
	})

	t.Run("err returns validation error", func(t *testing.T) {
		err := v.Err()
		require.Error(t, err)

		var verr datavalidator.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("name"))
		assert.Equal(t, v.FieldErrors("age"), verr["age"])
		assert.Equal(t, "The name field is required.", verr.Get("name"))
	})

	t.Run("err is nil when passed", func(t *testing.T) {
		ok := datavalidator.New()
		ok.Validate(map[string]any{"a": "x"}, rulespec.Rules{}.Add("a", "required"), false)
		assert.NoError(t, ok.Err())
	})
}

func TestCatalogOptions(t *testing.T) {
	t.Parallel()

	rules := rulespec.Rules{}.Add("age", "required", "lwth;18")

	t.Run("catalog file", func(t *testing.T) {
		v := datavalidator.New(datavalidator.WithCatalogFile("testdata/messages.json"))
		v.Validate(map[string]any{"age": 20}, rules, false)
		assert.Equal(t, []string{"age must stay under 18"}, v.FieldErrors("age"))
		assert.Empty(t, v.DebugErrors())
	})

	t.Run("missing catalog file leaves empty templates", func(t *testing.T) {
		buf := &bytes.Buffer{}
		v := datavalidator.New(
			datavalidator.WithLogger(logger.New(logger.WithOutput(buf))),
			datavalidator.WithCatalogFile("testdata/missing.json"),
		)
		require.Len(t, v.DebugErrors(), 1)
		assert.True(t, strings.HasPrefix(v.DebugErrors()[0], "The message catalog couldn't be loaded."))
		assert.Contains(t, buf.String(), "level=WARN")

		v.Validate(map[string]any{"age": 20}, rules, false)
		assert.Equal(t, []string{""}, v.FieldErrors("age"))
		assert.Len(t, v.DebugErrors(), 1, "construction diagnostics survive runs")
	})

	t.Run("inline catalog", func(t *testing.T) {
		v := datavalidator.New(datavalidator.WithCatalog(map[string]string{"lwth": "too big: %input%"}))
		v.Validate(map[string]any{"age": 20}, rules, false)
		assert.Equal(t, []string{"too big: 20"}, v.FieldErrors("age"))
	})

	t.Run("last catalog option wins", func(t *testing.T) {
		v := datavalidator.New(
			datavalidator.WithCatalog(map[string]string{"lwth": "inline"}),
			datavalidator.WithDefaultCatalog(),
		)
		v.Validate(map[string]any{"age": 20}, rules, false)
		assert.Equal(t, []string{"The age field must be lower than 18."}, v.FieldErrors("age"))
	})
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText), logger.WithLevel(-4))
	v := datavalidator.New(datavalidator.WithLogger(log))
	v.Validate(map[string]any{"x": "y"}, rulespec.Rules{}.Add("x", "bogus"), false)

	out := buf.String()
	assert.Contains(t, out, "check not usable")
	assert.Contains(t, out, "component=validator")
	assert.Contains(t, out, "field=x")
	assert.Contains(t, out, "check=bogus")
	assert.Contains(t, out, "validation finished")
}

func TestValidate_RulesFromFile(t *testing.T) {
	t.Parallel()

	rules, err := rulespec.LoadRules("testdata/rules.yaml")
	require.NoError(t, err)

	v := datavalidator.New()
	v.Validate(map[string]any{
		"email":            "user@example.com",
		"age":              "17",
		"password":         "secret1",
		"confirm_password": "SECRET1",
	}, rules, false)

	assert.True(t, v.Passed(), "errors: %v", v.Errors())

	v.Validate(map[string]any{"email": "nope", "age": 40, "password": "abc"}, rules, true)
	assert.Equal(t, map[string][]string{
		"email":            {"The Email Address field must be a valid email address."},
		"age":              {"The age field must be lower than 18."},
		"password":         {"The Password field must be at least 6 characters long."},
		"confirm_password": {"The Confirm Password field is required."},
	}, v.Errors())
}
