// Package datavalidator validates map-shaped input data against ordered,
// per-field chains of named checks and collects a rendered error message
// for every failed check.
//
// Rules map a field key to its check chain. A key is either a field name or
// "name;Alias", where the alias replaces the name in messages. A check is
// written as "type;param1;param2"; a parameter written as "%other%" is
// replaced with the current value of field "other".
//
//	rules := rulespec.Rules{}.
//		Add("email;Email Address", "required", "email").
//		Add("age", "required", "lwth;18").
//		Add("confirm_password;Confirm Password", "matchci;%password%")
//
//	v := datavalidator.New()
//	v.Validate(data, rules, false)
//	if v.Failed() {
//		for field, msgs := range v.Errors() {
//			// ...
//		}
//	}
//
// # Short-circuit rules
//
// Before a field's chain runs, short-circuit rules may reduce it. By
// default an empty input (nil or "") on a field with a "required" check
// runs only that check, and an empty input on a field without one skips
// the field entirely. AddShortCircuit adds more rules.
//
// # Checks
//
// Built-in checks live in package checks and are looked up by type name.
// AddValidation registers a custom check that takes precedence over a
// built-in of the same type. Unknown check types and malformed check
// strings never fail a run: they are reported by DebugErrors and logged
// at debug level.
//
// # Messages
//
// Message templates come from a catalog (the bundled one by default, or a
// JSON or YAML file via WithCatalogFile) and can be overridden per check
// type with AddMessage or per field with AddFieldMessage. Templates use
// %field%, %input%, %check%, %params%, %params[i]%, %params[...]% and the
// position references %%i%% and %%...%%, which render the alias of the
// field a parameter was read from.
//
// A Validator is not safe for concurrent use.
package datavalidator
