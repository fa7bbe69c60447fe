// Package rulespec parses the string-based rule language used by the
// validation engine.
//
// A rule set maps field keys to ordered check chains:
//
//	rules := rulespec.Rules{}.
//	    Add("email;Email Address", "required", "email").
//	    Add("confirm_password", "matchci;%password%")
//
// Field keys follow the grammar `name (';' alias)?`. Check strings follow
// `type (';' param)*`, where a parameter written as `%otherField%` is a
// cross-field reference resolved against the input data at validation time.
// CheckSpec.Resolve returns the runtime values together with the positions
// that were replaced, so message rendering can name the referenced fields.
//
// Rules decode from YAML (and therefore JSON) mappings with document order
// preserved, see LoadRules.
package rulespec
