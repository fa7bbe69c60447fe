// Package messages turns failed checks into human-readable messages.
//
// A Renderer picks a template for a failed check, first match wins:
//
//  1. a custom message for the (field, check type) pair (AddFieldMessage);
//  2. a custom message for the check type (AddMessage);
//  3. the default catalog entry for the check type;
//  4. the empty string.
//
// Templates are plain text with placeholders:
//
//	%field%            field alias, or the field name when no alias is set
//	%input%            the validated input
//	%check%            the check type
//	%params%           all parameter values joined with ", "
//	%params[0]%        a single parameter value
//	%params[...]%      all parameter values joined with ", "
//	%%0%%              name of the field a parameter was read from
//	%%...%%            names of all referenced fields, then the literal values
//
// Catalogs are flat "check type: template" mappings loaded from JSON or
// YAML files with LoadCatalog. DefaultCatalog returns the bundled English
// catalog.
package messages
