// Package checks provides the Check capability, the registry that resolves
// check types to implementations, and the built-in checks.
//
// # Resolution
//
// Registry.Resolve looks up custom checks first; a custom check registered
// under a type always shadows the built-in of the same name. Otherwise the
// type is turned into a canonical identifier with Identifier ("lwth" becomes
// "ValLwth", "min_len" becomes "ValMinLen") and looked up among the
// built-ins registered with Register. Built-in instances are cached per
// registry, so implementations must be stateless.
//
// Other packages extend the built-in set by calling Register from an init
// function with an identifier that follows the same convention:
//
//	func init() {
//	    checks.Register("ValEven", func() checks.Check {
//	        return checks.Func(func(_ string, input any, _ []any) bool {
//	            n, err := cast.ToIntE(input)
//	            return err == nil && n%2 == 0
//	        })
//	    })
//	}
//
// # Built-ins
//
//	required            input is neither nil nor ""
//	email               valid email address
//	date                time.Time or a string holding a real date
//	datef;fmt...        date written in one of the formats
//	in;v...             input equals one of the values
//	lwth;n  grth;n      numeric lower / greater than
//	match;v matchci;v   equal, case-sensitive / case-insensitive
//	regex;pattern       matches a raw or delimited pattern
//	min_len;n max_len;n character length bounds
//	uuid url alpha alpha_num numeric
package checks
