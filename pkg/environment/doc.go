// Package environment names the application environments (development,
// staging and production) used to pick logging defaults.
//
// Parse accepts the full names as well as the short forms "dev", "stage"
// and "prod" and falls back to Development:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
package environment
