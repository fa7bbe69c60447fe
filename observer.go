package datavalidator

// Result is the outcome of one step of a validation run.
type Result string

const (
	// ResultPassed means the check returned true.
	ResultPassed Result = "passed"
	// ResultFailed means the check returned false and an error was recorded.
	ResultFailed Result = "failed"
	// ResultSkipped means a short-circuit rule skipped the whole field.
	ResultSkipped Result = "skipped"
	// ResultUnresolved means the check string was malformed or named an
	// unknown check type.
	ResultUnresolved Result = "unresolved"
)

// Outcome describes one reported step. Check holds the raw check string
// and is empty for skipped fields.
type Outcome struct {
	Field  string
	Check  string
	Input  any
	Result Result
}

// Observer receives every outcome of a validation run, in order.
// It is called synchronously from Validate.
type Observer func(Outcome)
