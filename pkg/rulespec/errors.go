package rulespec

import "errors"

var (
	// ErrEmptyCheck is returned when a check string has no check type.
	ErrEmptyCheck = errors.New("check has no type")

	// ErrInvalidRules is returned when a rules document is not a mapping of
	// field keys to check lists.
	ErrInvalidRules = errors.New("invalid rules document")

	// ErrFailedToReadRules is returned when a rules file cannot be read.
	ErrFailedToReadRules = errors.New("failed to read rules file")
)
