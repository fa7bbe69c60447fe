package checks

import "errors"

var (
	// ErrUnknownCheck is returned when no custom or built-in check matches a type.
	ErrUnknownCheck = errors.New("check is not registered")

	// ErrInvalidArgument is returned for registration calls with missing data.
	ErrInvalidArgument = errors.New("invalid argument")
)
