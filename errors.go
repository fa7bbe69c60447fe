package datavalidator

import (
	"errors"

	"github.com/dmitrymomot/datavalidator/pkg/errorstore"
)

var (
	// ErrInvalidArgument is returned when a custom check, short-circuit rule
	// or custom message is registered with missing or empty arguments.
	// The underlying package error is joined to it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned by Error when the field has no message at the
	// requested index.
	ErrNotFound = errorstore.ErrNotFound
)
