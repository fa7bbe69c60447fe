package errorstore

import "errors"

// ErrNotFound is returned when a requested error message does not exist.
var ErrNotFound = errors.New("error message not found")
