package shortcircuit

import "errors"

// ErrInvalidRule is returned when a rule has no check id or no trigger inputs.
var ErrInvalidRule = errors.New("invalid short-circuit rule")
