package messages

import "errors"

// Catalog loading errors. Parsing cancellation is kept separate so callers
// can tell timeouts from malformed files.
var (
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrLoadingCancelled  = errors.New("loading catalog file cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)

// ErrInvalidArgument is returned when a custom message is registered
// without a check type.
var ErrInvalidArgument = errors.New("invalid argument")
