package errorstore

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/datavalidator/pkg/messages"
	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
)

// Store accumulates the rendered errors, internal diagnostics and field
// aliases of one validation run. Custom messages live in the renderer and
// survive ClearMessages.
//
// A Store is not safe for concurrent use.
type Store struct {
	renderer *messages.Renderer
	errors   map[string][]string
	fields   []string
	debug    []string
	aliases  map[string]string
}

// New creates an empty store rendering messages with renderer.
func New(renderer *messages.Renderer) *Store {
	if renderer == nil {
		renderer = messages.NewRenderer(nil)
	}
	return &Store{
		renderer: renderer,
		errors:   make(map[string][]string),
		aliases:  make(map[string]string),
	}
}

// SetAliases replaces the registered field aliases.
func (s *Store) SetAliases(aliases map[string]string) {
	s.aliases = maps.Clone(aliases)
	if s.aliases == nil {
		s.aliases = make(map[string]string)
	}
}

// Alias returns the display alias registered for field.
func (s *Store) Alias(field string) (string, bool) {
	alias, ok := s.aliases[field]
	return alias, ok
}

// ClearMessages drops the errors and diagnostics of the previous run.
func (s *Store) ClearMessages() {
	s.errors = make(map[string][]string)
	s.fields = nil
	s.debug = nil
}

// SetError renders the message of a failed check and appends it to the
// field's errors. Calls with an empty field or check type are ignored.
func (s *Store) SetError(field, checkType string, input any, params rulespec.Params) {
	if field == "" || checkType == "" {
		return
	}

	msg := s.renderer.Message(messages.Context{
		Field:     field,
		CheckType: checkType,
		Input:     input,
		Params:    params,
		Aliases:   s.aliases,
	})

	if _, seen := s.errors[field]; !seen {
		s.fields = append(s.fields, field)
	}
	s.errors[field] = append(s.errors[field], msg)
}

// SetDebugError records an internal diagnostic. Empty messages are ignored.
func (s *Store) SetDebugError(message string) {
	if message == "" {
		return
	}
	s.debug = append(s.debug, message)
}

// AddMessage overrides the template of checkType for every field.
func (s *Store) AddMessage(message, checkType string) error {
	return s.renderer.AddMessage(message, checkType)
}

// AddFieldMessage overrides the template of checkType for one field.
func (s *Store) AddFieldMessage(message, checkType, field string) error {
	return s.renderer.AddFieldMessage(message, checkType, field)
}

// Errors returns a copy of all errors keyed by field.
func (s *Store) Errors() map[string][]string {
	out := make(map[string][]string, len(s.errors))
	for field, msgs := range s.errors {
		out[field] = slices.Clone(msgs)
	}
	return out
}

// FieldErrors returns the errors of field, or an empty slice.
func (s *Store) FieldErrors(field string) []string {
	msgs := s.errors[field]
	if len(msgs) == 0 {
		return []string{}
	}
	return slices.Clone(msgs)
}

// Error returns the error of field at index, or ErrNotFound.
func (s *Store) Error(field string, index int) (string, error) {
	msgs := s.errors[field]
	if index < 0 || index >= len(msgs) {
		return "", fmt.Errorf("%w: field %q index %d", ErrNotFound, field, index)
	}
	return msgs[index], nil
}

// Fields returns the fields holding errors in the order they first failed.
func (s *Store) Fields() []string {
	return slices.Clone(s.fields)
}

// DebugErrors returns the recorded internal diagnostics.
func (s *Store) DebugErrors() []string {
	return slices.Clone(s.debug)
}

// Count returns the number of fields with at least one error.
func (s *Store) Count() int {
	return len(s.errors)
}
