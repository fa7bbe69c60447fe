// Package errorstore holds the outcome of a validation run: rendered error
// messages per field, internal diagnostics and the field aliases used while
// rendering.
//
// Errors and diagnostics are cleared at the start of every run with
// ClearMessages and aliases are replaced with SetAliases. Custom messages
// are kept by the underlying messages.Renderer for the store's lifetime.
package errorstore
