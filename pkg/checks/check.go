package checks

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Check is a single named validation predicate.
// Implementations must be deterministic and free of side effects: one
// instance is shared by every field and every run of a registry.
type Check interface {
	Run(field string, input any, params []any) bool
}

// Func adapts an ordinary function to the Check interface.
type Func func(field string, input any, params []any) bool

// Run calls f(field, input, params).
func (f Func) Run(field string, input any, params []any) bool {
	return f(field, input, params)
}

// Factory creates a built-in check instance.
type Factory func() Check

const (
	// IdentifierPrefix starts every built-in check identifier.
	IdentifierPrefix = "Val"
	wordDelimiter    = "_"
)

var builtins = make(map[string]Factory)

// Register makes a built-in check discoverable under identifier.
// It is meant to be called from init functions and panics on an empty
// identifier, a nil factory or a duplicate registration.
func Register(identifier string, factory Factory) {
	if identifier == "" || factory == nil {
		panic("checks: Register called with empty identifier or nil factory")
	}
	if _, exists := builtins[identifier]; exists {
		panic(fmt.Sprintf("checks: Register called twice for %s", identifier))
	}
	builtins[identifier] = factory
}

// Builtin returns the factory registered under identifier.
func Builtin(identifier string) (Factory, bool) {
	f, ok := builtins[identifier]
	return f, ok
}

// Identifiers lists the registered built-in identifiers in sorted order.
func Identifiers() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Identifier derives the canonical built-in identifier for a check type:
// the type is lower-cased, split on "_", every word is title-cased and the
// words are joined behind IdentifierPrefix ("min_len" becomes "ValMinLen").
func Identifier(checkType string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.WriteString(IdentifierPrefix)
	for _, word := range strings.Split(strings.ToLower(checkType), wordDelimiter) {
		b.WriteString(caser.String(word))
	}
	return b.String()
}
