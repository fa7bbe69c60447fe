package messages

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
)

var (
	// %%token%% placeholders, resolved against the referenced fields
	referenceToken = regexp.MustCompile(`%%([^%]+)%%`)
	// %token% placeholders, resolved against the render context
	contextToken = regexp.MustCompile(`%([^%]+)%`)
	// name[key] form of a context token
	indexedToken = regexp.MustCompile(`^(\w+)\[([^\[\]]+)\]$`)
)

const (
	listSeparator = ", "
	allKey        = "..."
	remainingKey  = "...!"
)

// Context carries everything a template may refer to when rendering the
// message of one failed check.
type Context struct {
	Field     string
	CheckType string
	Input     any
	Params    rulespec.Params
	// Aliases maps field names to display names.
	Aliases map[string]string
}

func (c Context) displayName(field string) string {
	if alias, ok := c.Aliases[field]; ok {
		return alias
	}
	return field
}

// Renderer resolves message templates and substitutes their placeholders.
// Custom messages registered on a Renderer persist for its lifetime.
type Renderer struct {
	catalog Catalog
	byType  map[string]string
	byField map[string]map[string]string
}

// NewRenderer creates a renderer on top of the given default catalog.
func NewRenderer(catalog Catalog) *Renderer {
	return &Renderer{
		catalog: catalog.Clone(),
		byType:  make(map[string]string),
		byField: make(map[string]map[string]string),
	}
}

// AddMessage overrides the catalog template of checkType for every field.
func (r *Renderer) AddMessage(message, checkType string) error {
	if checkType == "" {
		return fmt.Errorf("%w: empty check type", ErrInvalidArgument)
	}
	r.byType[checkType] = message
	return nil
}

// AddFieldMessage sets the template used when checkType fails on field.
// It takes precedence over AddMessage and the catalog.
func (r *Renderer) AddFieldMessage(message, checkType, field string) error {
	if checkType == "" {
		return fmt.Errorf("%w: empty check type", ErrInvalidArgument)
	}
	if field == "" {
		return r.AddMessage(message, checkType)
	}
	if r.byField[field] == nil {
		r.byField[field] = make(map[string]string)
	}
	r.byField[field][checkType] = message
	return nil
}

// Template returns the template for a failed check. Field-specific custom
// messages win over type-wide custom messages, which win over the catalog.
// It returns "" when none is configured.
func (r *Renderer) Template(field, checkType string) string {
	if tmpl, ok := r.byField[field][checkType]; ok {
		return tmpl
	}
	if tmpl, ok := r.byType[checkType]; ok {
		return tmpl
	}
	if tmpl, ok := r.catalog.Template(checkType); ok {
		return tmpl
	}
	return ""
}

// Message resolves the template for c and renders it.
func (r *Renderer) Message(c Context) string {
	return Render(r.Template(c.Field, c.CheckType), c)
}

// Render substitutes the placeholders of tmpl in two passes.
//
// The first pass replaces %%token%% with the display names of referenced
// fields: a position resolves to the alias or name of the field it was read
// from, and "..." lists every referenced field followed by the values of the
// remaining parameters. Tokens without a referenced field fall back to
// %params[token]% for the second pass.
//
// The second pass replaces %field% (alias aware), %input%, %check%,
// %params% and %params[key]% where key is a position, "..." (all values) or
// "...!" (values not shown by the first pass, each prefixed with ", ").
// Unknown tokens render as "".
//
// Substituted text is never scanned again, so values containing "%" are
// emitted as is.
func Render(tmpl string, c Context) string {
	if tmpl == "" {
		return ""
	}
	out := replaceTokens(tmpl, referenceToken, c.resolveReference)
	return replaceTokens(out, contextToken, c.resolveContext)
}

// replaceTokens substitutes every match of re from left to right.
func replaceTokens(s string, re *regexp.Regexp, resolve func(token string) string) string {
	var b strings.Builder
	for {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:loc[0]])
		b.WriteString(resolve(s[loc[2]:loc[3]]))
		s = s[loc[1]:]
	}
}

func (c Context) resolveReference(token string) string {
	replaced := c.Params.Replaced
	if len(replaced) > 0 {
		if token == allKey {
			positions := make([]int, 0, len(replaced))
			for pos := range replaced {
				positions = append(positions, pos)
			}
			slices.Sort(positions)

			names := make([]string, 0, len(positions))
			for _, pos := range positions {
				names = append(names, c.displayName(replaced[pos]))
			}
			return strings.Join(names, listSeparator) + "%params[" + remainingKey + "]%"
		}
		if pos, ok := parseIndex(token); ok {
			if field, ok := replaced[pos]; ok {
				return c.displayName(field)
			}
		}
	}
	return "%params[" + token + "]%"
}

func (c Context) resolveContext(token string) string {
	if m := indexedToken.FindStringSubmatch(token); m != nil {
		values, ok := c.list(m[1])
		if !ok {
			return ""
		}
		return c.resolveIndexed(values, m[2])
	}

	switch token {
	case "field":
		return c.displayName(c.Field)
	case "input":
		return stringify(c.Input)
	case "check", "check_type":
		return c.CheckType
	case "params":
		return joinValues(c.Params.Values)
	default:
		return ""
	}
}

func (c Context) list(name string) ([]any, bool) {
	if name == "params" {
		return c.Params.Values, true
	}
	return nil, false
}

func (c Context) resolveIndexed(values []any, key string) string {
	switch key {
	case allKey:
		return joinValues(values)
	case remainingKey:
		var b strings.Builder
		for i, v := range values {
			if c.Params.IsReplaced(i) {
				continue
			}
			b.WriteString(listSeparator)
			b.WriteString(stringify(v))
		}
		return b.String()
	default:
		i, ok := parseIndex(key)
		if !ok || i >= len(values) {
			return ""
		}
		return stringify(values[i])
	}
}

// parseIndex accepts canonical non-negative integers only.
func parseIndex(s string) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || strconv.Itoa(i) != s {
		return 0, false
	}
	return i, true
}

func joinValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, stringify(v))
	}
	return strings.Join(parts, listSeparator)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}
