package messages

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"maps"
	"os"
)

//go:embed data/messages.yaml
var bundled embed.FS

// Catalog maps a check type to its default message template.
type Catalog map[string]string

// Template returns the template for checkType.
func (c Catalog) Template(checkType string) (string, bool) {
	tmpl, ok := c[checkType]
	return tmpl, ok
}

// Clone returns a copy of the catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return make(Catalog)
	}
	return maps.Clone(c)
}

// LoadCatalog reads and parses the catalog file at path, choosing the
// parser from the file extension.
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFailedToReadFile)
	}

	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return make(Catalog), nil
	}

	catalog, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return catalog, nil
}

// DefaultCatalog returns the catalog bundled with the package.
func DefaultCatalog() Catalog {
	content, err := bundled.ReadFile("data/messages.yaml")
	if err != nil {
		panic(fmt.Sprintf("messages: bundled catalog missing: %v", err))
	}
	catalog, err := NewYAMLParser().Parse(context.Background(), content)
	if err != nil {
		panic(fmt.Sprintf("messages: bundled catalog invalid: %v", err))
	}
	return catalog
}
