package datavalidator

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/datavalidator/pkg/logger"
	"github.com/dmitrymomot/datavalidator/pkg/messages"
	"github.com/dmitrymomot/datavalidator/pkg/shortcircuit"
)

// Option configures a Validator.
type Option func(*Validator)

// WithCatalogFile loads default message templates from a JSON or YAML file.
// A missing, unreadable or invalid file leaves the validator with an empty
// catalog; the problem is logged and reported by DebugErrors.
func WithCatalogFile(path string) Option {
	return func(v *Validator) {
		v.catalog = func(ctx context.Context) (messages.Catalog, error) {
			return messages.LoadCatalog(ctx, path)
		}
	}
}

// WithDefaultCatalog uses the bundled English message templates.
// This is the default.
func WithDefaultCatalog() Option {
	return func(v *Validator) {
		v.catalog = bundledCatalog
	}
}

// WithCatalog uses the given check type to template mapping.
func WithCatalog(catalog map[string]string) Option {
	return func(v *Validator) {
		c := messages.Catalog(maps.Clone(catalog))
		v.catalog = func(context.Context) (messages.Catalog, error) {
			return c, nil
		}
	}
}

// WithLogger provides a logger for diagnostics.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l.With(logger.Component(component))
		}
	}
}

// WithObserver registers a callback notified of every check outcome.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		v.observer = o
	}
}

// WithShortCircuits appends rules after the built-in "required" rules.
func WithShortCircuits(rules ...shortcircuit.Rule) Option {
	return func(v *Validator) {
		for _, r := range rules {
			v.evaluator.Add(r)
		}
	}
}

func bundledCatalog(context.Context) (messages.Catalog, error) {
	return messages.DefaultCatalog(), nil
}
