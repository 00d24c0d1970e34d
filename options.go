package localekit

import (
	"log/slog"

	"github.com/pabio/localekit/pkg/catalog"
	"github.com/pabio/localekit/pkg/i18n"
	"github.com/pabio/localekit/pkg/negotiate"
	"github.com/pabio/localekit/pkg/preference"
)

// Option configures the Engine during construction.
type Option func(*Engine) error

// WithCatalog sets the locale catalog. Required.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(e *Engine) error {
		e.catalog = cat
		return nil
	}
}

// WithTranslations sets the translation store. Required.
func WithTranslations(store *i18n.Store) Option {
	return func(e *Engine) error {
		e.store = store
		return nil
	}
}

// WithPreferences sets the preference store. Defaults to a cookie store
// with a one-year lifetime.
func WithPreferences(store preference.Store) Option {
	return func(e *Engine) error {
		e.prefs = store
		return nil
	}
}

// WithNegotiator overrides the default negotiator, mainly for tests.
func WithNegotiator(n *negotiate.Negotiator) Option {
	return func(e *Engine) error {
		e.negotiator = n
		return nil
	}
}

// WithLocaleAgnosticRoutes registers paths served without a locale prefix
// and without triggering a locale redirect, e.g. a language-selector page.
func WithLocaleAgnosticRoutes(paths ...string) Option {
	return func(e *Engine) error {
		for _, path := range paths {
			e.agnostic[trimTrailingSlash(path)] = true
		}
		return nil
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) error {
		if log != nil {
			e.log = log
		}
		return nil
	}
}
