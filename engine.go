package localekit

import (
	"log/slog"
	"strings"

	"github.com/pabio/localekit/pkg/catalog"
	"github.com/pabio/localekit/pkg/i18n"
	"github.com/pabio/localekit/pkg/negotiate"
	"github.com/pabio/localekit/pkg/preference"
)

// Engine bundles the locale catalog, translation store, negotiator, and
// preference store into the per-request resolution surface. It is built
// once at startup and is immutable afterwards; every method is safe for
// unbounded concurrent use.
type Engine struct {
	catalog    *catalog.Catalog
	store      *i18n.Store
	negotiator *negotiate.Negotiator
	prefs      preference.Store
	agnostic   map[string]bool
	log        *slog.Logger
}

// New creates an Engine. A catalog and a translation store are required;
// construction failures are startup-fatal by design — a process without
// locale data must not come up. Catalog languages without a translation
// table are logged as a warning but tolerated (lookups degrade to the
// fallback language).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		agnostic: make(map[string]bool),
		log:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.catalog == nil {
		return nil, ErrNoCatalog
	}
	if e.store == nil {
		return nil, ErrNoTranslations
	}
	if e.prefs == nil {
		e.prefs = preference.NewCookieStore(nil)
	}
	if e.negotiator == nil {
		e.negotiator = negotiate.New(e.catalog, negotiate.WithLogger(e.log))
	}

	for _, lang := range e.catalog.LanguageCodes() {
		if !e.store.Has(lang) {
			e.log.Warn("catalog language has no translation table", "language", lang)
		}
	}

	return e, nil
}

// Catalog returns the locale catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Translations returns the translation store.
func (e *Engine) Translations() *i18n.Store {
	return e.store
}

// Preferences returns the preference store.
func (e *Engine) Preferences() preference.Store {
	return e.prefs
}

// Translator returns a Translator bound to the given locale's language.
// An unknown slug yields the default-language translator.
func (e *Engine) Translator(slug string) *i18n.Translator {
	if loc, ok := e.catalog.Find(slug); ok {
		return i18n.NewTranslator(e.store, loc.Language)
	}
	return i18n.NewTranslator(e.store, "")
}

// PathLocale returns the catalog locale addressed by the path's first
// segment, if any.
func (e *Engine) PathLocale(path string) (catalog.Locale, bool) {
	return e.catalog.Find(firstSegment(path))
}

// StripLocale removes a recognized locale prefix from the path, for
// building locale-independent return paths.
func (e *Engine) StripLocale(path string) string {
	seg := firstSegment(path)
	if !e.catalog.Supports(seg) {
		return path
	}
	rest := strings.TrimPrefix(path, "/"+seg)
	if rest == "" {
		return "/"
	}
	return rest
}

// localeAgnostic reports whether the path is one of the configured
// locale-agnostic routes. Trailing slashes are ignored on both sides.
func (e *Engine) localeAgnostic(path string) bool {
	return e.agnostic[trimTrailingSlash(path)]
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	seg, _, _ := strings.Cut(path, "/")
	return seg
}

func trimTrailingSlash(path string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
