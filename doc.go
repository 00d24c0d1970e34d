// Package localekit is a locale resolution and translation-lookup engine
// for locale-prefixed sites: every page lives under /{locale}/... and the
// engine decides, per request, which locale serves it, whether to redirect
// to a locale-prefixed URL, what preference to persist, and how translation
// keys resolve to localized strings.
//
// The Engine is assembled once at startup from immutable parts:
//
//	cat, err := catalog.New(catalog.WithYAMLFile(assets, "catalog.yaml"))
//	store, err := i18n.New(i18n.WithDefaultLanguage("en"), i18n.WithYAMLDir(translationsFS))
//
//	engine, err := localekit.New(
//		localekit.WithCatalog(cat),
//		localekit.WithTranslations(store),
//		localekit.WithLocaleAgnosticRoutes("/select-locale"),
//	)
//
// Request handling goes through Decide, which either serves or redirects
// and schedules at most one preference write. The middlewares package wires
// this into net/http; handlers then pull the request's Translator and
// recommendation banner data from the context.
//
// All per-request anomalies degrade gracefully: a failed geo lookup falls
// back to the default region, a missing translation key renders as the key
// itself. The only hard failures are at startup (bad catalog or translation
// data) and on explicit locale changes naming an unsupported slug.
package localekit
