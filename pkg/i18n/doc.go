// Package i18n resolves translation keys to localized strings with
// deterministic fallback.
//
// A Store maps language codes to flat key→template tables, loaded once at
// startup from code, JSON, or YAML. Lookup never fails: a key missing from
// the requested language's table falls back to the default language's table,
// and finally to the key itself, so rendering always has something to show.
//
//	store, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", map[string]any{"hello": "hello"}),
//		i18n.WithTranslations("fr", map[string]any{"hello": "bonjour"}),
//	)
//
//	store.Resolve("fr", "hello")   // "bonjour"
//	store.Resolve("fr", "unknown") // "unknown"
//
// Templates use {{name}} placeholders, replaced in a single left-to-right
// pass by Render; values are plain strings or numbers, never re-scanned.
// This is deliberately not an ICU-style formatting library: no plural
// rules, no number or date formats.
package i18n
