package i18n

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// M holds placeholder values for template rendering.
type M map[string]any

// Store holds per-language translation tables. It is immutable after
// creation, making it safe for unbounded concurrent use.
type Store struct {
	// Flattened translations for O(1) lookups. Key format: "lang:key.path".
	translations map[string]string

	// Optional handler called when a key is missing from every consulted
	// table. Useful for monitoring translation gaps; lookup still degrades
	// to the key itself.
	missingKeyHandler func(lang, key string)

	defaultLang string

	// Pre-computed list of languages with at least one translation.
	languages []string
}

// Option configures the Store during construction.
type Option func(*Store) error

// New creates a Store with the given options. All configuration happens
// here; a load failure is meant to abort process startup.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if s.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	s.languages = s.buildLanguagesList()

	return s, nil
}

// WithDefaultLanguage sets the fallback language consulted when a key is
// missing from the requested language's table.
func WithDefaultLanguage(lang string) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		s.defaultLang = lang
		return nil
	}
}

// WithTranslations loads a translation table for a language. The map can be
// nested; it is flattened to dotted keys internally.
func WithTranslations(lang string, translations map[string]any) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		for key, value := range flattenTranslations(translations, "") {
			s.translations[buildKey(lang, key)] = value
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is not found in any
// consulted language table, including the default one.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(s *Store) error {
		s.missingKeyHandler = handler
		return nil
	}
}

// Resolve returns the translation for key in the given language. Lookup
// order: the language's table, the default language's table, then the key
// itself — resolution never fails. A region-qualified language tag falls
// back to its base language table first (e.g. "en-ch" consults "en").
func (s *Store) Resolve(lang, key string, placeholders ...M) string {
	for _, candidate := range s.lookupChain(lang) {
		if translation, exists := s.translations[buildKey(candidate, key)]; exists {
			return renderWithMerge(translation, placeholders...)
		}
	}

	if s.missingKeyHandler != nil {
		s.missingKeyHandler(lang, key)
	}

	return key
}

// Has reports whether any translations are loaded for the language.
func (s *Store) Has(lang string) bool {
	prefix := lang + ":"
	for key := range s.translations {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// Languages returns the languages with at least one loaded translation,
// the default language first.
func (s *Store) Languages() []string {
	out := make([]string, len(s.languages))
	copy(out, s.languages)
	return out
}

// DefaultLanguage returns the fallback language.
func (s *Store) DefaultLanguage() string {
	return s.defaultLang
}

// lookupChain returns the languages to consult, most specific first,
// without duplicates.
func (s *Store) lookupChain(lang string) []string {
	if lang == "" {
		return []string{s.defaultLang}
	}

	chain := []string{lang}
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if chain[len(chain)-1] != s.defaultLang {
		chain = append(chain, s.defaultLang)
	}
	return chain
}

func (s *Store) buildLanguagesList() []string {
	seen := make(map[string]bool)
	for key := range s.translations {
		lang, _, _ := strings.Cut(key, ":")
		seen[lang] = true
	}

	out := make([]string, 0, len(seen))
	if seen[s.defaultLang] {
		out = append(out, s.defaultLang)
		delete(seen, s.defaultLang)
	}

	rest := make([]string, 0, len(seen))
	for lang := range seen {
		rest = append(rest, lang)
	}
	sort.Strings(rest)

	return append(out, rest...)
}

func buildKey(lang, key string) string {
	return lang + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

func renderWithMerge(template string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return template
	}
	if len(placeholders) == 1 {
		return Render(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return Render(template, merged)
}

// baseLanguage strips the region from a language tag ("en-ch" → "en").
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
