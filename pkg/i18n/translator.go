package i18n

// Translator provides a translation interface with a fixed language context,
// eliminating the need to pass the language on every lookup. It is what gets
// handed to page-rendering code.
type Translator struct {
	store    *Store
	language string
}

// NewTranslator creates a Translator bound to the given language.
// An empty language falls back to the store's default language.
func NewTranslator(store *Store, language string) *Translator {
	if store == nil {
		panic("i18n: store is not provided")
	}
	if language == "" {
		language = store.DefaultLanguage()
	}
	return &Translator{store: store, language: language}
}

// T resolves a key in the translator's language.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.store.Resolve(t.language, key, placeholders...)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}
