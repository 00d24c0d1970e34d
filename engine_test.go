package localekit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pabio/localekit"
	"github.com/pabio/localekit/pkg/catalog"
	"github.com/pabio/localekit/pkg/i18n"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		catalog.WithLocales(
			catalog.Locale{Slug: "en-ch", Label: "English", RegionLabel: "Switzerland"},
			catalog.Locale{Slug: "fr-ch", Label: "Français", RegionLabel: "Suisse"},
			catalog.Locale{Slug: "de-ch", Label: "Deutsch", RegionLabel: "Schweiz"},
			catalog.Locale{Slug: "en-de", Label: "English", RegionLabel: "Germany"},
			catalog.Locale{Slug: "de-de", Label: "Deutsch", RegionLabel: "Deutschland"},
		),
		catalog.WithFallback("en-ch"),
	)
	require.NoError(t, err)
	return cat
}

func newStore(t *testing.T) *i18n.Store {
	t.Helper()
	store, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", map[string]any{"hello": "hello"}),
		i18n.WithTranslations("fr", map[string]any{"hello": "bonjour"}),
		i18n.WithTranslations("de", map[string]any{"hello": "hallo"}),
	)
	require.NoError(t, err)
	return store
}

func newEngine(t *testing.T, opts ...localekit.Option) *localekit.Engine {
	t.Helper()
	opts = append([]localekit.Option{
		localekit.WithCatalog(newCatalog(t)),
		localekit.WithTranslations(newStore(t)),
	}, opts...)
	engine, err := localekit.New(opts...)
	require.NoError(t, err)
	return engine
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a catalog", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.New(localekit.WithTranslations(newStore(t)))
		require.ErrorIs(t, err, localekit.ErrNoCatalog)
	})

	t.Run("requires a translation store", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.New(localekit.WithCatalog(newCatalog(t)))
		require.ErrorIs(t, err, localekit.ErrNoTranslations)
	})

	t.Run("tolerates a catalog language without translations", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", map[string]any{"hello": "hello"}),
		)
		require.NoError(t, err)

		_, err = localekit.New(
			localekit.WithCatalog(newCatalog(t)),
			localekit.WithTranslations(store),
		)
		require.NoError(t, err)
	})
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)

	t.Run("binds the locale's language", func(t *testing.T) {
		t.Parallel()
		tr := engine.Translator("fr-ch")
		require.Equal(t, "bonjour", tr.T("hello"))
	})

	t.Run("unknown slug falls back to default language", func(t *testing.T) {
		t.Parallel()
		tr := engine.Translator("xx-yy")
		require.Equal(t, "hello", tr.T("hello"))
	})
}

func TestPathHelpers(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)

	t.Run("path locale from prefix", func(t *testing.T) {
		t.Parallel()
		loc, ok := engine.PathLocale("/de-de/products/shoes")
		require.True(t, ok)
		require.Equal(t, "de-de", loc.Slug)

		_, ok = engine.PathLocale("/products")
		require.False(t, ok)
	})

	t.Run("strip locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "/products", engine.StripLocale("/fr-ch/products"))
		require.Equal(t, "/", engine.StripLocale("/fr-ch"))
		require.Equal(t, "/products", engine.StripLocale("/products"))
	})
}
