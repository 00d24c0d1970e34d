package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/pabio/localekit/pkg/i18n"
)

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	t.Run("loads per-language files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml": &fstest.MapFile{Data: []byte("hello: hello\nnav:\n  home: Home\n")},
			"fr.yml":  &fstest.MapFile{Data: []byte("hello: bonjour\n")},
		}

		store, err := i18n.New(i18n.WithDefaultLanguage("en"), i18n.WithYAMLDir(fsys))
		require.NoError(t, err)

		require.Equal(t, "bonjour", store.Resolve("fr", "hello"))
		require.Equal(t, "Home", store.Resolve("en", "nav.home"))
	})

	t.Run("ignores non-yaml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml":   &fstest.MapFile{Data: []byte("hello: hello\n")},
			"README.md": &fstest.MapFile{Data: []byte("# notes")},
		}

		store, err := i18n.New(i18n.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, []string{"en"}, store.Languages())
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml": &fstest.MapFile{Data: []byte("hello: [")},
		}

		_, err := i18n.New(i18n.WithYAMLDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads per-language files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{"hello": "hello"}`)},
			"de.json": &fstest.MapFile{Data: []byte(`{"hello": "hallo"}`)},
		}

		store, err := i18n.New(i18n.WithDefaultLanguage("en"), i18n.WithJSONDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "hallo", store.Resolve("de", "hello"))
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{`)},
		}

		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}
