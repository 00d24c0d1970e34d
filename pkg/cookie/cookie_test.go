package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pabio/localekit/pkg/cookie"
)

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("set and get round-trip", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		w := httptest.NewRecorder()
		m.Set(w, "locale", "fr-ch", 3600)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}

		got, err := m.Get(r, "locale")
		require.NoError(t, err)
		require.Equal(t, "fr-ch", got)
	})

	t.Run("missing cookie returns ErrNotFound", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.Get(r, "locale")
		require.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("defaults are strict", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		w := httptest.NewRecorder()
		m.Set(w, "locale", "en-ch", 60)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		require.Equal(t, "/", c.Path)
		require.True(t, c.HttpOnly)
		require.Equal(t, http.SameSiteStrictMode, c.SameSite)
		require.Equal(t, 60, c.MaxAge)
	})

	t.Run("options override defaults", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(
			cookie.WithPath("/app"),
			cookie.WithDomain("example.com"),
			cookie.WithSecure(true),
			cookie.WithHTTPOnly(false),
			cookie.WithSameSite(http.SameSiteLaxMode),
		)

		w := httptest.NewRecorder()
		m.Set(w, "locale", "en-ch", 60)

		c := w.Result().Cookies()[0]
		require.Equal(t, "/app", c.Path)
		require.Equal(t, "example.com", c.Domain)
		require.True(t, c.Secure)
		require.False(t, c.HttpOnly)
		require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("delete expires the cookie", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		w := httptest.NewRecorder()
		m.Delete(w, "locale")

		c := w.Result().Cookies()[0]
		require.Equal(t, -1, c.MaxAge)
		require.Empty(t, c.Value)
	})
}
