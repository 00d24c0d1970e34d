// Package preference persists a visitor's chosen locale across requests
// behind a narrow read/write interface, keeping negotiation and redirect
// logic pure and independently testable.
package preference

import (
	"net/http"

	"github.com/pabio/localekit/pkg/cookie"
)

// DefaultMaxAge keeps the preference for one year, matching the reference
// site behavior.
const DefaultMaxAge = 365 * 24 * 60 * 60

// DefaultCookieName is the cookie the locale preference is stored under.
const DefaultCookieName = "locale"

// Store reads and writes the single stored locale slug for a request.
// Implementations must be safe for concurrent use; each call touches only
// the given request or response. Expiry is the store's concern — the locale
// engine never deletes a preference.
type Store interface {
	// Read returns the stored slug, or ok=false when none is stored.
	Read(r *http.Request) (slug string, ok bool)

	// Write schedules the slug to be persisted on the response.
	Write(w http.ResponseWriter, slug string)
}

// CookieStore persists the preference in a cookie.
type CookieStore struct {
	cookies *cookie.Manager
	name    string
	maxAge  int
}

// CookieOption configures a CookieStore.
type CookieOption func(*CookieStore)

// NewCookieStore creates a cookie-backed Store. A nil manager gets the
// default attributes (path "/", HttpOnly, SameSite=Strict).
func NewCookieStore(cookies *cookie.Manager, opts ...CookieOption) *CookieStore {
	if cookies == nil {
		cookies = cookie.New()
	}
	s := &CookieStore{
		cookies: cookies,
		name:    DefaultCookieName,
		maxAge:  DefaultMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithName sets the cookie name.
func WithName(name string) CookieOption {
	return func(s *CookieStore) {
		if name != "" {
			s.name = name
		}
	}
}

// WithMaxAge sets the cookie lifetime in seconds.
func WithMaxAge(seconds int) CookieOption {
	return func(s *CookieStore) {
		if seconds > 0 {
			s.maxAge = seconds
		}
	}
}

// Read returns the stored locale slug.
func (s *CookieStore) Read(r *http.Request) (string, bool) {
	value, err := s.cookies.Get(r, s.name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// Write persists the locale slug on the response.
func (s *CookieStore) Write(w http.ResponseWriter, slug string) {
	s.cookies.Set(w, s.name, slug, s.maxAge)
}
