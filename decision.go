package localekit

import (
	"context"
	"strings"

	"github.com/pabio/localekit/pkg/catalog"
	"github.com/pabio/localekit/pkg/negotiate"
)

// Action is the outcome of a redirect decision.
type Action int

const (
	// ActionServe means the request is served at its current path.
	ActionServe Action = iota

	// ActionRedirect means the client is redirected to Target.
	ActionRedirect
)

// Decision is the per-request outcome of the redirect state machine.
// It is computed fresh for every request and never stored.
type Decision struct {
	// Target is the redirect path; empty when serving.
	Target string

	// Persist carries a locale slug to write to the preference store
	// alongside the response, or empty for no write.
	Persist string

	Action Action
}

// Redirect reports whether the decision requires an HTTP redirect.
func (d Decision) Redirect() bool {
	return d.Action == ActionRedirect
}

// Decide runs the redirect state machine for a request path. Two sequential
// idempotent passes each produce at most one redirect: first trailing-slash
// normalization of a bare locale path, then the locale-prefix decision. A
// client following each redirect in turn always reaches a served page.
//
// The locale pass:
//   - path starts with a recognized locale slug → serve; if no preference
//     is stored yet, the visited slug is adopted as the preference
//     (first-touch adoption — an existing preference is never overwritten
//     by merely visiting another locale's URL);
//   - path is a configured locale-agnostic route → serve, no writes;
//   - otherwise → redirect to /{recommended}{path}, persisting the
//     recommended slug so the follow-up request short-circuits.
//
// prefSlug is the stored preference ("" when absent); hint may be nil.
func (e *Engine) Decide(ctx context.Context, path, acceptLanguage string, hint negotiate.GeoHint, prefSlug string) Decision {
	path = canonicalPath(path)

	if d := e.normalizePass(path); d.Redirect() {
		return d
	}

	return e.localePass(ctx, path, acceptLanguage, hint, prefSlug)
}

// normalizePass redirects a bare "/{slug}" path to "/{slug}/" so that
// locale-segment matching always sees a terminated segment. Path shape and
// locale prefixing are corrected one hop at a time, never merged into a
// single response.
func (e *Engine) normalizePass(path string) Decision {
	seg := firstSegment(path)
	if seg != "" && path == "/"+seg && e.catalog.Supports(seg) {
		return Decision{Action: ActionRedirect, Target: path + "/"}
	}
	return Decision{Action: ActionServe}
}

func (e *Engine) localePass(ctx context.Context, path, acceptLanguage string, hint negotiate.GeoHint, prefSlug string) Decision {
	if loc, ok := e.catalog.Find(firstSegment(path)); ok {
		d := Decision{Action: ActionServe}
		if prefSlug == "" {
			d.Persist = loc.Slug
		}
		return d
	}

	if e.localeAgnostic(path) {
		return Decision{Action: ActionServe}
	}

	var pref *catalog.Locale
	if prefSlug != "" {
		if loc, ok := e.catalog.Find(prefSlug); ok {
			pref = &loc
		}
	}

	rec := e.negotiator.Recommend(ctx, acceptLanguage, hint, pref)
	return Decision{
		Action:  ActionRedirect,
		Target:  "/" + rec.Slug + path,
		Persist: rec.Slug,
	}
}

// ChangeLocale validates an explicit locale choice and produces the
// redirect that applies it. An unknown slug fails with
// UnsupportedLocaleError carrying the valid slugs; the error is the only
// hard per-request failure this engine surfaces.
func (e *Engine) ChangeLocale(requestedSlug, returnPath string) (Decision, error) {
	loc, ok := e.catalog.Find(requestedSlug)
	if !ok {
		return Decision{}, &UnsupportedLocaleError{
			Slug:  requestedSlug,
			Valid: e.catalog.Slugs(),
		}
	}

	if returnPath == "" {
		returnPath = "/"
	}
	returnPath = canonicalPath(returnPath)

	return Decision{
		Action:  ActionRedirect,
		Target:  "/" + loc.Slug + returnPath,
		Persist: loc.Slug,
	}, nil
}

// Recommendation is the banner data handed to page rendering when the
// negotiated locale differs from the one serving the page.
type Recommendation struct {
	// Locale is the recommended catalog locale, including its display
	// metadata and recommendation copy templates.
	Locale catalog.Locale

	// URL is the current path with the locale prefix swapped to the
	// recommended locale.
	URL string
}

// Recommend computes fresh negotiation (ignoring any stored preference) for
// the "this site is also available in …" banner. Returns ok=false when the
// recommendation matches the locale currently serving the page, meaning no
// banner should be shown.
func (e *Engine) Recommend(ctx context.Context, currentSlug, path, acceptLanguage string, hint negotiate.GeoHint) (Recommendation, bool) {
	rec := e.negotiator.Recommend(ctx, acceptLanguage, hint, nil)
	if strings.EqualFold(rec.Slug, currentSlug) {
		return Recommendation{}, false
	}

	return Recommendation{
		Locale: rec,
		URL:    "/" + rec.Slug + e.StripLocale(canonicalPath(path)),
	}, true
}

// canonicalPath guarantees a non-empty, slash-prefixed path.
func canonicalPath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
