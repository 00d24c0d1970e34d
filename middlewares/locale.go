package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pabio/localekit"
	"github.com/pabio/localekit/pkg/catalog"
	"github.com/pabio/localekit/pkg/clientip"
	"github.com/pabio/localekit/pkg/geo"
	"github.com/pabio/localekit/pkg/i18n"
	"github.com/pabio/localekit/pkg/negotiate"
)

// localeKey is the context key for the request's serving locale.
type localeKey struct{}

// translatorKey is the context key for the request-bound translator.
type translatorKey struct{}

// recommendationKey is the context key for the locale banner recommendation.
type recommendationKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Geo            geo.Resolver // optional country resolver for region hints
	Logger         *slog.Logger
	RedirectStatus int // HTTP status for locale redirects
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleGeo sets the country resolver consulted when the catalog needs a
// region hint. Without it the engine always falls back to the default region.
func WithLocaleGeo(resolver geo.Resolver) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Geo = resolver
	}
}

// WithLocaleLogger sets the diagnostic logger.
func WithLocaleLogger(log *slog.Logger) LocaleOption {
	return func(cfg *LocaleConfig) {
		if log != nil {
			cfg.Logger = log
		}
	}
}

// WithLocaleRedirectStatus overrides the redirect status code.
func WithLocaleRedirectStatus(status int) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.RedirectStatus = status
	}
}

// Locale returns middleware that resolves the serving locale for every
// request. Requests without a recognized locale prefix are redirected to
// their locale-prefixed URL; prefixed requests are served with the locale,
// a bound translator, and an optional "also available in" recommendation
// stored in the request context. Preference writes scheduled by the decision
// are applied to the response before redirecting or serving.
func Locale(engine *localekit.Engine, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{
		Logger:         slog.New(slog.DiscardHandler),
		RedirectStatus: http.StatusFound,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			prefSlug, _ := engine.Preferences().Read(r)
			acceptLanguage := r.Header.Get("Accept-Language")
			hint := geoHint(cfg.Geo, r)

			d := engine.Decide(r.Context(), r.URL.Path, acceptLanguage, hint, prefSlug)
			if d.Persist != "" {
				engine.Preferences().Write(w, d.Persist)
			}

			if d.Redirect() {
				target := d.Target
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				cfg.Logger.DebugContext(r.Context(), "locale redirect",
					"from", r.URL.Path, "to", d.Target)
				http.Redirect(w, r, target, cfg.RedirectStatus)
				return
			}

			ctx := r.Context()
			if loc, ok := engine.PathLocale(r.URL.Path); ok {
				ctx = context.WithValue(ctx, localeKey{}, loc)
				ctx = context.WithValue(ctx, translatorKey{}, engine.Translator(loc.Slug))

				if rec, ok := engine.Recommend(ctx, loc.Slug, r.URL.Path, acceptLanguage, hint); ok {
					ctx = context.WithValue(ctx, recommendationKey{}, rec)
				}
			} else {
				ctx = context.WithValue(ctx, translatorKey{}, engine.Translator(""))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// geoHint adapts a geo resolver into a lazy per-request hint. The client IP
// is captured eagerly (it needs the request), the network call is not.
func geoHint(resolver geo.Resolver, r *http.Request) negotiate.GeoHint {
	if resolver == nil {
		return nil
	}
	ip := clientip.FromRequest(r)
	return func(ctx context.Context) geo.Result {
		return resolver.Country(ctx, ip)
	}
}

// GetLocale returns the locale serving the request, when the path carried a
// recognized locale prefix.
func GetLocale(ctx context.Context) (catalog.Locale, bool) {
	loc, ok := ctx.Value(localeKey{}).(catalog.Locale)
	return loc, ok
}

// GetTranslator returns the request-bound translator. It is always present
// on requests that passed the Locale middleware; nil otherwise.
func GetTranslator(ctx context.Context) *i18n.Translator {
	tr, _ := ctx.Value(translatorKey{}).(*i18n.Translator)
	return tr
}

// GetRecommendation returns the banner recommendation, present only when
// fresh negotiation disagrees with the locale serving the page.
func GetRecommendation(ctx context.Context) (localekit.Recommendation, bool) {
	rec, ok := ctx.Value(recommendationKey{}).(localekit.Recommendation)
	return rec, ok
}
