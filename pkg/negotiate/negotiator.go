package negotiate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pabio/localekit/pkg/catalog"
	"github.com/pabio/localekit/pkg/geo"
)

// GeoHint lazily resolves the client's country. It is only invoked when the
// region actually has to be guessed — never when a stored preference exists
// or the catalog carries no regions. A nil hint means "unavailable".
type GeoHint func(ctx context.Context) geo.Result

// Negotiator computes the single best-matching supported locale from the
// request signals. It holds only immutable catalog data and is safe for
// concurrent use.
type Negotiator struct {
	catalog *catalog.Catalog
	log     *slog.Logger
}

// Option configures a Negotiator.
type Option func(*Negotiator)

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(n *Negotiator) {
		if log != nil {
			n.log = log
		}
	}
}

// New creates a Negotiator over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Negotiator {
	n := &Negotiator{
		catalog: cat,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Recommend returns the locale that should serve the request, in priority
// order:
//
//  1. A stored preference wins outright; header and geo hint are ignored.
//  2. Otherwise the Accept-Language header is negotiated against the
//     catalog's language codes, falling back to the fallback language.
//  3. A non-uniform catalog resolves to the bare negotiated language.
//  4. A region-uniform catalog asks the geo hint for a region; unavailable
//     or unrecognized answers fall back to the catalog's default region.
//  5. If the composed language-region slug is not in the catalog, the
//     global fallback locale is returned.
//
// Everything except the geo call is deterministic given its inputs, and the
// geo call can only influence the region, never the language.
func (n *Negotiator) Recommend(ctx context.Context, acceptLanguage string, hint GeoHint, pref *catalog.Locale) catalog.Locale {
	if pref != nil {
		if loc, ok := n.catalog.Find(pref.Slug); ok {
			return loc
		}
		n.log.DebugContext(ctx, "ignoring stale locale preference", "slug", pref.Slug)
	}

	lang := ParseAcceptLanguage(acceptLanguage, n.catalog.LanguageCodes(), n.catalog.Fallback().Language)

	if !n.catalog.RegionUniform() {
		if loc, ok := n.catalog.Find(lang); ok {
			return loc
		}
		return n.catalog.Fallback()
	}

	region := n.regionFor(ctx, hint)

	if loc, ok := n.catalog.Find(lang + "-" + region); ok {
		return loc
	}
	return n.catalog.Fallback()
}

// regionFor consults the geo hint, falling back to the default region when
// the hint has no opinion or names a country the catalog doesn't serve.
func (n *Negotiator) regionFor(ctx context.Context, hint GeoHint) string {
	if hint == nil {
		return n.catalog.DefaultRegion()
	}

	res := hint(ctx)
	if !res.OK {
		return n.catalog.DefaultRegion()
	}

	region := strings.ToLower(res.Country)
	if !n.catalog.HasRegion(region) {
		n.log.DebugContext(ctx, "geo country not in catalog", "country", res.Country)
		return n.catalog.DefaultRegion()
	}
	return region
}
