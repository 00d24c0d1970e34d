package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Recommendation holds the per-locale copy shown when a different locale is
// suggested to the visitor. Both fields are plain templates with {{name}}
// placeholders, resolved by the translation store's renderer.
type Recommendation struct {
	Body         string `yaml:"body"`
	CallToAction string `yaml:"call_to_action"`
}

// Locale identifies a supported site variant: a lowercase language code plus
// an optional region code. The canonical string form is the slug, either
// "language" or "language-region" (e.g. "en" or "en-ch").
type Locale struct {
	Slug           string         `yaml:"slug"`
	Language       string         `yaml:"-"`
	Region         string         `yaml:"-"`
	Label          string         `yaml:"label"`
	RegionLabel    string         `yaml:"region_label"`
	Recommendation Recommendation `yaml:"recommendation"`
}

// DisplayLabel returns the label with the region label appended when present,
// e.g. "English (Switzerland)".
func (l Locale) DisplayLabel() string {
	if l.RegionLabel == "" {
		return l.Label
	}
	return l.Label + " (" + l.RegionLabel + ")"
}

// Catalog is the ordered, immutable set of supported locales. All derived
// views (slug set, language codes, region groups) are computed once at
// construction, so lookups are allocation-free and safe for concurrent use.
type Catalog struct {
	locales       []Locale
	bySlug        map[string]int
	languageCodes []string
	regions       []string
	byRegion      map[string][]Locale
	fallback      string
	defaultRegion string
	uniform       bool
}

// Option configures a Catalog during construction.
type Option func(*builder) error

type builder struct {
	locales       []Locale
	fallback      string
	defaultRegion string
}

// New creates an immutable Catalog from the given options. The catalog shape
// (region-uniform or not) is validated once here; a mix of region-qualified
// and bare slugs fails with ErrMixedRegions. Construction failures are meant
// to abort process startup, not to be retried per request.
func New(opts ...Option) (*Catalog, error) {
	b := &builder{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	if len(b.locales) == 0 {
		return nil, ErrNoLocales
	}

	c := &Catalog{
		locales: make([]Locale, 0, len(b.locales)),
		bySlug:  make(map[string]int, len(b.locales)),
	}

	langSeen := make(map[string]bool)
	regionSeen := make(map[string]bool)

	for _, loc := range b.locales {
		parsed, err := parseSlug(loc.Slug)
		if err != nil {
			return nil, err
		}
		loc.Slug = parsed.Slug
		loc.Language = parsed.Language
		loc.Region = parsed.Region

		if _, exists := c.bySlug[loc.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, loc.Slug)
		}
		c.bySlug[loc.Slug] = len(c.locales)
		c.locales = append(c.locales, loc)

		if !langSeen[loc.Language] {
			langSeen[loc.Language] = true
			c.languageCodes = append(c.languageCodes, loc.Language)
		}
		if loc.Region != "" && !regionSeen[loc.Region] {
			regionSeen[loc.Region] = true
			c.regions = append(c.regions, loc.Region)
		}
	}

	withRegion := len(regionSeen) > 0
	for _, loc := range c.locales {
		if (loc.Region != "") != withRegion {
			return nil, fmt.Errorf("%w: %q", ErrMixedRegions, loc.Slug)
		}
	}
	c.uniform = withRegion

	if c.uniform {
		c.byRegion = make(map[string][]Locale, len(c.regions))
		for _, loc := range c.locales {
			c.byRegion[loc.Region] = append(c.byRegion[loc.Region], loc)
		}
	}

	c.fallback = normalizeSlug(b.fallback)
	if c.fallback == "" {
		c.fallback = c.locales[0].Slug
	}
	if _, ok := c.bySlug[c.fallback]; !ok {
		return nil, fmt.Errorf("%w: fallback %q", ErrUnknownSlug, c.fallback)
	}

	c.defaultRegion = strings.ToLower(b.defaultRegion)
	if c.uniform && c.defaultRegion == "" {
		c.defaultRegion = c.locales[c.bySlug[c.fallback]].Region
	}

	return c, nil
}

// WithLocales sets the ordered locale list.
func WithLocales(locales ...Locale) Option {
	return func(b *builder) error {
		b.locales = append(b.locales, locales...)
		return nil
	}
}

// WithFallback sets the slug of the global fallback locale.
// Defaults to the first locale in the catalog.
func WithFallback(slug string) Option {
	return func(b *builder) error {
		b.fallback = strings.ToLower(strings.TrimSpace(slug))
		return nil
	}
}

// WithDefaultRegion sets the region used when a geo hint is unavailable.
// Defaults to the fallback locale's region.
func WithDefaultRegion(region string) Option {
	return func(b *builder) error {
		b.defaultRegion = region
		return nil
	}
}

// Supports reports whether the slug identifies a catalog locale.
func (c *Catalog) Supports(slug string) bool {
	_, ok := c.bySlug[normalizeSlug(slug)]
	return ok
}

// Find returns the locale for the given slug.
func (c *Catalog) Find(slug string) (Locale, bool) {
	idx, ok := c.bySlug[normalizeSlug(slug)]
	if !ok {
		return Locale{}, false
	}
	return c.locales[idx], true
}

// Locales returns the catalog's locales in declaration order.
func (c *Catalog) Locales() []Locale {
	out := make([]Locale, len(c.locales))
	copy(out, c.locales)
	return out
}

// Slugs returns all slugs in declaration order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.locales))
	for i, loc := range c.locales {
		out[i] = loc.Slug
	}
	return out
}

// LanguageCodes returns the distinct language codes across all locales,
// in first-appearance order.
func (c *Catalog) LanguageCodes() []string {
	out := make([]string, len(c.languageCodes))
	copy(out, c.languageCodes)
	return out
}

// Regions returns the distinct region codes in first-appearance order.
// Empty for a non-uniform catalog.
func (c *Catalog) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}

// HasRegion reports whether any catalog locale carries the given region.
func (c *Catalog) HasRegion(region string) bool {
	if !c.uniform {
		return false
	}
	_, ok := c.byRegion[strings.ToLower(region)]
	return ok
}

// GroupByRegion returns locales grouped by region code, preserving
// declaration order within each group. Returns ErrUngrouped when the
// catalog is not region-uniform.
func (c *Catalog) GroupByRegion() (map[string][]Locale, error) {
	if !c.uniform {
		return nil, ErrUngrouped
	}
	out := make(map[string][]Locale, len(c.byRegion))
	for region, locales := range c.byRegion {
		group := make([]Locale, len(locales))
		copy(group, locales)
		out[region] = group
	}
	return out, nil
}

// RegionUniform reports whether every locale carries a region code.
func (c *Catalog) RegionUniform() bool {
	return c.uniform
}

// Fallback returns the global fallback locale.
func (c *Catalog) Fallback() Locale {
	return c.locales[c.bySlug[c.fallback]]
}

// DefaultRegion returns the region used when geo lookup has no opinion.
// Empty for a non-uniform catalog.
func (c *Catalog) DefaultRegion() string {
	return c.defaultRegion
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// parseSlug splits and validates a canonical slug. The language part must be
// a well-formed BCP 47 base tag; the optional region part is kept verbatim
// (lowercased) since site regions are a product concept, not strict ISO.
func parseSlug(slug string) (Locale, error) {
	slug = normalizeSlug(slug)
	if slug == "" {
		return Locale{}, fmt.Errorf("%w: empty", ErrInvalidSlug)
	}

	lang, region, _ := strings.Cut(slug, "-")
	if lang == "" {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if _, err := language.Parse(lang); err != nil {
		// Unknown-but-well-formed subtags are fine; only malformed ones are rejected.
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return Locale{}, fmt.Errorf("%w: %q: %s", ErrInvalidSlug, slug, err)
		}
	}
	if strings.Contains(region, "-") {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	return Locale{Slug: slug, Language: lang, Region: region}, nil
}
