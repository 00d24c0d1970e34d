// Package catalog defines the set of locales a site supports and answers
// membership and grouping queries over it.
//
// A Catalog is loaded once at process start, from code or from a YAML file,
// and is immutable afterwards, so it can be shared across requests without
// locking. The catalog's shape is decided at load time: either every locale
// carries a region code (region-uniform, enabling geo-based disambiguation
// and region grouping) or none do. A mixed catalog fails construction with
// ErrMixedRegions.
//
//	cat, err := catalog.New(
//		catalog.WithLocales(
//			catalog.Locale{Slug: "en-ch", Label: "English", RegionLabel: "Switzerland"},
//			catalog.Locale{Slug: "fr-ch", Label: "Français", RegionLabel: "Suisse"},
//			catalog.Locale{Slug: "de-ch", Label: "Deutsch", RegionLabel: "Schweiz"},
//		),
//		catalog.WithFallback("en-ch"),
//	)
package catalog
