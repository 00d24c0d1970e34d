package catalog

import "errors"

var (
	ErrNoLocales     = errors.New("catalog: at least one locale is required")
	ErrMixedRegions  = errors.New("catalog: locales must be uniformly region-qualified")
	ErrDuplicateSlug = errors.New("catalog: duplicate locale slug")
	ErrInvalidSlug   = errors.New("catalog: invalid locale slug")
	ErrUnknownSlug   = errors.New("catalog: slug not found")
	ErrUngrouped     = errors.New("catalog: region grouping requires a region-uniform catalog")
	ErrInvalidYAML   = errors.New("catalog: invalid catalog file")
)
