package localekit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoCatalog      = errors.New("localekit: catalog is required")
	ErrNoTranslations = errors.New("localekit: translation store is required")
)

// UnsupportedLocaleError reports a locale slug that is not in the catalog.
// It carries the valid slugs so callers can build a user-facing message;
// the request is rejected, never silently coerced to a supported locale.
type UnsupportedLocaleError struct {
	Slug  string
	Valid []string
}

func (e *UnsupportedLocaleError) Error() string {
	quoted := make([]string, len(e.Valid))
	for i, slug := range e.Valid {
		quoted[i] = `"` + slug + `"`
	}
	return fmt.Sprintf("locale %q is not supported, please select one of %s",
		e.Slug, strings.Join(quoted, ", "))
}
