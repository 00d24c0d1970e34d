// Package negotiate selects the supported locale that best matches a
// request: stored preference first, then weighted Accept-Language
// negotiation, then an optional geo hint to pick a region.
package negotiate
