// Package geo provides a best-effort IP-to-country hint used to pick a
// region for first-time visitors.
//
// Lookups are bounded by a short timeout and can never fail loudly: any
// network, decoding, or provider problem yields Unavailable, which callers
// treat as "no opinion" and resolve with their configured default region.
package geo
