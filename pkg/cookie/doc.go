// Package cookie provides a small cookie manager with consistent attribute
// defaults across all writes.
//
// The manager carries no per-request state and is safe for concurrent use.
// Values stored through it are plain strings; anything sensitive belongs in
// a server-side session, not here.
package cookie
