// Package clientip extracts the client's network origin from an HTTP
// request, preferring proxy-set headers over the raw connection address.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the client IP address, checking in order:
// CF-Connecting-IP, X-Forwarded-For (first valid entry), X-Real-IP,
// then RemoteAddr. Returns an empty string when nothing parses as an IP.
func FromRequest(r *http.Request) string {
	if ip := validIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for entry := range strings.SplitSeq(forwarded, ",") {
			if ip := validIP(entry); ip != "" {
				return ip
			}
		}
	}

	if ip := validIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP in tests or unusual setups.
		return validIP(r.RemoteAddr)
	}
	return validIP(host)
}

// validIP parses and normalizes an IP string, returning "" when invalid.
func validIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
