package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds the lookup so a slow geo provider can never stall
// request handling.
const DefaultTimeout = 500 * time.Millisecond

// Result is the outcome of a country lookup: either Ok with an uppercase
// ISO 3166-1 alpha-2 code, or Unavailable. There is no error variant — a
// failed lookup means "no opinion", never a fault to surface or retry.
type Result struct {
	Country string
	OK      bool
}

// Ok returns a successful Result with a normalized country code.
func Ok(country string) Result {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return Unavailable()
	}
	return Result{Country: country, OK: true}
}

// Unavailable returns the no-opinion Result.
func Unavailable() Result {
	return Result{}
}

// Resolver looks up the country for a client IP address.
type Resolver interface {
	Country(ctx context.Context, ip string) Result
}

// HTTPResolver queries an ip-api.com style endpoint:
// GET {endpoint}/{ip}?fields=countryCode returning {"countryCode": "CH"}.
// Every failure mode (network, timeout, status, parse, empty code) collapses
// to Unavailable and is logged at debug level only.
type HTTPResolver struct {
	client   *http.Client
	log      *slog.Logger
	endpoint string
	timeout  time.Duration
}

// HTTPOption configures an HTTPResolver.
type HTTPOption func(*HTTPResolver)

// NewHTTPResolver creates an HTTPResolver with the given options.
func NewHTTPResolver(opts ...HTTPOption) *HTTPResolver {
	r := &HTTPResolver{
		client:   &http.Client{},
		log:      slog.New(slog.DiscardHandler),
		endpoint: "http://ip-api.com/json",
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithEndpoint sets the lookup endpoint base URL.
func WithEndpoint(endpoint string) HTTPOption {
	return func(r *HTTPResolver) {
		r.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithTimeout sets the per-lookup timeout.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(r *HTTPResolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(r *HTTPResolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) HTTPOption {
	return func(r *HTTPResolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Country looks up the country code for the given IP.
func (r *HTTPResolver) Country(ctx context.Context, ip string) Result {
	if ip == "" {
		return Unavailable()
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	lookupURL := fmt.Sprintf("%s/%s?fields=countryCode", r.endpoint, url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		r.log.DebugContext(ctx, "geo lookup request failed", "ip", ip, "error", err)
		return Unavailable()
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.DebugContext(ctx, "geo lookup failed", "ip", ip, "error", err)
		return Unavailable()
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		r.log.DebugContext(ctx, "geo lookup returned non-200", "ip", ip, "status", resp.StatusCode)
		return Unavailable()
	}

	var payload struct {
		CountryCode string `json:"countryCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.log.DebugContext(ctx, "geo lookup returned invalid payload", "ip", ip, "error", err)
		return Unavailable()
	}

	if payload.CountryCode == "" {
		return Unavailable()
	}

	return Ok(payload.CountryCode)
}
