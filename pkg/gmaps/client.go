// Package gmaps provides a client for the Google Maps Web Service APIs.
// It owns request shaping, credential and locale injection, rate limiting
// and optional response caching; interpreting the returned payloads is the
// caller's job.
package gmaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the host serving the Maps Web Service endpoints.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 30 * time.Second

	// API endpoint paths
	pathGeocode        = "/maps/api/geocode/json"
	pathNearbySearch   = "/maps/api/place/nearbysearch/json"
	pathPlaceDetails   = "/maps/api/place/details/json"
	pathDistanceMatrix = "/maps/api/distancematrix/json"
	pathDirections     = "/maps/api/directions/json"
	pathElevation      = "/maps/api/elevation/json"
	pathStaticMap      = "/maps/api/staticmap"
)

// Client is a long-lived, effectively-immutable Google Maps API client.
// A single instance is shared by every tool invocation; it holds no
// per-call state beyond the underlying connection pool.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	language   string
	region     string
	limiter    *rate.Limiter
	cache      *lru.LRU[string, []byte]
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Tests use this together
// with WithBaseURL to point the client at a fake backend.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API host.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithLanguage sets the language forwarded on every request.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithRegion sets the region bias forwarded on geocoding requests.
func WithRegion(region string) Option {
	return func(c *Client) { c.region = region }
}

// WithRateLimit bounds outgoing requests to rps requests per second with
// the given burst. A zero or negative rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithCache enables caching of GET responses for the given TTL, keeping at
// most size entries.
func WithCache(ttl time.Duration, size int) Option {
	return func(c *Client) {
		if ttl > 0 && size > 0 {
			c.cache = lru.NewLRU[string, []byte](size, nil, ttl)
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Maps API client using the given API key.
func NewClient(key string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: DefaultBaseURL,
		key:     key,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET against the given endpoint path, decorating the query
// with the API key and language, and decodes the JSON body into out.
// Error messages carry the endpoint path only, never the full URL, so the
// credential cannot leak into client-visible output.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("key", c.key)
	if c.language != "" {
		q.Set("language", c.language)
	}
	encoded := q.Encode()

	if c.cache != nil {
		if body, ok := c.cache.Get(path + "?" + encoded); ok {
			c.logger.Debug("cache hit", "path", path)
			return json.Unmarshal(body, out)
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait on %s: %w", path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+encoded, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, sanitizeURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned HTTP %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}

	if c.cache != nil {
		c.cache.Add(path+"?"+encoded, body)
	}
	return nil
}

// sanitizeURLError strips the URL (which embeds the API key) from
// transport errors before they propagate.
func sanitizeURLError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return uerr.Err
	}
	return err
}

// StaticMapURL assembles a Static Maps API URL from pre-built query
// values, injecting the API key and language. No request is made; the
// returned URL embeds the credential and must be treated as secret.
func (c *Client) StaticMapURL(q url.Values) string {
	q.Set("key", c.key)
	if c.language != "" {
		q.Set("language", c.language)
	}
	return c.baseURL + pathStaticMap + "?" + q.Encode()
}
