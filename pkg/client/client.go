// Package client provides the PokeAPI HTTP client with response caching,
// error classification and request metrics.
//
// The client never retries: a failed call is terminal for that call.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/pkg/cache"
	"github.com/Sternrassler/pokeapi-catalog/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public PokeAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Prometheus metrics for PokeAPI client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokeapi_requests_total",
		Help: "Total PokeAPI requests by resource and status",
	}, []string{"resource", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pokeapi_request_duration_seconds",
		Help:    "PokeAPI request duration in seconds by resource",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"resource"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokeapi_errors_total",
		Help: "Total PokeAPI errors by class",
	}, []string{"class"})
)

// Client is the PokeAPI client.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	cache      cache.Cache
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://pokeapi.co/api/v2".
	BaseURL string

	// UserAgent header sent with every request.
	UserAgent string

	// Timeout per HTTP request.
	Timeout time.Duration

	// Cache for successful GET responses. Nil disables caching.
	Cache cache.Cache

	// CacheTTL bounds the age of cached entries; zero keeps them until the
	// cache evicts them.
	CacheTTL time.Duration
}

// DefaultConfig returns a default configuration against the public API with
// caching disabled.
func DefaultConfig(userAgent string) Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: userAgent,
		Timeout:   15 * time.Second,
	}
}

// New creates a new PokeAPI client.
func New(cfg Config) (*Client, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	c := cfg.Cache
	if c == nil {
		c = cache.NopCache{}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: base,
		cache:   c,
		config:  cfg,
		logger:  logging.NewLogger("pokeapi-client"),
	}, nil
}

// Do performs an HTTP request with caching and metrics. Non-2xx responses
// are returned as-is; only transport failures produce an error.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	resource := resourceLabel(req.URL.Path)

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(resource).Observe(time.Since(startTime).Seconds())
	}()

	cacheable := req.Method == http.MethodGet
	cacheKey := cache.KeyFromURL(req.URL)

	if cacheable {
		entry, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			c.logger.Debug().Str("cache_key", cacheKey.String()).Msg("Cache hit")
			requestsTotal.WithLabelValues(resource, "cache").Inc()
			return cache.EntryToResponse(entry, req), nil
		case !errors.Is(err, cache.ErrCacheMiss):
			c.logger.Warn().Err(err).Str("cache_key", cacheKey.String()).Msg("Cache get error")
		}
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", req.URL.Path).
		Str("method", req.Method).
		Msg("Executing PokeAPI request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(resource, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", req.URL.Path).Msg("HTTP request failed")
		return nil, &APIError{
			Endpoint:   req.URL.Path,
			ErrorClass: ErrorClassNetwork,
			Message:    "request failed",
			Err:        err,
		}
	}

	requestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	if class := classifyStatus(resp.StatusCode); class != "" {
		errorsTotal.WithLabelValues(string(class)).Inc()
		event := c.logger.Warn()
		if class == ErrorClassServer {
			event = c.logger.Error()
		}
		event.
			Str("endpoint", req.URL.Path).
			Int("status", resp.StatusCode).
			Str("error_class", string(class)).
			Msg("PokeAPI request error")
		return resp, nil
	}

	if cacheable && resp.StatusCode == http.StatusOK {
		entry, err := cache.ResponseToEntry(resp, c.config.CacheTTL)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to create cache entry")
		} else if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to cache response")
		}
	}

	return resp, nil
}

// Get performs a GET request against an endpoint relative to the base URL,
// e.g. "/pokemon/25".
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*http.Response, error) {
	u := c.endpointURL(endpoint)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.Do(req)
}

// GetJSON performs a GET request and decodes a 2xx JSON body into v.
// Non-2xx responses are returned as *APIError.
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, v any) error {
	resp, err := c.Get(ctx, endpoint, query)
	if err != nil {
		return err
	}
	return decodeResponse(resp, v)
}

// GetJSONByURL follows a resource link taken from another payload. Links
// that point at a different API host are rebased onto the configured base URL.
func (c *Client) GetJSONByURL(ctx context.Context, rawURL string, v any) error {
	endpoint, err := c.linkEndpoint(rawURL)
	if err != nil {
		return err
	}
	return c.GetJSON(ctx, endpoint, nil, v)
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpointURL(endpoint string) *url.URL {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(endpoint, "/")
	return &u
}

// linkEndpoint converts an absolute resource link into an endpoint relative
// to the base URL.
func (c *Client) linkEndpoint(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse resource url %q: %w", rawURL, err)
	}

	if basePath := c.baseURL.Path; basePath != "" && strings.HasPrefix(u.Path, basePath+"/") {
		return strings.TrimPrefix(u.Path, basePath), nil
	}
	if i := strings.Index(u.Path, "/api/v2/"); i >= 0 {
		return u.Path[i+len("/api/v2"):], nil
	}
	if u.IsAbs() {
		return "", fmt.Errorf("resource url %q is outside the api root", rawURL)
	}
	return u.Path, nil
}

func decodeResponse(resp *http.Response, v any) error {
	defer resp.Body.Close()

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.Path
	}

	if class := classifyStatus(resp.StatusCode); class != "" {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			ErrorClass: class,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			ErrorClass: ErrorClassDecode,
			Message:    "decode response body",
			Err:        err,
		}
	}
	return nil
}

// resourceLabel reduces a request path to its resource kind so metric
// cardinality stays bounded: "/api/v2/pokemon/25/" -> "pokemon".
func resourceLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if p == "v2" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if parts[0] == "" {
		return "root"
	}
	return parts[0]
}
