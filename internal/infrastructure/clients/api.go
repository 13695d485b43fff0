package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/RavinduUni/coinpulse/pkg/config"
)

// APIError is the single failure shape for upstream calls: the HTTP status
// plus either the server-provided error text or the status's reason phrase.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d: %s", e.Status, e.Message)
}

// Client issues GET requests against the market-data API. The base URL and
// API key are fixed at construction and never written afterwards, so a single
// Client is safe for concurrent use; only the response cache is guarded.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	defaultTTL time.Duration
	logger     zerolog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

func New(cfg config.UpstreamConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		defaultTTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
		logger:     logger.With().Str("component", "market_api_client").Logger(),
		cache:      make(map[string]cacheEntry),
	}
}

// Fetch issues one GET against the configured API and decodes the JSON body
// into T. The caller owns the shape contract; no validation happens beyond
// what decoding enforces. Responses are reused for the client's default
// revalidation window.
func Fetch[T any](ctx context.Context, c *Client, path string, params Params) (T, error) {
	return FetchWithTTL[T](ctx, c, path, params, c.defaultTTL)
}

// FetchWithTTL is Fetch with an explicit revalidation window. A ttl of zero
// bypasses the cache entirely. The window is advisory: a cold or disabled
// cache only costs a round trip, never changes results.
func FetchWithTTL[T any](ctx context.Context, c *Client, path string, params Params, ttl time.Duration) (T, error) {
	var out T

	body, err := c.get(ctx, path, params, ttl)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("parsing JSON response: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params Params, ttl time.Duration) ([]byte, error) {
	fullURL := c.baseURL + path
	if query := params.Encode(); query != "" {
		fullURL += "?" + query
	}

	if body, ok := c.cached(fullURL); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body failed: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := errorFromResponse(resp.StatusCode, body)
		c.logger.Warn().
			Int("status_code", apiErr.Status).
			Str("path", path).
			Str("message", apiErr.Message).
			Msg("Upstream request failed")
		return nil, apiErr
	}

	c.store(fullURL, body, ttl)
	return body, nil
}

// errorFromResponse try-parses the upstream error body. A body that is not
// the recognized {"error": "..."} shape is treated as empty, in which case
// the status's standard reason phrase stands in for the message.
func errorFromResponse(status int, body []byte) *APIError {
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err != nil {
		errBody.Error = ""
	}

	message := errBody.Error
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}

func (c *Client) cached(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.cache, key)
		return nil, false
	}
	return entry.body, true
}

// store sweeps expired entries before inserting. Keys carry the full request
// URL, query included, so without the sweep unique search queries would grow
// the map for the life of the process.
func (c *Client) store(key string, body []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, entry := range c.cache {
		if now.After(entry.expiresAt) {
			delete(c.cache, k)
		}
	}
	c.cache[key] = cacheEntry{body: body, expiresAt: now.Add(ttl)}
}
