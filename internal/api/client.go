package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"adscout/internal/domain"
)

// SearchPath is the collaborator endpoint for advertiser search
const SearchPath = "/api/search-advertisers"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "adscout/1.0"
	maxErrorBody     = 512
)

// Searcher is implemented by anything that can run an advertiser search
type Searcher interface {
	// SearchAdvertisers runs one search. query is sent as-is, callers trim it.
	SearchAdvertisers(ctx context.Context, query, countryCode string) ([]domain.Advertiser, error)
}

// APIError is returned when the response body carries an error field.
// Error returns the message verbatim.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusError is returned for a non-2xx response without an error field
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("search API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("search API returned status %d: %s", e.StatusCode, e.Body)
}

// SearchResponse is the collaborator's response envelope
type SearchResponse struct {
	Error   string              `json:"error,omitempty"`
	Results []domain.Advertiser `json:"results,omitempty"`
}

// Client talks to the collaborator search API over HTTP
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the overall request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchURL builds the request URL for a query. Parameter order is fixed:
// query first, then country_code.
func (c *Client) SearchURL(query, countryCode string) string {
	return fmt.Sprintf("%s%s?query=%s&country_code=%s",
		c.baseURL,
		SearchPath,
		url.QueryEscape(query),
		url.QueryEscape(countryCode),
	)
}

// SearchAdvertisers implements Searcher
func (c *Client) SearchAdvertisers(ctx context.Context, query, countryCode string) ([]domain.Advertiser, error) {
	searchURL := c.SearchURL(query, countryCode)
	log.WithField("url", searchURL).Info("Fetching advertisers")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var sr SearchResponse
	decodeErr := json.Unmarshal(body, &sr)

	// An error field wins over the status code
	if decodeErr == nil && sr.Error != "" {
		return nil, &APIError{Message: sr.Error, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(strings.TrimSpace(string(body)), maxErrorBody)}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if sr.Results == nil {
		sr.Results = []domain.Advertiser{}
	}

	log.WithFields(log.Fields{
		"query":   query,
		"country": countryCode,
		"results": len(sr.Results),
	}).Info("Search results received")

	return sr.Results, nil
}

// IsAPIError reports whether err was reported by the API itself
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
