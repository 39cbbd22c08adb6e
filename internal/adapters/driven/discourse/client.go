package discourse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

// maxBodySize caps how much of a response is read.
const maxBodySize = 32 << 20

// Config holds the HTTP client settings.
type Config struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	RequestsPerSec float64
}

// ConfigFromSettings extracts the HTTP settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		BaseURL:        s.BaseURL,
		UserAgent:      s.UserAgent,
		Timeout:        s.Timeout,
		RequestsPerSec: s.RequestsPerSec,
	}
}

// Client fetches JSON documents over HTTP.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *RateLimiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The configured timeout
// is not applied to it.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimiter shares a limiter between clients.
func WithRateLimiter(l *RateLimiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a new forum HTTP client.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultTimeout
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = domain.DefaultRequestsPerSec
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    NewRateLimiter(cfg.RequestsPerSec),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the fetcher name.
func (c *Client) Name() string {
	return string(domain.FetchHTTP)
}

// BaseURL returns the forum base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch GETs base+path and decodes the JSON object it returns.
func (c *Client) Fetch(ctx context.Context, path string) (domain.Document, error) {
	url := c.baseURL + path
	reqID := uuid.NewString()
	defer logger.Timer(fmt.Sprintf("[%s] GET %s", reqID[:8], url))()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrFetchFailed, err)
	}
	logger.Debug("[%s] HTTP %d, %d bytes, %s", reqID[:8], resp.StatusCode, len(body), resp.Header.Get("Content-Type"))

	retryAfter := c.limiter.UpdateFromResponse(resp)
	if err := checkResponse(resp, body, url, retryAfter); err != nil {
		return nil, err
	}

	return decodeDocument(body, url)
}

// decodeDocument parses a JSON object, keeping numbers as json.Number.
func decodeDocument(body []byte, url string) (domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc domain.Document
	if err := dec.Decode(&doc); err != nil {
		if looksLikeChallenge(body) {
			return nil, &APIError{StatusCode: http.StatusOK, URL: url, Message: "anti-bot challenge page", kind: domain.ErrChallenged}
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidResponse, url, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s: expected a JSON object", domain.ErrInvalidResponse, url)
	}
	return doc, nil
}
