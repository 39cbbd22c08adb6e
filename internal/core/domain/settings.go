package domain

import (
	"fmt"
	"strings"
	"time"
)

// FetchStrategy selects how the forum is reached.
type FetchStrategy string

// Available fetch strategies.
const (
	// FetchHTTP talks to the JSON endpoints directly.
	FetchHTTP FetchStrategy = "http"

	// FetchBrowser drives an external browser-automation command.
	FetchBrowser FetchStrategy = "browser"

	// FetchAuto uses HTTP and falls back to the browser on an anti-bot challenge.
	FetchAuto FetchStrategy = "auto"
)

// IsValid returns true if the strategy is recognised.
func (s FetchStrategy) IsValid() bool {
	switch s {
	case FetchHTTP, FetchBrowser, FetchAuto:
		return true
	default:
		return false
	}
}

// Settings is the resolved application configuration.
type Settings struct {
	BaseURL        string
	Strategy       FetchStrategy
	Timeout        time.Duration
	RequestsPerSec float64
	UserAgent      string

	BrowserCommand string
	BrowserArgs    []string
	BrowserTimeout time.Duration

	Limit     int
	ReadLimit int
}

// Defaults.
const (
	DefaultBaseURL   = "https://linux.do"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/143.0.0.0 Safari/537.36"
	DefaultTimeout        = 30 * time.Second
	DefaultRequestsPerSec = 1.0
	DefaultBrowserCommand = "uv"
	DefaultBrowserTimeout = 90 * time.Second
	DefaultLimit          = 30
	DefaultReadLimit      = 10

	// URLPlaceholder is replaced by the request URL in browser arguments.
	URLPlaceholder = "{url}"
)

// DefaultBrowserArgs runs the localwebpy visitor through uv.
func DefaultBrowserArgs() []string {
	return []string{
		"run", "--directory", "~/w/localwebpy",
		"localwebpy", "visit", URLPlaceholder, "-c", "300",
	}
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:        DefaultBaseURL,
		Strategy:       FetchAuto,
		Timeout:        DefaultTimeout,
		RequestsPerSec: DefaultRequestsPerSec,
		UserAgent:      DefaultUserAgent,
		BrowserCommand: DefaultBrowserCommand,
		BrowserArgs:    DefaultBrowserArgs(),
		BrowserTimeout: DefaultBrowserTimeout,
		Limit:          DefaultLimit,
		ReadLimit:      DefaultReadLimit,
	}
}

// Validate checks the settings for values the adapters cannot work with.
func (s *Settings) Validate() error {
	if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		return fmt.Errorf("%w: base url must start with http:// or https://", ErrInvalidInput)
	}
	if !s.Strategy.IsValid() {
		return fmt.Errorf("%w: unknown fetch strategy %q", ErrInvalidInput, s.Strategy)
	}
	if s.Timeout <= 0 || s.BrowserTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidInput)
	}
	if s.RequestsPerSec <= 0 {
		return fmt.Errorf("%w: fetch rate must be positive", ErrInvalidInput)
	}
	if s.Strategy != FetchHTTP && strings.TrimSpace(s.BrowserCommand) == "" {
		return fmt.Errorf("%w: browser command is required for the %s strategy", ErrInvalidInput, s.Strategy)
	}
	if s.Limit < 0 || s.ReadLimit < 0 {
		return fmt.Errorf("%w: display limits must not be negative", ErrInvalidInput)
	}
	return nil
}
