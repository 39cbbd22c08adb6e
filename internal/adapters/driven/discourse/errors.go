package discourse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

// APIError is a non-success response from the forum.
// It unwraps to the matching domain error so callers can use errors.Is.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
	RetryAfter time.Duration
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discourse: HTTP %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap returns the domain error for the status.
func (e *APIError) Unwrap() error {
	return e.kind
}

// challengeMarkers appear in anti-bot interstitial pages.
var challengeMarkers = []string{
	"cf-chl",
	"challenge-platform",
	"just a moment...",
	"cf-browser-verification",
	"attention required!",
}

// looksLikeChallenge reports whether body is an HTML challenge page.
func looksLikeChallenge(body []byte) bool {
	head := body
	if len(head) > 64*1024 {
		head = head[:64*1024]
	}
	lower := strings.ToLower(string(head))
	if !strings.Contains(lower, "<html") && !strings.Contains(lower, "<!doctype html") {
		return false
	}
	for _, m := range challengeMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func isHTML(resp *http.Response, body []byte) bool {
	if strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "text/html") {
		return true
	}
	trimmed := bytes.ToLower(bytes.TrimSpace(body))
	return bytes.HasPrefix(trimmed, []byte("<!doctype html")) || bytes.HasPrefix(trimmed, []byte("<html"))
}

// checkResponse returns nil for 2xx responses and an *APIError otherwise.
func checkResponse(resp *http.Response, body []byte, url string, retryAfter time.Duration) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		URL:        url,
		Message:    errorMessage(resp.StatusCode, body),
		kind:       domain.ErrFetchFailed,
	}

	switch {
	case (resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable) &&
		isHTML(resp, body) && looksLikeChallenge(body):
		apiErr.kind = domain.ErrChallenged
		apiErr.Message = "anti-bot challenge page"
	case resp.StatusCode == http.StatusNotFound:
		apiErr.kind = domain.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		apiErr.kind = domain.ErrRateLimited
		apiErr.RetryAfter = retryAfter
	}
	return apiErr
}

// errorMessage extracts Discourse's {"errors": [...]} payload, falling back
// to the status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Errors []string `json:"errors"`
		Error  string   `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Errors) > 0 {
			return strings.Join(payload.Errors, "; ")
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected status"
}

// IsChallenged checks if the error is an anti-bot challenge.
func IsChallenged(err error) bool {
	return errors.Is(err, domain.ErrChallenged)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited)
}
