package discourse

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds or HTTP date).
const HeaderRetryAfter = "Retry-After"

// RateLimiter throttles requests proactively and backs off when the forum
// answers 429.
type RateLimiter struct {
	mu           sync.Mutex
	bucket       *rate.Limiter // proactive throttling
	blockedUntil time.Time     // from Retry-After
	now          func() time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests per second
// with a burst of one.
func NewRateLimiter(perSecond float64) *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(perSecond), 1),
		now:    time.Now,
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	blockedUntil := r.blockedUntil
	now := r.now()
	r.mu.Unlock()

	if now.Before(blockedUntil) {
		timer := time.NewTimer(blockedUntil.Sub(now))
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.bucket.Wait(ctx)
}

// UpdateFromResponse records a Retry-After back-off from a 429 response
// and returns its duration (zero when none applies).
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) time.Duration {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	wait := parseRetryAfter(resp.Header.Get(HeaderRetryAfter), r.now())
	if wait > 0 {
		r.blockedUntil = r.now().Add(wait)
	}
	return wait
}

// BlockedUntil returns the end of the current back-off, if any.
func (r *RateLimiter) BlockedUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blockedUntil
}

func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
