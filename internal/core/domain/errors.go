package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the forum has no such topic or listing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Fetch Errors.

	// ErrFetchFailed indicates the transport failed before a usable response arrived.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidResponse indicates the response body was not a JSON document.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrRateLimited indicates the forum rejected the request with 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrChallenged indicates an anti-bot challenge page was served instead of JSON.
	// The browser fetcher can usually get past it.
	ErrChallenged = errors.New("blocked by anti-bot challenge")

	// ErrFetcherUnavailable indicates the configured fetch strategy cannot run here.
	ErrFetcherUnavailable = errors.New("fetcher unavailable")
)
