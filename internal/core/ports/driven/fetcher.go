package driven

import (
	"context"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

// Fetcher resolves a forum API path to a parsed JSON document.
// Path is relative to the forum base and includes the query string,
// e.g. "/top.json?page=0&period=weekly".
type Fetcher interface {
	// Name identifies the strategy for logging.
	Name() string

	// Fetch performs one GET and decodes the JSON object body.
	// Transport failures, non-success statuses and non-JSON bodies
	// are returned as errors wrapping the domain fetch errors.
	Fetch(ctx context.Context, path string) (domain.Document, error)
}
