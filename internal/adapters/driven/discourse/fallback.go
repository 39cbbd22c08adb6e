package discourse

import (
	"context"
	"errors"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// Ensure Fallback implements the interface.
var _ driven.Fetcher = (*Fallback)(nil)

// Fallback tries a primary fetcher and retries once on a secondary when the
// primary hits an anti-bot challenge. Other errors are returned as-is.
type Fallback struct {
	primary   driven.Fetcher
	secondary driven.Fetcher
}

// NewFallback creates a fallback fetcher.
func NewFallback(primary, secondary driven.Fetcher) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// Name returns the fetcher name.
func (f *Fallback) Name() string {
	return f.primary.Name() + "+" + f.secondary.Name()
}

// Fetch fetches path, falling back on challenge.
func (f *Fallback) Fetch(ctx context.Context, path string) (domain.Document, error) {
	doc, err := f.primary.Fetch(ctx, path)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, domain.ErrChallenged) {
		return nil, err
	}

	logger.Warn("%s fetch challenged, retrying %s via %s", f.primary.Name(), path, f.secondary.Name())
	return f.secondary.Fetch(ctx, path)
}
