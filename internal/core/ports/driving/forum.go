package driving

import (
	"context"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

// ForumService reads listings, categories and threads from the forum.
// Every call performs exactly one fetch; nothing is cached.
type ForumService interface {
	// Topics fetches one page of a topic listing.
	Topics(ctx context.Context, req domain.ListingRequest) ([]domain.Topic, error)

	// Thread fetches one page of a topic's post stream. Page is 1-based.
	Thread(ctx context.Context, topicID, page int) (*domain.Thread, error)

	// Categories fetches the category list.
	Categories(ctx context.Context) ([]domain.Category, error)
}
