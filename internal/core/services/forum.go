package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// Ensure ForumService implements the interface.
var _ driving.ForumService = (*ForumService)(nil)

// ForumService maps forum requests onto fetcher paths and records.
// Every call performs exactly one fetch.
type ForumService struct {
	fetcher driven.Fetcher
}

// NewForumService creates a new forum service.
func NewForumService(fetcher driven.Fetcher) *ForumService {
	return &ForumService{fetcher: fetcher}
}

// Topics fetches one page of a topic listing.
func (s *ForumService) Topics(ctx context.Context, req domain.ListingRequest) ([]domain.Topic, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	path := ListingPath(req)
	logger.Section("Topic Listing")
	logger.Debug("Listing %s via %s: %s", req.Kind, s.fetcher.Name(), path)

	doc, err := s.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s topics: %w", req.Kind, err)
	}

	topics := domain.TopicsFromListing(doc)
	logger.Debug("Received %d topics", len(topics))
	return topics, nil
}

// Thread fetches one page of a topic's post stream. Pages start at 1.
func (s *ForumService) Thread(ctx context.Context, topicID, page int) (*domain.Thread, error) {
	if topicID <= 0 {
		return nil, fmt.Errorf("%w: topic id must be positive, got %d", domain.ErrInvalidInput, topicID)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidInput, page)
	}

	path := ThreadPath(topicID, page)
	logger.Section("Topic Detail")
	logger.Debug("Reading topic %d page %d via %s: %s", topicID, page, s.fetcher.Name(), path)

	doc, err := s.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch topic %d: %w", topicID, err)
	}

	thread := domain.ThreadFromDocument(doc, topicID, page)
	logger.Debug("Received %d posts of %d", len(thread.Posts), thread.PostsCount)
	return &thread, nil
}

// Categories fetches the category list.
func (s *ForumService) Categories(ctx context.Context) ([]domain.Category, error) {
	logger.Section("Categories")
	logger.Debug("Listing categories via %s: %s", s.fetcher.Name(), CategoriesPath)

	doc, err := s.fetcher.Fetch(ctx, CategoriesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	cats := domain.CategoriesFromList(doc)
	logger.Debug("Received %d categories", len(cats))
	return cats, nil
}

// CategoriesPath is the category list endpoint.
const CategoriesPath = "/categories.json"

// ListingPath returns the endpoint path and query for a listing request:
// /{kind}.json or /c/{slug}/{id}/l/{kind}.json, with page always set,
// period only for top and order only when given.
func ListingPath(req domain.ListingRequest) string {
	var path string
	if req.Category.IsZero() {
		path = fmt.Sprintf("/%s.json", req.Kind)
	} else {
		path = fmt.Sprintf("/c/%s/%d/l/%s.json", url.PathEscape(req.Category.Slug), req.Category.ID, req.Kind)
	}

	q := url.Values{}
	q.Set("page", fmt.Sprint(req.Page))
	if req.Kind == domain.ListingTop && req.Period != "" {
		q.Set("period", string(req.Period))
	}
	if req.Order != "" {
		q.Set("order", string(req.Order))
	}
	return path + "?" + q.Encode()
}

// ThreadPath returns the endpoint path for one page of a topic.
func ThreadPath(topicID, page int) string {
	return fmt.Sprintf("/t/%d.json?page=%d", topicID, page)
}
