package mcp

import (
	"context"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
)

type threadCall struct{ id, page int }

// mockForumService is a mock implementation of driving.ForumService.
type mockForumService struct {
	topics     []domain.Topic
	categories []domain.Category
	thread     *domain.Thread
	err        error

	requests    []domain.ListingRequest
	threadCalls []threadCall
}

func (m *mockForumService) Topics(_ context.Context, req domain.ListingRequest) ([]domain.Topic, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

func (m *mockForumService) Thread(_ context.Context, id, page int) (*domain.Thread, error) {
	m.threadCalls = append(m.threadCalls, threadCall{id, page})
	if m.err != nil {
		return nil, m.err
	}
	return m.thread, nil
}

func (m *mockForumService) Categories(_ context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

// Compile-time interface check.
var _ driving.ForumService = (*mockForumService)(nil)

func sampleThread() *domain.Thread {
	return &domain.Thread{
		ID:    42,
		Title: "Hello",
		Slug:  "hello",
		Page:  1,
		Posts: []domain.Post{
			{Number: 1, Username: "alice", CreatedAt: "2024-01-01T00:00:00Z", LikeCount: 3, Cooked: "<p>first <em>post</em></p>"},
			{Number: 2, Username: "bob", Cooked: `<p>see <img src="/a.png"></p>`},
			{Number: 3, Username: "carol", Cooked: "<p>third</p>"},
		},
	}
}
