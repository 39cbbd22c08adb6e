package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

// ListTopicsInput is the input schema for the list_topics tool.
type ListTopicsInput struct {
	Kind     string `json:"kind,omitempty" jsonschema:"listing to fetch: top, hot or latest (default latest)"`
	Period   string `json:"period,omitempty" jsonschema:"period for top: daily, weekly, monthly, quarterly, yearly or all (default weekly)"`
	Order    string `json:"order,omitempty" jsonschema:"sort order: created, activity, views, posts or likes"`
	Page     int    `json:"page,omitempty" jsonschema:"0-based page number"`
	Category string `json:"category,omitempty" jsonschema:"restrict to a category given as slug/id"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of topics to return"`
}

// ListTopicsOutput is the output schema for the list_topics tool.
type ListTopicsOutput struct {
	Topics []domain.Topic `json:"topics"`
	Count  int            `json:"count"`
}

// ListCategoriesInput is the input schema for the list_categories tool.
type ListCategoriesInput struct{}

// ListCategoriesOutput is the output schema for the list_categories tool.
type ListCategoriesOutput struct {
	Categories []domain.Category `json:"categories"`
	Count      int               `json:"count"`
}

// ReadTopicInput is the input schema for the read_topic tool.
type ReadTopicInput struct {
	ID    int `json:"id" jsonschema:"the topic id"`
	Page  int `json:"page,omitempty" jsonschema:"1-based page of the post stream (default 1)"`
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of posts to return"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_topics",
		Description: "List forum topics from the top, hot or latest listing",
	}, s.handleListTopics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List forum categories with topic and post counts",
	}, s.handleListCategories)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_topic",
		Description: "Read one page of a topic's posts as markdown",
	}, s.handleReadTopic)
}

// handleListTopics handles the list_topics tool invocation.
func (s *Server) handleListTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListTopicsInput,
) (*mcp.CallToolResult, ListTopicsOutput, error) {
	req, err := listingRequest(input)
	if err != nil {
		return nil, ListTopicsOutput{}, err
	}

	topics, err := s.ports.Forum.Topics(ctx, req)
	if err != nil {
		return nil, ListTopicsOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.opts.Limit
	}
	records, _ := s.formatter.Topics(listing.TopicsTitle(req), topics, limit).Records.([]domain.Topic)

	return nil, ListTopicsOutput{Topics: records, Count: len(records)}, nil
}

func listingRequest(input ListTopicsInput) (domain.ListingRequest, error) {
	kind := domain.ListingKind(input.Kind)
	if kind == "" {
		kind = domain.ListingLatest
	}
	ref, err := domain.ParseCategoryRef(input.Category)
	if err != nil {
		return domain.ListingRequest{}, err
	}

	req := domain.ListingRequest{
		Kind:     kind,
		Page:     input.Page,
		Period:   domain.Period(input.Period),
		Order:    domain.Order(input.Order),
		Category: ref,
	}
	if err := req.Validate(); err != nil {
		return domain.ListingRequest{}, err
	}
	return req, nil
}

// handleListCategories handles the list_categories tool invocation.
func (s *Server) handleListCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCategoriesInput,
) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	cats, err := s.ports.Forum.Categories(ctx)
	if err != nil {
		return nil, ListCategoriesOutput{}, err
	}

	records, _ := s.formatter.Categories(cats).Records.([]domain.Category)
	return nil, ListCategoriesOutput{Categories: records, Count: len(records)}, nil
}

// handleReadTopic handles the read_topic tool invocation.
func (s *Server) handleReadTopic(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadTopicInput,
) (*mcp.CallToolResult, listing.ThreadRecord, error) {
	if input.ID <= 0 {
		return nil, listing.ThreadRecord{}, fmt.Errorf("%w: topic id must be a positive integer", domain.ErrInvalidInput)
	}
	page := input.Page
	if page <= 0 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = s.opts.ReadLimit
	}

	record, err := s.readThread(ctx, input.ID, page, limit)
	if err != nil {
		return nil, listing.ThreadRecord{}, err
	}
	return nil, record, nil
}

func (s *Server) readThread(ctx context.Context, id, page, limit int) (listing.ThreadRecord, error) {
	thread, err := s.ports.Forum.Thread(ctx, id, page)
	if err != nil {
		return listing.ThreadRecord{}, err
	}
	if thread == nil {
		return listing.ThreadRecord{}, fmt.Errorf("%w: empty thread", domain.ErrInvalidResponse)
	}

	record, _ := s.formatter.Thread(*thread, limit).Records.(listing.ThreadRecord)
	return record, nil
}
