package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ldo resources.
	uriScheme = "ldo://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "topics/{id}",
		Name:        "topic",
		Description: "First page of a topic's posts as JSON",
		MIMEType:    "application/json",
	}, s.handleTopicResource)
}

// handleTopicResource returns the first page of a topic.
func (s *Server) handleTopicResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractTopicID(req.Params.URI)
	if id <= 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.readThread(ctx, id, 1, s.opts.ReadLimit)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading topic %d: %w", id, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling topic: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTopicID extracts the topic id from a URI like ldo://topics/{id}.
// It returns 0 when the URI does not name a topic.
func extractTopicID(uri string) int {
	const prefix = uriScheme + "topics/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
