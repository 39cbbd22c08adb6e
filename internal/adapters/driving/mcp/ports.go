package mcp

import (
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Forum reads listings, categories and threads.
	Forum driving.ForumService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Forum == nil {
		return ErrMissingForumService
	}
	return nil
}
