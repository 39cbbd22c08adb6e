// Package mcp provides an MCP (Model Context Protocol) server adapter for ldo.
// It lets AI assistants list and read forum topics.
package mcp

import "errors"

// ErrMissingForumService is returned when the forum service is not provided.
var ErrMissingForumService = errors.New("mcp: forum service is required")
