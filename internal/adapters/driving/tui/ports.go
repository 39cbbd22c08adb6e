// Package tui provides an interactive terminal browser for the forum.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Forum reads listings, categories and threads.
	Forum driving.ForumService

	// Settings supplies display limits and the forum base URL. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(forum driving.ForumService, settings driving.SettingsService) *Ports {
	return &Ports{
		Forum:    forum,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Forum == nil {
		return ErrMissingForumService
	}
	return nil
}
