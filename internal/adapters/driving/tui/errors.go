package tui

import "errors"

// ErrMissingForumService is returned when the forum service is not provided.
var ErrMissingForumService = errors.New("tui: forum service is required")

// ErrInvalidPorts is returned when no ports are given at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
