// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewTopics is a topic listing.
	ViewTopics
	// ViewThread shows one page of a topic's posts.
	ViewThread
	// ViewCategories lists the forum categories.
	ViewCategories
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTopics:
		return "topics"
	case ViewThread:
		return "thread"
	case ViewCategories:
		return "categories"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ListingRequested asks for a topic listing to be opened.
type ListingRequested struct {
	Request domain.ListingRequest
}

// TopicsLoaded carries one page of a listing back to the model.
type TopicsLoaded struct {
	Request domain.ListingRequest
	Topics  []domain.Topic
	Err     error
}

// TopicSelected is sent when a topic is chosen from a listing.
type TopicSelected struct {
	Topic domain.Topic
}

// ThreadLoaded carries one page of a thread.
type ThreadLoaded struct {
	TopicID int
	Page    int
	Thread  *domain.Thread
	Err     error
}

// CategoriesLoaded carries the category list.
type CategoriesLoaded struct {
	Categories []domain.Category
	Err        error
}

// CategorySelected is sent when a category is chosen.
type CategorySelected struct {
	Category domain.Category
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
