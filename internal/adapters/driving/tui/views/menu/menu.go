// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

// Item represents a single menu option.
// An item with a Listing opens that listing; otherwise it switches to View.
type Item struct {
	Label   string
	Listing domain.ListingKind
	View    messages.ViewType
	Quit    bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	subtitle string
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Top", Listing: domain.ListingTop, View: messages.ViewTopics},
			{Label: "Hot", Listing: domain.ListingHot, View: messages.ViewTopics},
			{Label: "Latest", Listing: domain.ListingLatest, View: messages.ViewTopics},
			{Label: "Categories", View: messages.ViewCategories},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		subtitle: domain.DefaultBaseURL,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// SetSubtitle sets the line shown under the title, usually the forum URL.
func (v *View) SetSubtitle(subtitle string) {
	v.subtitle = subtitle
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.choose(v.items[v.selected])

		case "?":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHelp}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) choose(item Item) tea.Cmd {
	switch {
	case item.Quit:
		return tea.Quit
	case item.Listing != "":
		req := domain.ListingRequest{Kind: item.Listing}
		return func() tea.Msg {
			return messages.ListingRequested{Request: req}
		}
	default:
		return func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("ldo"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(v.subtitle))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Title.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [?] Help  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
