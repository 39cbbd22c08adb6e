// Package styles provides the colour theme and lipgloss styles shared by
// the TUI and the CLI renderer.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour (panels, titles).
	Primary lipgloss.Color

	// Secondary marks identifiers and tags.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Like colours like counts.
	Like lipgloss.Color

	// Pinned colours pinned topic titles.
	Pinned lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
// ANSI colours keep the palette readable on both light and dark terminals.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("4"),  // Blue
		Secondary:  lipgloss.Color("6"),  // Cyan
		Foreground: lipgloss.Color("7"),  // White
		Muted:      lipgloss.Color("8"),  // Bright black
		Like:       lipgloss.Color("1"),  // Red
		Pinned:     lipgloss.Color("3"),  // Yellow
		Error:      lipgloss.Color("9"),  // Bright red
		Border:     lipgloss.Color("12"), // Bright blue
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted list items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// ID style for topic and category identifiers.
	ID lipgloss.Style

	// Likes style for like counts.
	Likes lipgloss.Style

	// Pinned style for pinned topic titles.
	Pinned lipgloss.Style

	// Tag style for tag tokens after a title.
	Tag lipgloss.Style

	// Header style for table headers.
	Header lipgloss.Style

	// Panel style for the thread header box.
	Panel lipgloss.Style

	// PostNumber style for "#n" in post headers.
	PostNumber lipgloss.Style

	// Username style for post authors.
	Username lipgloss.Style

	// TableBorder style for table rules.
	TableBorder lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Reverse(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		ID: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Likes: lipgloss.NewStyle().
			Foreground(theme.Like),

		Pinned: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Pinned),

		Tag: lipgloss.NewStyle().
			Faint(true).
			Foreground(theme.Secondary),

		Header: lipgloss.NewStyle().
			Bold(true),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		PostNumber: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Username: lipgloss.NewStyle().
			Bold(true),

		TableBorder: lipgloss.NewStyle().
			Foreground(theme.Border),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
