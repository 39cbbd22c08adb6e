// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

const (
	indicatorWidth = 2
	columnGap      = 1
	minFlexWidth   = 10
	// reservedLines covers the header and the surrounding view chrome.
	reservedLines = 6
)

// TableList displays the rows of a listing table as a navigable list.
type TableList struct {
	table    *listing.Table
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewTableList creates a new table list component.
func NewTableList(s *styles.Styles) *TableList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &TableList{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the list.
func (l *TableList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *TableList) Update(msg tea.Msg) (*TableList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if n := l.Count(); n > 0 {
				l.selected = n - 1
			}
		}
	}
	return l, nil
}

// View renders the header and the visible window of rows.
func (l *TableList) View() string {
	if l.IsEmpty() {
		return l.styles.Muted.Render("No topics")
	}

	widths := l.columnWidths()
	lines := make([]string, 0, l.visibleCount()+1)

	header := make([]string, len(l.table.Columns))
	for i, col := range l.table.Columns {
		header[i] = pad(col.Header, widths[i], col.Align)
	}
	lines = append(lines, strings.Repeat(" ", indicatorWidth)+
		l.styles.Header.Render(strings.Join(header, " ")))

	start, end := l.window()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i, widths))
	}

	return strings.Join(lines, "\n")
}

func (l *TableList) renderRow(index int, widths []int) string {
	row := l.table.Rows[index]
	selected := index == l.selected

	cells := make([]string, len(l.table.Columns))
	for i, col := range l.table.Columns {
		var cell listing.Cell
		if i < len(row) {
			cell = row[i]
		}
		text := pad(ansi.Truncate(cell.String(), widths[i], "…"), widths[i], col.Align)
		if selected {
			cells[i] = text
			continue
		}
		cells[i] = l.cellStyle(col.Role, cell.Emphasis).Render(text)
	}

	if selected {
		return l.styles.Selected.Render("> " + strings.Join(cells, " "))
	}
	return "  " + strings.Join(cells, " ")
}

func (l *TableList) cellStyle(role listing.Role, emphasis listing.Emphasis) lipgloss.Style {
	if emphasis == listing.EmphasisPinned {
		return l.styles.Pinned
	}
	switch role {
	case listing.RoleID:
		return l.styles.ID
	case listing.RoleLikes:
		return l.styles.Likes
	case listing.RoleMuted:
		return l.styles.Muted
	default:
		return l.styles.Normal
	}
}

// columnWidths resolves fixed widths and shares what is left among flex columns.
func (l *TableList) columnWidths() []int {
	cols := l.table.Columns
	widths := make([]int, len(cols))

	used := indicatorWidth + columnGap*(len(cols)-1)
	flex := 0
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			used += col.Width
		} else {
			flex++
		}
	}
	if flex == 0 {
		return widths
	}

	each := (l.width - used) / flex
	if each < minFlexWidth {
		each = minFlexWidth
	}
	for i, col := range cols {
		if col.Width == 0 {
			widths[i] = each
		}
	}
	return widths
}

func (l *TableList) visibleCount() int {
	n := l.height - reservedLines
	if n < 1 {
		n = 1
	}
	return n
}

// window returns the row range that keeps the selection visible.
func (l *TableList) window() (int, int) {
	visible := l.visibleCount()
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > l.Count() {
		end = l.Count()
	}
	return start, end
}

// pad fills s with spaces up to width display cells.
func pad(s string, width int, align listing.Align) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if align == listing.AlignRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// SetTable replaces the rows and resets the selection.
func (l *TableList) SetTable(t *listing.Table) {
	l.table = t
	l.selected = 0
}

// Table returns the current table.
func (l *TableList) Table() *listing.Table {
	return l.table
}

// Selected returns the index of the selected row.
func (l *TableList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *TableList) SetSelected(index int) {
	if index >= 0 && index < l.Count() {
		l.selected = index
	}
}

// MoveUp moves selection up.
func (l *TableList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *TableList) MoveDown() {
	if l.selected < l.Count()-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *TableList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of rows.
func (l *TableList) Count() int {
	if l.table == nil {
		return 0
	}
	return len(l.table.Rows)
}

// IsEmpty returns whether the list has no rows.
func (l *TableList) IsEmpty() bool {
	return l.Count() == 0
}
