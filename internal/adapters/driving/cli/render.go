package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

const (
	defaultWidth   = 80
	separatorWidth = 80
	minFlexWidth   = 10
	cellPadding    = 1
	minTitleWidth  = 4
)

var cliStyles = styles.DefaultStyles()

// terminalWidth returns the width of w, or 80 when w is not a terminal.
var terminalWidth = func(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// render writes a formatter output to the command's stdout.
func render(cmd *cobra.Command, out listing.Output) error {
	w := cmd.OutOrStdout()

	switch {
	case out.Mode == listing.ModeJSON:
		return writeJSON(w, out.Records)
	case out.Table != nil:
		fmt.Fprintln(w, drawTable(out.Table, terminalWidth(w)))
		if out.Table.Footer != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, cliStyles.Muted.Render(out.Table.Footer))
		}
	case out.Thread != nil:
		fmt.Fprint(w, drawThread(out.Thread, terminalWidth(w)))
	}
	return nil
}

// writeJSON prints v as indented JSON without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}

// drawTable renders a table model with lipgloss. Fixed-width columns keep
// their width; the remaining space goes to the flexible column, whose text
// is truncated with an ellipsis.
func drawTable(t *listing.Table, width int) string {
	flexWidth := flexColumnWidth(t.Columns, width)

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			limit := 0
			if j < len(t.Columns) && t.Columns[j].Width == 0 {
				limit = flexWidth
			}
			cells[j] = drawCell(cell, limit)
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(cliStyles.TableBorder).
		Headers(t.Header()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, cellPadding)
			if col >= len(t.Columns) {
				return style
			}
			column := t.Columns[col]

			if column.Width > 0 {
				style = style.Width(column.Width + 2*cellPadding)
			} else {
				style = style.Width(flexWidth + 2*cellPadding)
			}
			if column.Align == listing.AlignRight {
				style = style.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				return style.Inherit(cliStyles.Header)
			}
			return style.Inherit(roleStyle(column.Role))
		})

	out := tbl.Render()
	if t.Title != "" {
		title := lipgloss.PlaceHorizontal(lipgloss.Width(out), lipgloss.Center, cliStyles.Title.Render(t.Title))
		out = title + "\n" + out
	}
	return out
}

// flexColumnWidth is what remains of width after fixed columns, padding
// and borders.
func flexColumnWidth(columns []listing.Column, width int) int {
	used := len(columns) + 1 // vertical borders
	flex := 0
	for _, c := range columns {
		used += 2 * cellPadding
		if c.Width > 0 {
			used += c.Width
		} else {
			flex++
		}
	}
	if flex == 0 {
		return 0
	}
	remaining := (width - used) / flex
	if remaining < minFlexWidth {
		return minFlexWidth
	}
	return remaining
}

func drawCell(cell listing.Cell, limit int) string {
	text := cell.Text
	suffix := strings.Join(cell.Suffix, " ")

	if limit > 0 {
		// Tags give way once the title would shrink below minTitleWidth.
		if suffix != "" && lipgloss.Width(text)+1+lipgloss.Width(suffix) > limit &&
			limit-1-lipgloss.Width(suffix) < minTitleWidth {
			suffix = ""
		}
		textLimit := limit
		if suffix != "" {
			textLimit = limit - 1 - lipgloss.Width(suffix)
		}
		text = ansi.Truncate(text, textLimit, "…")
	}

	if cell.Emphasis == listing.EmphasisPinned {
		text = cliStyles.Pinned.Render(text)
	}
	if suffix != "" {
		text += " " + cliStyles.Tag.Render(suffix)
	}
	return text
}

func roleStyle(role listing.Role) lipgloss.Style {
	switch role {
	case listing.RoleID:
		return cliStyles.ID
	case listing.RoleLikes:
		return cliStyles.Likes
	case listing.RoleMuted:
		return cliStyles.Muted
	default:
		return lipgloss.NewStyle()
	}
}

// drawThread renders a thread header panel followed by each post.
func drawThread(v *listing.ThreadView, width int) string {
	var b strings.Builder

	meta := fmt.Sprintf("%s | Page %d", v.URL, v.Page)
	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(v.Title),
		cliStyles.Muted.Render(meta),
	)
	b.WriteString(cliStyles.Panel.Render(header))
	b.WriteString("\n")

	sepWidth := width
	if sepWidth > separatorWidth {
		sepWidth = separatorWidth
	}
	separator := cliStyles.Muted.Render(strings.Repeat("─", sepWidth))

	for _, p := range v.Posts {
		b.WriteString("\n")
		b.WriteString(postHeader(p))
		b.WriteString("\n")
		if p.Content != "" {
			b.WriteString(p.Content)
			b.WriteString("\n")
		}
		b.WriteString(separator)
		b.WriteString("\n")
	}
	return b.String()
}

func postHeader(p listing.PostView) string {
	parts := []string{
		cliStyles.PostNumber.Render(fmt.Sprintf("#%d", p.Number)),
		cliStyles.Username.Render(p.Username),
	}
	if p.Age != "" {
		parts = append(parts, cliStyles.Muted.Render(p.Age+" ago"))
	}
	if p.Likes > 0 {
		parts = append(parts, cliStyles.Likes.Render(fmt.Sprintf("♥ %d", p.Likes)))
	}
	return strings.Join(parts, " ")
}
