package listing

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Role tells the drawing layer how to style a column.
type Role int

const (
	RoleText Role = iota
	RoleID
	RoleCount
	RoleLikes
	RoleMuted
)

// Emphasis marks a cell for visual distinction.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisPinned
)

// Column describes one table column.
// Width is a fixed width in cells; zero lets the column take the remaining space.
type Column struct {
	Header string
	Align  Align
	Role   Role
	Width  int
}

// Cell is one table cell. Suffix holds trailing tokens (tags) that are drawn
// after Text in a muted style.
type Cell struct {
	Text     string
	Suffix   []string
	Emphasis Emphasis
}

// Row is one table row, one cell per column.
type Row []Cell

// Table is an abstract row/column structure.
type Table struct {
	Title   string
	Columns []Column
	Rows    []Row
	Footer  string
}

// Header returns the column headers in order.
func (t *Table) Header() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Plain returns each row as strings with suffix tokens joined onto the text.
func (t *Table) Plain() [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.String()
		}
		rows[i] = cells
	}
	return rows
}

// String returns the cell text followed by its suffix tokens.
func (c Cell) String() string {
	s := c.Text
	for _, tok := range c.Suffix {
		s += " " + tok
	}
	return s
}
