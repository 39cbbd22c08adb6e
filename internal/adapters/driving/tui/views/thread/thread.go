// Package thread provides the scrollable post view for the TUI.
package thread

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

const (
	maxSeparator = 80
	minWrapWidth = 20
	// reservedLines covers the title, spacing and status bar.
	reservedLines = 6
)

// View is the thread view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	forum     driving.ForumService
	formatter *listing.Formatter
	ctx       context.Context

	bar     *status.Bar
	spinner spinner.Model

	topicID int
	title   string
	page    int
	limit   int

	thread       *listing.ThreadView
	lines        []string
	scrollOffset int

	loading bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new thread view. limit caps the posts shown per page.
func NewView(s *styles.Styles, forum driving.ForumService, f *listing.Formatter, limit int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if f == nil {
		f = listing.New(listing.ModeHuman)
	}
	km := keymap.DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	bar := status.NewBar(s, km)
	bar.SetBindings(km.ThreadHelp())

	return &View{
		styles:    s,
		keymap:    km,
		forum:     forum,
		formatter: f,
		ctx:       context.Background(),
		bar:       bar,
		spinner:   sp,
		limit:     limit,
		page:      1,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open starts loading the first page of a topic.
func (v *View) Open(topic domain.Topic) tea.Cmd {
	v.topicID = topic.ID
	v.title = topic.Title
	v.page = 1
	return v.reload()
}

func (v *View) reload() tea.Cmd {
	v.thread = nil
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.loading = true
	v.bar.SetState(status.StateLoading)
	v.bar.SetMessage(fmt.Sprintf("Fetching topic %d...", v.topicID))
	return tea.Batch(v.spinner.Tick, v.load(v.topicID, v.page))
}

// load returns a command that fetches one page of the thread.
func (v *View) load(id, page int) tea.Cmd {
	forum, ctx := v.forum, v.ctx
	return func() tea.Msg {
		if forum == nil {
			return messages.ThreadLoaded{TopicID: id, Page: page, Err: fmt.Errorf("forum service not available")}
		}
		t, err := forum.Thread(ctx, id, page)
		return messages.ThreadLoaded{TopicID: id, Page: page, Thread: t, Err: err}
	}
}

// Update handles messages for the thread view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ThreadLoaded:
		v.handleLoaded(msg)
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleLoaded(msg messages.ThreadLoaded) {
	if msg.TopicID != v.topicID || msg.Page != v.page {
		return
	}
	v.loading = false

	if msg.Err != nil {
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return
	}
	if msg.Thread == nil {
		v.err = fmt.Errorf("%w: empty thread", domain.ErrInvalidResponse)
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(v.err.Error())
		return
	}

	v.thread = v.formatter.Thread(*msg.Thread, v.limit).Thread
	v.title = v.thread.Title
	v.bar.Clear()
	v.bar.SetPage(fmt.Sprintf("Page %d", v.page))
	v.bar.SetCount(len(v.thread.Posts))
	v.wrapContent()
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	km := v.keymap
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, km.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewTopics}
		}
	case keymap.Matches(keyStr, km.Reload):
		return v, v.reload()
	}

	if v.loading {
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, km.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(keyStr, km.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keymap.Matches(keyStr, km.PageUp):
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case keymap.Matches(keyStr, km.PageDown):
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > v.maxScrollOffset() {
			v.scrollOffset = v.maxScrollOffset()
		}
	case keymap.Matches(keyStr, km.Top):
		v.scrollOffset = 0
	case keymap.Matches(keyStr, km.Bottom):
		v.scrollOffset = v.maxScrollOffset()
	case keymap.Matches(keyStr, km.NextPage):
		if v.thread == nil || len(v.thread.Posts) == 0 {
			return v, nil
		}
		v.page++
		return v, v.reload()
	case keymap.Matches(keyStr, km.PrevPage):
		if v.page <= 1 {
			return v, nil
		}
		v.page--
		return v, v.reload()
	}

	return v, nil
}

// wrapContent renders the posts into display lines for the view width.
func (v *View) wrapContent() {
	if v.thread == nil {
		v.lines = nil
		return
	}

	contentWidth := v.width - 4
	if contentWidth < minWrapWidth {
		contentWidth = minWrapWidth
	}
	sep := v.styles.Muted.Render(strings.Repeat("─", min(contentWidth, maxSeparator)))

	meta := ansi.Truncate(fmt.Sprintf("%s | Page %d", v.thread.URL, v.thread.Page), contentWidth, "…")
	v.lines = []string{v.styles.Muted.Render(meta), ""}
	if len(v.thread.Posts) == 0 {
		v.lines = append(v.lines, v.styles.Muted.Render("(No posts on this page)"))
		return
	}

	for _, p := range v.thread.Posts {
		v.lines = append(v.lines, v.postHeader(p))
		if p.Content != "" {
			wrapped := ansi.Wrap(p.Content, contentWidth, "")
			v.lines = append(v.lines, strings.Split(wrapped, "\n")...)
		}
		v.lines = append(v.lines, sep)
	}
}

func (v *View) postHeader(p listing.PostView) string {
	header := v.styles.PostNumber.Render(fmt.Sprintf("#%d", p.Number)) + " " +
		v.styles.Username.Render(p.Username)
	if p.Age != "" {
		header += " " + v.styles.Muted.Render(p.Age+" ago")
	}
	if p.Likes > 0 {
		header += " " + v.styles.Likes.Render(fmt.Sprintf("♥ %d", p.Likes))
	}
	return header
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	available := v.height - reservedLines
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the thread view.
func (v *View) View() string {
	var b strings.Builder

	title := v.title
	if title == "" {
		title = fmt.Sprintf("Topic %d", v.topicID)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render("Loading posts..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	default:
		visible := v.visibleLines()
		for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visible; i++ {
			b.WriteString(v.lines[i])
			b.WriteString("\n")
		}
		if len(v.lines) > visible {
			percentage := 0
			if v.maxScrollOffset() > 0 {
				percentage = v.scrollOffset * 100 / v.maxScrollOffset()
			}
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
				percentage,
				v.scrollOffset+1,
				min(v.scrollOffset+visible, len(v.lines)),
				len(v.lines))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.bar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.SetWidth(width)
	v.wrapContent()
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// TopicID returns the topic being shown.
func (v *View) TopicID() int {
	return v.topicID
}

// Page returns the current 1-based page.
func (v *View) Page() int {
	return v.page
}

// Thread returns the rendered thread page, or nil while loading.
func (v *View) Thread() *listing.ThreadView {
	return v.thread
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last fetch error.
func (v *View) Err() error {
	return v.err
}
