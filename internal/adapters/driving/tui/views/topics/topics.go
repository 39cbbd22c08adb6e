// Package topics provides the topic listing view for the TUI.
package topics

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

// View shows one page of a topic listing.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	forum     driving.ForumService
	formatter *listing.Formatter
	ctx       context.Context

	list    *list.TableList
	bar     *status.Bar
	spinner spinner.Model

	req     domain.ListingRequest
	back    messages.ViewType
	topics  []domain.Topic
	limit   int
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a topic listing view. A limit of zero shows every topic.
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
	bar.SetBindings(km.ListHelp())

	return &View{
		styles:    s,
		keymap:    km,
		forum:     forum,
		formatter: f,
		ctx:       context.Background(),
		list:      list.NewTableList(s),
		bar:       bar,
		spinner:   sp,
		back:      messages.ViewMenu,
		limit:     limit,
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

// Open switches the view to req and starts loading it.
// back is the view esc returns to.
func (v *View) Open(req domain.ListingRequest, back messages.ViewType) tea.Cmd {
	v.req = req
	v.back = back
	v.topics = nil
	v.list.SetTable(nil)
	return v.reload()
}

func (v *View) reload() tea.Cmd {
	v.loading = true
	v.err = nil
	v.bar.SetState(status.StateLoading)
	v.bar.SetMessage(fmt.Sprintf("Fetching %s...", strings.ToLower(listing.TopicsTitle(v.req))))
	return tea.Batch(v.spinner.Tick, v.load(v.req))
}

// load returns a command that fetches one listing page.
func (v *View) load(req domain.ListingRequest) tea.Cmd {
	forum, ctx := v.forum, v.ctx
	return func() tea.Msg {
		if forum == nil {
			return messages.TopicsLoaded{Request: req, Err: fmt.Errorf("forum service not available")}
		}
		topics, err := forum.Topics(ctx, req)
		return messages.TopicsLoaded{Request: req, Topics: topics, Err: err}
	}
}

// Update handles messages for the topics view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.TopicsLoaded:
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

func (v *View) handleLoaded(msg messages.TopicsLoaded) {
	// A response for a page we already left.
	if msg.Request != v.req {
		return
	}
	v.loading = false

	if msg.Err != nil {
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return
	}

	out := v.formatter.Topics(listing.TopicsTitle(v.req), msg.Topics, v.limit)
	v.topics = msg.Topics[:len(out.Table.Rows)]
	v.list.SetTable(out.Table)
	v.bar.Clear()
	v.bar.SetPage(fmt.Sprintf("Page %d", v.req.Page+1))
	v.bar.SetCount(len(v.topics))
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	km := v.keymap
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, km.Back):
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	case keymap.Matches(keyStr, km.Reload):
		return v, v.reload()
	}

	if v.loading {
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, km.Select):
		topic, ok := v.SelectedTopic()
		if !ok {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.TopicSelected{Topic: topic}
		}
	case keymap.Matches(keyStr, km.NextPage):
		if len(v.topics) == 0 {
			return v, nil
		}
		v.req.Page++
		return v, v.reload()
	case keymap.Matches(keyStr, km.PrevPage):
		if v.req.Page == 0 {
			return v, nil
		}
		v.req.Page--
		return v, v.reload()
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the topics view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(listing.TopicsTitle(v.req)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[r] retry  [esc] back"))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.bar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height)
	v.bar.SetWidth(width)
}

// Request returns the listing currently shown.
func (v *View) Request() domain.ListingRequest {
	return v.req
}

// Topics returns the topics currently shown.
func (v *View) Topics() []domain.Topic {
	return v.topics
}

// SelectedTopic returns the highlighted topic.
func (v *View) SelectedTopic() (domain.Topic, bool) {
	i := v.list.Selected()
	if i < 0 || i >= len(v.topics) {
		return domain.Topic{}, false
	}
	return v.topics[i], true
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last fetch error.
func (v *View) Err() error {
	return v.err
}
