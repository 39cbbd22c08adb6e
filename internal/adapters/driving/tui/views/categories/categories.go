// Package categories provides the category list view for the TUI.
package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
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

// View lists forum categories. Selecting one opens its latest topics.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	forum     driving.ForumService
	formatter *listing.Formatter
	ctx       context.Context

	list    *list.TableList
	bar     *status.Bar
	spinner spinner.Model

	categories []domain.Category
	loading    bool
	err        error
}

// NewView creates a new categories view.
func NewView(s *styles.Styles, forum driving.ForumService, f *listing.Formatter) *View {
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
	bar.SetBindings([]key.Binding{km.Select, km.Reload, km.Back})

	return &View{
		styles:    s,
		keymap:    km,
		forum:     forum,
		formatter: f,
		ctx:       context.Background(),
		list:      list.NewTableList(s),
		bar:       bar,
		spinner:   sp,
	}
}

// WithContext sets the context used for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts loading the category list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	v.bar.SetState(status.StateLoading)
	v.bar.SetMessage("Fetching categories...")
	return tea.Batch(v.spinner.Tick, v.load())
}

func (v *View) load() tea.Cmd {
	forum, ctx := v.forum, v.ctx
	return func() tea.Msg {
		if forum == nil {
			return messages.CategoriesLoaded{Err: fmt.Errorf("forum service not available")}
		}
		cats, err := forum.Categories(ctx)
		return messages.CategoriesLoaded{Categories: cats, Err: err}
	}
}

// Update handles messages for the categories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CategoriesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.categories = msg.Categories
		v.list.SetTable(v.formatter.Categories(msg.Categories).Table)
		v.bar.Clear()
		v.bar.SetCount(len(msg.Categories))
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

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.Reload):
		return v, v.Init()
	case v.loading:
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Select):
		cat, ok := v.SelectedCategory()
		if !ok {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.CategorySelected{Category: cat}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the categories view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Categories"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.bar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.list.SetDimensions(width, height)
	v.bar.SetWidth(width)
}

// Categories returns the loaded categories.
func (v *View) Categories() []domain.Category {
	return v.categories
}

// SelectedCategory returns the highlighted category.
func (v *View) SelectedCategory() (domain.Category, bool) {
	i := v.list.Selected()
	if i < 0 || i >= len(v.categories) {
		return domain.Category{}, false
	}
	return v.categories[i], true
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last fetch error.
func (v *View) Err() error {
	return v.err
}
