package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/views/categories"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/views/thread"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/views/topics"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView       *menu.View
	topicsView     *topics.View
	threadView     *thread.View
	categoriesView *categories.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultSettings()
	if ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("tui: using default settings: %v", err)
		} else {
			settings = loaded
		}
	}

	s := styles.DefaultStyles()
	f := listing.New(listing.ModeHuman, listing.WithBaseURL(settings.BaseURL))

	menuView := menu.NewView(s)
	menuView.SetSubtitle(settings.BaseURL)

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menuView,
		topicsView:     topics.NewView(s, ports.Forum, f, settings.Limit),
		threadView:     thread.NewView(s, ports.Forum, f, settings.ReadLimit),
		categoriesView: categories.NewView(s, ports.Forum, f),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.topicsView.WithContext(ctx)
	a.threadView.WithContext(ctx)
	a.categoriesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("ldo")
}

// Update implements tea.Model.
//
//nolint:gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewTopics:
			a.topicsView, cmd = a.topicsView.Update(msg)
		case messages.ViewThread:
			a.threadView, cmd = a.threadView.Update(msg)
		case messages.ViewCategories:
			a.categoriesView, cmd = a.categoriesView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewCategories {
			return a, a.categoriesView.Init()
		}
		return a, nil

	case messages.ListingRequested:
		back := messages.ViewMenu
		if a.currentView == messages.ViewCategories {
			back = messages.ViewCategories
		}
		a.currentView = messages.ViewTopics
		return a, a.topicsView.Open(msg.Request, back)

	case messages.CategorySelected:
		a.currentView = messages.ViewTopics
		req := domain.ListingRequest{
			Kind:     domain.ListingLatest,
			Category: domain.CategoryRef{Slug: msg.Category.Slug, ID: msg.Category.ID},
		}
		return a, a.topicsView.Open(req, messages.ViewCategories)

	case messages.TopicSelected:
		a.currentView = messages.ViewThread
		return a, a.threadView.Open(msg.Topic)

	case messages.TopicsLoaded:
		a.err = msg.Err
		a.topicsView, cmd = a.topicsView.Update(msg)
		return a, cmd

	case messages.ThreadLoaded:
		a.err = msg.Err
		a.threadView, cmd = a.threadView.Update(msg)
		return a, cmd

	case messages.CategoriesLoaded:
		a.err = msg.Err
		a.categoriesView, cmd = a.categoriesView.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		// Route ticks to every view; each ignores ticks from other spinners.
		var cmds [3]tea.Cmd
		a.topicsView, cmds[0] = a.topicsView.Update(msg)
		a.threadView, cmds[1] = a.threadView.Update(msg)
		a.categoriesView, cmds[2] = a.categoriesView.Update(msg)
		return a, tea.Batch(cmds[:]...)

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewTopics:
		return a.topicsView.View()
	case messages.ViewThread:
		return a.threadView.View()
	case messages.ViewCategories:
		return a.categoriesView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Topics and categories:
  j/k, ↑/↓    Move selection
  enter       Open
  n/p         Next/previous page
  r           Reload

Thread:
  j/k, ↑/↓    Scroll
  pgup/pgdn   Scroll a screen
  g/G         Top/bottom
  n/p         Next/previous page of posts

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.topicsView.SetDimensions(width, height)
	a.threadView.SetDimensions(width, height)
	a.categoriesView.SetDimensions(width, height)
}
