package categories

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

type mockForum struct {
	calls      int
	categories []domain.Category
	err        error
}

func (m *mockForum) Topics(context.Context, domain.ListingRequest) ([]domain.Topic, error) {
	return nil, errors.New("not used")
}

func (m *mockForum) Thread(context.Context, int, int) (*domain.Thread, error) {
	return nil, errors.New("not used")
}

func (m *mockForum) Categories(context.Context) ([]domain.Category, error) {
	m.calls++
	return m.categories, m.err
}

func runLoad(t *testing.T, v *View, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if loaded, ok := c().(messages.CategoriesLoaded); ok {
			v.Update(loaded)
			return
		}
	}
	t.Fatal("no CategoriesLoaded in batch")
}

var sample = []domain.Category{
	{ID: 4, Name: "Development", Slug: "develop", TopicCount: 1200, PostCount: 34000},
	{ID: 2, Name: "Feedback", Slug: "feedback", TopicCount: 10, PostCount: 50},
}

func TestView_Init_Loads(t *testing.T) {
	forum := &mockForum{categories: sample}
	v := NewView(nil, forum, nil)
	v.SetDimensions(100, 30)

	cmd := v.Init()
	assert.True(t, v.Loading())

	runLoad(t, v, cmd)

	assert.False(t, v.Loading())
	assert.Equal(t, 1, forum.calls)
	assert.Len(t, v.Categories(), 2)
	out := v.View()
	assert.Contains(t, out, "Development")
	assert.Contains(t, out, "develop")
	assert.Contains(t, out, "1.2k")
}

func TestView_Error(t *testing.T) {
	v := NewView(nil, &mockForum{err: domain.ErrChallenged}, nil)
	runLoad(t, v, v.Init())

	assert.ErrorIs(t, v.Err(), domain.ErrChallenged)
	assert.Contains(t, v.View(), "Error:")
}

func TestView_Enter_SelectsCategory(t *testing.T) {
	v := NewView(nil, &mockForum{categories: sample}, nil)
	runLoad(t, v, v.Init())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.CategorySelected)
	require.True(t, ok)
	assert.Equal(t, "feedback", selected.Category.Slug)
	assert.Equal(t, 2, selected.Category.ID)
}

func TestView_Enter_WhileLoading(t *testing.T) {
	v := NewView(nil, &mockForum{categories: sample}, nil)
	v.Init()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Reload(t *testing.T) {
	forum := &mockForum{categories: sample}
	v := NewView(nil, forum, nil)
	runLoad(t, v, v.Init())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	runLoad(t, v, cmd)

	assert.Equal(t, 2, forum.calls)
}

func TestView_Back(t *testing.T) {
	v := NewView(nil, &mockForum{}, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
