package thread

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

type call struct{ id, page int }

type mockForum struct {
	calls []call
	posts int
	err   error
}

func (m *mockForum) Topics(context.Context, domain.ListingRequest) ([]domain.Topic, error) {
	return nil, errors.New("not used")
}

func (m *mockForum) Thread(_ context.Context, id, page int) (*domain.Thread, error) {
	m.calls = append(m.calls, call{id, page})
	if m.err != nil {
		return nil, m.err
	}
	posts := make([]domain.Post, m.posts)
	for i := range posts {
		posts[i] = domain.Post{
			Number:    i + 1,
			Username:  fmt.Sprintf("user%d", i+1),
			LikeCount: i,
			Cooked:    fmt.Sprintf("<p>body <strong>%d</strong></p>", i+1),
		}
	}
	return &domain.Thread{ID: id, Title: "A thread", Slug: "a-thread", Page: page, Posts: posts}, nil
}

func (m *mockForum) Categories(context.Context) ([]domain.Category, error) {
	return nil, errors.New("not used")
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
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
		if loaded, ok := c().(messages.ThreadLoaded); ok {
			v.Update(loaded)
			return
		}
	}
	t.Fatal("no ThreadLoaded in batch")
}

func openView(t *testing.T, forum *mockForum, limit int) *View {
	t.Helper()
	f := listing.New(listing.ModeHuman, listing.WithBaseURL("https://forum.example"))
	v := NewView(nil, forum, f, limit)
	v.SetDimensions(80, 20)
	runLoad(t, v, v.Open(domain.Topic{ID: 42, Title: "From listing"}))
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, &mockForum{}, nil, 10)

	require.NotNil(t, v)
	assert.Equal(t, 1, v.Page())
	assert.Nil(t, v.Init())
}

func TestView_Open(t *testing.T) {
	forum := &mockForum{posts: 3}
	v := NewView(nil, forum, nil, 0)

	cmd := v.Open(domain.Topic{ID: 42, Title: "From listing"})
	assert.True(t, v.Loading())
	assert.Contains(t, v.View(), "From listing")
	assert.Contains(t, v.View(), "Loading posts")

	runLoad(t, v, cmd)

	assert.False(t, v.Loading())
	require.NotNil(t, v.Thread())
	assert.Len(t, v.Thread().Posts, 3)
	assert.Equal(t, []call{{42, 1}}, forum.calls)
}

func TestView_RendersNormalisedPosts(t *testing.T) {
	v := openView(t, &mockForum{posts: 2}, 0)

	out := v.View()

	assert.Contains(t, out, "A thread")
	assert.Contains(t, out, "https://forum.example/t/a-thread/42 | Page 1")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "user2")
	assert.Contains(t, out, "body **2**")
	assert.Contains(t, out, "♥ 1")
	assert.NotContains(t, out, "<p>")
}

func TestView_PostLimit(t *testing.T) {
	v := openView(t, &mockForum{posts: 20}, 5)

	assert.Len(t, v.Thread().Posts, 5)
}

func TestView_Scroll(t *testing.T) {
	v := openView(t, &mockForum{posts: 20}, 0)
	require.Greater(t, v.maxScrollOffset(), 0)

	v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.ScrollOffset())

	v.Update(keyMsg("k"))
	v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.ScrollOffset())

	v.Update(keyMsg("G"))
	assert.Equal(t, v.maxScrollOffset(), v.ScrollOffset())

	v.Update(keyMsg("g"))
	assert.Equal(t, 0, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, v.visibleLines(), v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, v.ScrollOffset())

	assert.Contains(t, v.View(), "Line 1-")
}

func TestView_Pages(t *testing.T) {
	forum := &mockForum{posts: 2}
	v := openView(t, forum, 0)

	_, cmd := v.Update(keyMsg("p"))
	assert.Nil(t, cmd, "no page before the first")

	_, cmd = v.Update(keyMsg("n"))
	runLoad(t, v, cmd)
	assert.Equal(t, 2, v.Page())

	_, cmd = v.Update(keyMsg("p"))
	runLoad(t, v, cmd)
	assert.Equal(t, 1, v.Page())

	assert.Equal(t, []call{{42, 1}, {42, 2}, {42, 1}}, forum.calls)
}

func TestView_NextPage_EmptyPage(t *testing.T) {
	v := openView(t, &mockForum{posts: 0}, 0)

	_, cmd := v.Update(keyMsg("n"))

	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "No posts")
}

func TestView_Error(t *testing.T) {
	v := openView(t, &mockForum{err: domain.ErrNotFound}, 0)

	assert.ErrorIs(t, v.Err(), domain.ErrNotFound)
	assert.Contains(t, v.View(), "Error:")
}

func TestView_StaleResponseIgnored(t *testing.T) {
	v := openView(t, &mockForum{posts: 1}, 0)

	v.Update(messages.ThreadLoaded{TopicID: 7, Page: 1, Thread: &domain.Thread{ID: 7, Title: "other"}})

	assert.Equal(t, "A thread", v.Thread().Title)
}

func TestView_Back(t *testing.T) {
	v := openView(t, &mockForum{posts: 1}, 0)

	_, cmd := v.Update(keyMsg("esc"))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewTopics}, cmd())
}

func TestView_WrapsLongLines(t *testing.T) {
	v := openView(t, &mockForum{posts: 1}, 0)
	v.thread.Posts[0].Content = strings.Repeat("word ", 60)
	v.SetDimensions(40, 60)

	for _, line := range v.lines {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
}
