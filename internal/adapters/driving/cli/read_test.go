package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

func sampleThread() *domain.Thread {
	return &domain.Thread{
		ID:         1234,
		Title:      "Go generics in practice",
		Slug:       "go-generics",
		PostsCount: 2,
		Page:       1,
		Posts: []domain.Post{
			{Number: 1, Username: "alice", LikeCount: 3, Cooked: "<p>Hello <strong>world</strong></p>"},
			{
				Number:   2,
				Username: "bob",
				Cooked:   `<p>see</p><img src="https://linux.do/uploads/a.png" alt="diagram">`,
			},
		},
	}
}

func TestRead_HumanOutput(t *testing.T) {
	forum := &mockForumService{thread: sampleThread()}

	out, _, err := execute(t, &Services{Forum: forum}, "read", "1234")

	require.NoError(t, err)
	assert.Contains(t, out, "Go generics in practice")
	assert.Contains(t, out, "https://linux.do/t/go-generics/1234 | Page 1")
	assert.Contains(t, out, "#1 alice")
	assert.Contains(t, out, "♥ 3")
	assert.Contains(t, out, "**world**")
	assert.Contains(t, out, "see")
	assert.NotContains(t, out, "a.png")
	assert.Contains(t, out, "─")
	assert.Equal(t, []int{1}, forum.threadPages)
}

func TestRead_PageAndLimit(t *testing.T) {
	forum := &mockForumService{thread: sampleThread()}

	out, _, err := execute(t, &Services{Forum: forum}, "read", "1234", "--page", "3", "-n", "1", "--json")

	require.NoError(t, err)
	assert.Equal(t, []int{3}, forum.threadPages)

	var record listing.ThreadRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, 1234, record.ID)
	assert.Equal(t, "https://linux.do/t/go-generics/1234", record.URL)
	require.Len(t, record.Posts, 1)
	assert.Equal(t, "alice", record.Posts[0].Username)
	assert.Equal(t, "Hello **world**", record.Posts[0].Content)
}

func TestRead_ReadLimitFromSettings(t *testing.T) {
	forum := &mockForumService{thread: sampleThread()}
	settings := newMockSettings()
	settings.settings.ReadLimit = 1
	settings.settings.BaseURL = "https://forum.example"

	out, _, err := execute(t, &Services{Forum: forum, Settings: settings}, "read", "1234", "--json")

	require.NoError(t, err)
	var record listing.ThreadRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Len(t, record.Posts, 1)
	assert.Equal(t, "https://forum.example/t/go-generics/1234", record.URL)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		forum *mockForumService
		args  []string
		want  error
	}{
		{name: "non-numeric id", forum: &mockForumService{}, args: []string{"read", "abc"}, want: domain.ErrInvalidInput},
		{name: "zero id", forum: &mockForumService{}, args: []string{"read", "0"}, want: domain.ErrInvalidInput},
		{name: "not found", forum: &mockForumService{err: domain.ErrNotFound}, args: []string{"read", "9"}, want: domain.ErrNotFound},
		{name: "empty thread", forum: &mockForumService{}, args: []string{"read", "9"}, want: domain.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, &Services{Forum: tt.forum}, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRead_RequiresOneArg(t *testing.T) {
	_, _, err := execute(t, &Services{Forum: &mockForumService{}}, "read")
	assert.Error(t, err)
}
