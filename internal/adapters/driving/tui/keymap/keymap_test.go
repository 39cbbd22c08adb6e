package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"next page", km.NextPage, []string{"n"}},
		{"prev page", km.PrevPage, []string{"p"}},
		{"reload", km.Reload, []string{"r"}},
		{"page down", km.PageDown, []string{"pgdown", "ctrl+d"}},
		{"page up", km.PageUp, []string{"pgup", "ctrl+u"}},
		{"top", km.Top, []string{"home", "g"}},
		{"bottom", km.Bottom, []string{"end", "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Key)
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Quit, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
}

func TestListHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ListHelp()

	require.Len(t, bindings, 5)
	assert.Equal(t, km.Select, bindings[0])
	assert.Equal(t, km.Back, bindings[4])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 4)
	assert.Len(t, bindings[0], 3) // Up, Down, Select
	assert.Len(t, bindings[1], 3) // NextPage, PrevPage, Reload
	assert.Len(t, bindings[2], 4) // PageUp, PageDown, Top, Bottom
	assert.Len(t, bindings[3], 3) // Back, Help, Quit
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("n", km.NextPage))
	assert.True(t, Matches("k", km.Up))

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
	assert.False(t, Matches("N", km.NextPage))
}
