package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(nil))

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"forum.base_url":          "https://forum.example.org/",
		"fetch.strategy":          "http",
		"fetch.timeout_seconds":   int64(5),
		"fetch.rate":              int64(3),
		"browser.args":            []any{"visit", "{url}"},
		"browser.timeout_seconds": 120,
		"display.limit":           int64(15),
		"display.read_limit":      4,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.org", settings.BaseURL)
	assert.Equal(t, domain.FetchHTTP, settings.Strategy)
	assert.Equal(t, 5*time.Second, settings.Timeout)
	assert.InDelta(t, 3.0, settings.RequestsPerSec, 1e-9)
	assert.Equal(t, []string{"visit", "{url}"}, settings.BrowserArgs)
	assert.Equal(t, 2*time.Minute, settings.BrowserTimeout)
	assert.Equal(t, 15, settings.Limit)
	assert.Equal(t, 4, settings.ReadLimit)
	assert.Equal(t, domain.DefaultUserAgent, settings.UserAgent)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"forum.base_url":        "linux.do",
		"fetch.strategy":        "carrier-pigeon",
		"fetch.timeout_seconds": "soon",
		"fetch.rate":            0.0,
		"browser.args":          []any{"ok", 3},
		"display.limit":         -1,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore(nil)
	service := NewSettingsService(store)

	require.NoError(t, service.Set("fetch.strategy", "browser"))
	require.NoError(t, service.Set("fetch.timeout_seconds", " 12 "))
	require.NoError(t, service.Set("fetch.rate", "0.5"))
	require.NoError(t, service.Set("browser.args", "visit {url} --headless"))
	require.NoError(t, service.Set("display.limit", "0"))

	v, ok := store.Get("fetch.timeout_seconds")
	require.True(t, ok)
	assert.Equal(t, 12, v)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.FetchBrowser, settings.Strategy)
	assert.Equal(t, 12*time.Second, settings.Timeout)
	assert.InDelta(t, 0.5, settings.RequestsPerSec, 1e-9)
	assert.Equal(t, []string{"visit", "{url}", "--headless"}, settings.BrowserArgs)
	assert.Equal(t, 0, settings.Limit)
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"not an int", "display.limit", "many"},
		{"not a number", "fetch.rate", "fast"},
		{"fails validation", "fetch.strategy", "carrier-pigeon"},
		{"bad url", "forum.base_url", "ftp://linux.do"},
		{"zero timeout", "browser.timeout_seconds", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore(nil)
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.Keys())
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(nil))

	keys := service.Keys()
	require.Len(t, keys, len(settingDefs))
	assert.Equal(t, "forum.base_url", keys[0].Key)
	for _, k := range keys {
		assert.NotEmpty(t, k.Description, k.Key)
	}
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(nil))
	assert.Equal(t, ":memory:", service.Path())
}
