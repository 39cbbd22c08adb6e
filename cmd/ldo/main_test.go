package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/browser"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/discourse"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
)

func TestNewFetcher(t *testing.T) {
	tests := []struct {
		strategy domain.FetchStrategy
		want     any
	}{
		{domain.FetchHTTP, &discourse.Client{}},
		{domain.FetchBrowser, &browser.Fetcher{}},
		{domain.FetchAuto, &discourse.Fallback{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			s := domain.DefaultSettings()
			s.Strategy = tt.strategy

			assert.IsType(t, tt.want, newFetcher(s))
		})
	}
}

func TestBootstrap_Defaults(t *testing.T) {
	dir := t.TempDir()

	svc, err := bootstrap(dir)

	require.NoError(t, err)
	require.NotNil(t, svc.Forum)
	require.NotNil(t, svc.Settings)
	assert.Equal(t, filepath.Join(dir, "config.toml"), svc.Settings.Path())

	s, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestBootstrap_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "[forum]\nbase_url = \"https://forum.example\"\n\n[display]\nlimit = 12\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	svc, err := bootstrap(dir)

	require.NoError(t, err)
	s, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example", s.BaseURL)
	assert.Equal(t, 12, s.Limit)
}

func TestBootstrap_IgnoresInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := "[fetch]\nstrategy = \"carrier-pigeon\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	svc, err := bootstrap(dir)

	require.NoError(t, err)
	s, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.FetchAuto, s.Strategy)
}

func TestBootstrap_UnreadableConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [toml"), 0o600))

	svc, err := bootstrap(dir)

	require.NoError(t, err)
	assert.NotEqual(t, filepath.Join(dir, "config.toml"), svc.Settings.Path())
	s, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}
