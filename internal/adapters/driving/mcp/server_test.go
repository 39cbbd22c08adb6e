package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil forum service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{}, Options{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingForumService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil, Options{})
		assert.ErrorIs(t, err, ErrMissingForumService)
		assert.Nil(t, server)
	})

	t.Run("valid ports creates server with defaults", func(t *testing.T) {
		server, err := NewServer(&Ports{Forum: &mockForumService{}}, Options{})
		require.NoError(t, err)
		require.NotNil(t, server)
		assert.Equal(t, "dev", server.opts.Version)
		assert.Equal(t, "https://linux.do", server.opts.BaseURL)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingForumService)
	assert.NoError(t, (&Ports{Forum: &mockForumService{}}).Validate())
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Forum: &mockForumService{}}, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()

	cancel()
	assert.NoError(t, <-done)
}
