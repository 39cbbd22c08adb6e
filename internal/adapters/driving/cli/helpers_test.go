package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
)

// mockForumService implements driving.ForumService for testing.
type mockForumService struct {
	topics     []domain.Topic
	categories []domain.Category
	thread     *domain.Thread
	err        error

	requests    []domain.ListingRequest
	threadPages []int
}

func (m *mockForumService) Topics(_ context.Context, req domain.ListingRequest) ([]domain.Topic, error) {
	m.requests = append(m.requests, req)
	return m.topics, m.err
}

func (m *mockForumService) Thread(_ context.Context, id, page int) (*domain.Thread, error) {
	m.threadPages = append(m.threadPages, page)
	if m.err != nil {
		return nil, m.err
	}
	return m.thread, nil
}

func (m *mockForumService) Categories(_ context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	getErr   error
	setErr   error
	set      map[string]string
}

func newMockSettings() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultSettings(), set: map[string]string{}}
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, m.getErr
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []driving.SettingKey {
	return []driving.SettingKey{
		{Key: "forum.base_url", Description: "forum root URL"},
		{Key: "display.limit", Description: "topics per listing"},
	}
}

func (m *mockSettingsService) Path() string { return "/tmp/ldo/config.toml" }

// resetFlags restores every flag to its default so tests don't leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args against the given services.
// Stderr is treated as a non-terminal and stdout is 100 columns wide.
func execute(t *testing.T, services *Services, args ...string) (string, string, error) {
	t.Helper()
	return run(t, services, false, args)
}

// executeOnTerminal is execute with stderr treated as a terminal.
func executeOnTerminal(t *testing.T, services *Services, args ...string) (string, string, error) {
	t.Helper()
	return run(t, services, true, args)
}

func run(t *testing.T, services *Services, terminal bool, args []string) (string, string, error) {
	t.Helper()

	stdout, stderr := prepare(t, services, terminal)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// prepare wires services and output buffers into the root command and
// restores the package state when the test ends.
func prepare(t *testing.T, services *Services, terminal bool) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	SetServices(services)
	SetBootstrap(nil)
	origTerminal, origWidth := isTerminal, terminalWidth
	isTerminal = func(io.Writer) bool { return terminal }
	terminalWidth = func(io.Writer) int { return 100 }

	t.Cleanup(func() {
		SetServices(nil)
		SetBootstrap(nil)
		isTerminal, terminalWidth = origTerminal, origWidth
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return stdout, stderr
}
