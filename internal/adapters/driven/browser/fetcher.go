package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// maxStderr is how much of the command's stderr is quoted in errors.
const maxStderr = 2048

// Config holds the browser command settings.
type Config struct {
	BaseURL string
	Command string
	Args    []string
	Timeout time.Duration
}

// ConfigFromSettings extracts the browser settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		BaseURL: s.BaseURL,
		Command: s.BrowserCommand,
		Args:    s.BrowserArgs,
		Timeout: s.BrowserTimeout,
	}
}

// Fetcher runs the configured command once per request and parses the JSON
// document it prints.
type Fetcher struct {
	cfg      Config
	lookPath func(string) (string, error)
	homeDir  func() (string, error)
}

// NewFetcher creates a browser fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultBaseURL
	}
	if cfg.Command == "" {
		cfg.Command = domain.DefaultBrowserCommand
	}
	if cfg.Args == nil {
		cfg.Args = domain.DefaultBrowserArgs()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultBrowserTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Fetcher{
		cfg:      cfg,
		lookPath: exec.LookPath,
		homeDir:  os.UserHomeDir,
	}
}

// Name returns the fetcher name.
func (f *Fetcher) Name() string {
	return string(domain.FetchBrowser)
}

// Available reports whether the command can be found.
func (f *Fetcher) Available() bool {
	_, err := f.lookPath(f.cfg.Command)
	return err == nil
}

// Fetch runs the command for base+path.
func (f *Fetcher) Fetch(ctx context.Context, path string) (domain.Document, error) {
	url := f.cfg.BaseURL + path

	bin, err := f.lookPath(f.cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", domain.ErrFetcherUnavailable, f.cfg.Command)
	}

	args := f.expandArgs(url)
	defer logger.Timer("browser " + url)()
	logger.Debug("Running %s %s", bin, strings.Join(args, " "))

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: browser command timed out after %s", domain.ErrFetchFailed, url, f.cfg.Timeout)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: failed to fetch %s: %v: %s",
			domain.ErrFetchFailed, url, err, truncate(strings.TrimSpace(stderr.String()), maxStderr))
	}

	return ExtractDocument(stdout.String(), url)
}

// expandArgs substitutes the URL placeholder and a leading ~/ in each
// argument. Without a placeholder the URL is appended.
func (f *Fetcher) expandArgs(url string) []string {
	home, _ := f.homeDir()

	args := make([]string, 0, len(f.cfg.Args)+1)
	substituted := false
	for _, arg := range f.cfg.Args {
		if strings.Contains(arg, domain.URLPlaceholder) {
			arg = strings.ReplaceAll(arg, domain.URLPlaceholder, url)
			substituted = true
		}
		if home != "" && (arg == "~" || strings.HasPrefix(arg, "~/")) {
			arg = filepath.Join(home, strings.TrimPrefix(arg, "~"))
		}
		args = append(args, arg)
	}
	if !substituted {
		args = append(args, url)
	}
	return args
}

// ExtractDocument parses the JSON document in a command's output. Metadata
// lines may precede it: the document starts at the first line whose trimmed
// form begins with "{".
func ExtractDocument(output, url string) (domain.Document, error) {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "{") {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(strings.Join(lines[i:], "\n")))
		dec.UseNumber()
		var doc domain.Document
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidResponse, url, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: no JSON found in response from %s", domain.ErrInvalidResponse, url)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
