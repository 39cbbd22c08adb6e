package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// Options configures the server.
type Options struct {
	// Version is reported to clients. Defaults to "dev".
	Version string

	// BaseURL is used for topic URLs. Defaults to the linux.do base.
	BaseURL string

	// Limit is the default number of topics per listing. Zero keeps all.
	Limit int

	// ReadLimit is the default number of posts per thread page. Zero keeps all.
	ReadLimit int
}

// Server is the MCP server for ldo.
type Server struct {
	ports     *Ports
	server    *mcp.Server
	formatter *listing.Formatter
	opts      Options
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.BaseURL == "" {
		opts.BaseURL = domain.DefaultBaseURL
	}

	impl := &mcp.Implementation{
		Name:    "ldo",
		Version: opts.Version,
	}

	s := &Server{
		ports:     ports,
		server:    mcp.NewServer(impl, nil),
		formatter: listing.New(listing.ModeJSON, listing.WithBaseURL(opts.BaseURL)),
		opts:      opts,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp: serving over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over streamable HTTP on addr.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Debug("mcp: serving over http on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
