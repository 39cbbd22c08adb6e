package html

import (
	"fmt"

	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/postprocessors"
)

// Ensure Normaliser implements the interface.
var _ driven.ContentNormaliser = (*Normaliser)(nil)

// StageMarkdown is the name of the HTML conversion stage.
const StageMarkdown = "markdown"

// Normaliser handles cooked post HTML.
type Normaliser struct {
	convert postprocessors.Stage
	cleanup *postprocessors.Pipeline
}

// Option configures a Normaliser.
type Option func(*config)

type config struct {
	baseURL string
	stages  []string
}

// WithBaseURL sets the forum whose bare upload lines are removed.
func WithBaseURL(base string) Option {
	return func(c *config) {
		c.baseURL = base
	}
}

// WithStages overrides the cleanup stage order. Intended for tests and
// debugging; the default order is postprocessors.DefaultOrder.
func WithStages(names ...string) Option {
	return func(c *config) {
		c.stages = names
	}
}

// New creates a new HTML normaliser.
func New(opts ...Option) (*Normaliser, error) {
	cfg := config{stages: postprocessors.DefaultOrder()}
	for _, opt := range opts {
		opt(&cfg)
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)

	stageCfg := map[string]any{}
	if cfg.baseURL != "" {
		stageCfg["base_url"] = cfg.baseURL
	}

	cleanup, err := registry.BuildPipeline(cfg.stages, stageCfg)
	if err != nil {
		return nil, fmt.Errorf("building cleanup pipeline: %w", err)
	}

	return &Normaliser{
		convert: postprocessors.NewStage(StageMarkdown, toMarkdown),
		cleanup: cleanup,
	}, nil
}

// Normalise converts cooked HTML to display text. Text that is not HTML only
// goes through Clean, so Normalise(Normalise(x)) == Normalise(x).
func (n *Normaliser) Normalise(cooked string) string {
	return n.Clean(n.convert.Apply(cooked))
}

// Clean runs only the text stages. Clean(Clean(x)) == Clean(x).
func (n *Normaliser) Clean(text string) string {
	return n.cleanup.Settle(text)
}

// Stages returns every stage name in execution order.
func (n *Normaliser) Stages() []string {
	return append([]string{n.convert.Name()}, n.cleanup.Names()...)
}
