package postprocessors

// Stage is one pure text transformation.
type Stage interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Apply transforms the text. It must not fail.
	Apply(text string) string
}

// funcStage adapts a plain function to Stage.
type funcStage struct {
	name string
	fn   func(string) string
}

// NewStage wraps fn as a named Stage.
func NewStage(name string, fn func(string) string) Stage {
	return &funcStage{name: name, fn: fn}
}

func (s *funcStage) Name() string { return s.name }

func (s *funcStage) Apply(text string) string { return s.fn(text) }
