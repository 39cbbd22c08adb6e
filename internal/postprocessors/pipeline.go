// Package postprocessors provides the text stages that clean converted
// post content, and the pipeline that runs them in order.
package postprocessors

// maxPasses bounds Settle. Every default stage only shrinks its input,
// so a fixed point is reached in a couple of passes.
const maxPasses = 8

// Pipeline chains Stages and runs them in order.
// Order matters: later stages match patterns only earlier stages produce.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Process runs the text through every stage once, in order.
func (p *Pipeline) Process(text string) string {
	for _, stage := range p.stages {
		text = stage.Apply(text)
	}
	return text
}

// Settle runs Process until the output stops changing.
// The result is a fixed point, so Settle(Settle(x)) == Settle(x).
func (p *Pipeline) Settle(text string) string {
	for i := 0; i < maxPasses; i++ {
		next := p.Process(text)
		if next == text {
			return next
		}
		text = next
	}
	return text
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}
