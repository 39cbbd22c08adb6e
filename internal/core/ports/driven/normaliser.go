package driven

// ContentNormaliser turns a post's cooked HTML into terminal-ready text.
// Implementations are pure and total: every input yields a string.
type ContentNormaliser interface {
	// Normalise converts cooked HTML to plain markdown text.
	Normalise(cooked string) string
}
