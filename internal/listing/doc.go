// Package listing turns forum records into display models.
//
// A Formatter is built for one output Mode. In JSON mode it returns the
// records unchanged (sliced to the display limit); in human mode it returns an
// abstract Table or ThreadView that a presentation layer draws. The package
// never writes to a terminal itself.
package listing
