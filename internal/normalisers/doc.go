// Package normalisers provides implementations of the ContentNormaliser
// interface. The html normaliser turns Discourse "cooked" post HTML into
// terminal-friendly markdown.
package normalisers
