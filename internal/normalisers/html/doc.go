// Package html provides the ContentNormaliser for cooked post HTML.
// It converts HTML to markdown with images stripped, then runs the
// cleanup stages from the postprocessors package to a fixed point.
package html
