// Package domain defines the core forum entities for ldo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Topic: A thread summary from a listing
//   - Category: A forum category
//   - Thread, Post: A topic detail and the posts in its stream
//   - ListingRequest: Which listing to fetch and how
//   - Document: An untyped JSON object with permissive accessors
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
