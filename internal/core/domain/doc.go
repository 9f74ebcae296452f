// Package domain defines the core business entities for tagledger.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Annotation: One scraped ledger entry (layer, tag, date, version, note)
//   - Family: The taxonomy category a tag classifies into
//   - Registry: The tag-name-to-family mapping
//   - SourceDocument: A document blob paired with its source identifier
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
