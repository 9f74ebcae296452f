// Package registry builds the tag-to-family classification mapping.
//
// The built-in taxonomy is the authoritative default. An optional
// external registry document (a TAGS.md-style description) is parsed
// best-effort and overlaid on top, external entries winning.
package registry
