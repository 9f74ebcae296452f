package domain

import "strings"

// UnknownSection is the sentinel attributed to annotations found outside
// any recognised section or ledger block.
const UnknownSection = "(unknown section)"

// Annotation represents one ledger entry scraped from a document.
// It is immutable once created: classification copies the record and
// fills Family rather than mutating in place.
type Annotation struct {
	// File identifies the originating document (usually a path).
	File string `json:"file"`

	// Section is the title of the enclosing section or ledger block,
	// or UnknownSection when none was found.
	Section string `json:"section"`

	// Layer is the optional authoring-time layer token (e.g. ONTO, EPI).
	// Always upper-cased; empty when the annotation carries no layer.
	Layer string `json:"layer"`

	// Tag is the upper-cased tag name. Never empty.
	Tag string `json:"tag"`

	// Date is the ISO calendar date (YYYY-MM-DD), kept as the literal
	// string so that lexicographic order equals chronological order.
	Date string `json:"date"`

	// Version is the dotted three-part version without the leading v.
	Version string `json:"ver"`

	// Note is the free-text narrative, trimmed of surrounding whitespace.
	Note string `json:"note"`

	// Family is the taxonomy category attached by classification.
	// Empty until the record passes through the classifier.
	Family Family `json:"family,omitempty"`
}

// Marker renders the bracketed layer:tag marker used in narrative output.
// The layer segment is present only when Layer is non-empty.
func (a Annotation) Marker() string {
	if a.Layer != "" {
		return "[" + a.Layer + ":" + a.Tag + "]"
	}
	return "[" + a.Tag + "]"
}

// SourceDocument pairs a document's text with its source identifier.
// It is what connectors hand to the scraper.
type SourceDocument struct {
	// Source identifies the document (usually a file path).
	Source string

	// Text is the full document content.
	Text string
}

// Filter holds optional exact-match predicates applied to scraped
// annotations before classification. Empty fields match everything.
type Filter struct {
	// Layer filters on the layer token, case-insensitive.
	Layer string

	// Tag filters on the tag name, case-insensitive.
	Tag string
}

// Normalised returns a copy with both predicates upper-cased, mirroring
// the normalisation the scraper applies to layer and tag.
func (f Filter) Normalised() Filter {
	return Filter{
		Layer: strings.ToUpper(strings.TrimSpace(f.Layer)),
		Tag:   strings.ToUpper(strings.TrimSpace(f.Tag)),
	}
}

// Matches reports whether the annotation passes the filter.
func (f Filter) Matches(a Annotation) bool {
	n := f.Normalised()
	if n.Layer != "" && a.Layer != n.Layer {
		return false
	}
	if n.Tag != "" && a.Tag != n.Tag {
		return false
	}
	return true
}

// Apply returns the annotations passing the filter, preserving order.
// The input slice is never modified.
func (f Filter) Apply(records []Annotation) []Annotation {
	n := f.Normalised()
	if n.Layer == "" && n.Tag == "" {
		out := make([]Annotation, len(records))
		copy(out, records)
		return out
	}
	out := make([]Annotation, 0, len(records))
	for _, a := range records {
		if n.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
