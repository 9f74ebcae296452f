// Package classify applies a resolved registry to scraped annotations.
package classify

import (
	"sort"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// Annotations attaches a family to every record via registry lookup.
// The lookup is total: tags absent from the registry classify to
// FamilyUnknown. The input slice and its records are never mutated;
// callers keep the original unclassified list untouched.
func Annotations(records []domain.Annotation, reg domain.Registry) []domain.Annotation {
	out := make([]domain.Annotation, len(records))
	for i, rec := range records {
		rec.Family = reg.Lookup(rec.Tag)
		out[i] = rec
	}
	return out
}

// UnknownTags returns the sorted distinct tag names whose family is
// FamilyUnknown. Purely diagnostic: the result never affects output.
func UnknownTags(classified []domain.Annotation) []string {
	seen := make(map[string]struct{})
	for _, rec := range classified {
		if rec.Family == domain.FamilyUnknown {
			seen[rec.Tag] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
