package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// NoMatches is the fixed message produced when no annotations survive
// scraping and filtering. It is informational, not an error.
const NoMatches = "[info] no matching tags found."

// Narrative renders the grouped, reverse-chronological changelog view.
//
// Records are sorted descending by the compound string key (date,
// version) and grouped by the exact pair. Version components therefore
// order lexicographically, not numerically; the two agree while
// components keep uniform digit counts.
func Narrative(records []domain.Annotation) string {
	if len(records) == 0 {
		return NoMatches
	}

	sorted := make([]domain.Annotation, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].Version > sorted[j].Version
	})

	var chunks []string
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].Date == sorted[start].Date && sorted[end].Version == sorted[start].Version {
			end++
		}
		group := sorted[start:end]
		chunks = append(chunks, groupHeading(group))
		for _, rec := range group {
			chunks = append(chunks, fmt.Sprintf("- **%s** (%s) — %s", rec.Marker(), rec.Section, rec.Note))
		}
		chunks = append(chunks, "\n---\n")
		start = end
	}
	return strings.TrimSpace(strings.Join(chunks, "\n"))
}

// groupHeading names the shared section when the group is
// section-homogeneous, and stays generic when it is not.
func groupHeading(group []domain.Annotation) string {
	heading := fmt.Sprintf("## %s — v%s — Section updates", group[0].Date, group[0].Version)
	title := group[0].Section
	for _, rec := range group[1:] {
		if rec.Section != title {
			return heading
		}
	}
	return heading + ": " + title
}
