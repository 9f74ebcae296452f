package scrape

import (
	"strings"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// Document scans one document's text and returns the annotations found,
// in line order. A document with no annotations yields an empty list.
func Document(source, text string) []domain.Annotation {
	var records []domain.Annotation

	t := newTracker(text)
	for _, line := range strings.Split(text, "\n") {
		if t.observe(line) {
			continue
		}
		m, ok := MatchLine(line)
		if !ok {
			continue
		}
		records = append(records, domain.Annotation{
			File:    source,
			Section: t.context(),
			Layer:   m.Layer,
			Tag:     m.Tag,
			Date:    m.Date,
			Version: m.Version,
			Note:    m.Note,
		})
	}
	return records
}

// Documents scrapes each document in order and concatenates the results.
// Per-document order is preserved; no ordering is imposed across
// documents beyond the order of the input slice.
func Documents(docs []domain.SourceDocument) []domain.Annotation {
	var records []domain.Annotation
	for _, doc := range docs {
		records = append(records, Document(doc.Source, doc.Text)...)
	}
	return records
}
