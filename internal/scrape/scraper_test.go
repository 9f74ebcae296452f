package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

const originsDoc = `\Section{sec:origins}{Origins}{Origins}

Some prose before the ledger.

\begin{SectionHeaderLedger}{Origins}
\Tag[ONTO]{SEED} 2024-03-01 v1.2.0 — Initial seed.
\Tag{GLYPH} 2024-03-02 v1.2.1 — Glyph added.
\end{SectionHeaderLedger}

More prose. \Tag[EPI]{GATE_OPEN} 2024-04-01 v1.3.0 — Outside the block.
`

func TestDocument(t *testing.T) {
	records := Document("sections/origins.tex", originsDoc)
	require.Len(t, records, 3)

	assert.Equal(t, domain.Annotation{
		File:    "sections/origins.tex",
		Section: "Origins",
		Layer:   "ONTO",
		Tag:     "SEED",
		Date:    "2024-03-01",
		Version: "1.2.0",
		Note:    "Initial seed.",
	}, records[0])

	assert.Equal(t, "GLYPH", records[1].Tag)
	assert.Equal(t, "Origins", records[1].Section)
	assert.Equal(t, "", records[1].Layer)

	// Tags outside a ledger block are still recorded, attributed to the
	// section title.
	assert.Equal(t, "GATE_OPEN", records[2].Tag)
	assert.Equal(t, "Origins", records[2].Section)
}

func TestDocument_FooterLedger(t *testing.T) {
	doc := `\Section{s}{s}{Chapter Two}
\begin{SectionFooterLedger}
\Tag{DRIFT} 2024-05-01 v2.0.0 — Footer entry.
\end{SectionFooterLedger}
`
	records := Document("ch2.tex", doc)
	require.Len(t, records, 1)
	assert.Equal(t, "Chapter Two", records[0].Section)
}

func TestDocument_NoSection(t *testing.T) {
	doc := `\begin{SectionFooterLedger}
\Tag{DRIFT} 2024-05-01 v2.0.0 — Orphan entry.
\end{SectionFooterLedger}
\Tag{FLOW} 2024-05-02 v2.0.1 — Loose entry.
`
	records := Document("loose.tex", doc)
	require.Len(t, records, 2)
	assert.Equal(t, domain.UnknownSection, records[0].Section)
	assert.Equal(t, domain.UnknownSection, records[1].Section)
}

func TestDocument_Empty(t *testing.T) {
	assert.Empty(t, Document("empty.tex", ""))
	assert.Empty(t, Document("prose.tex", "just prose\nno markers\n"))
}

func TestDocuments_ConcatenationOrder(t *testing.T) {
	docs := []domain.SourceDocument{
		{Source: "a.tex", Text: `\Tag{SEED} 2024-01-02 v1.0.0 — a1` + "\n" + `\Tag{CORE} 2024-01-01 v1.0.0 — a2`},
		{Source: "b.tex", Text: `\Tag{NODE} 2024-01-03 v1.0.0 — b1`},
	}

	records := Documents(docs)
	require.Len(t, records, 3)

	// Per-document order preserved, documents concatenated in input order.
	assert.Equal(t, []string{"SEED", "CORE", "NODE"}, []string{records[0].Tag, records[1].Tag, records[2].Tag})
	assert.Equal(t, "a.tex", records[0].File)
	assert.Equal(t, "b.tex", records[2].File)
}
