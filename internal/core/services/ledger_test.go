package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/registry"
)

// stubSource serves fixed documents, or fails.
type stubSource struct {
	docs []domain.SourceDocument
	err  error
}

func (s *stubSource) Discover() ([]string, error) {
	paths := make([]string, len(s.docs))
	for i, d := range s.docs {
		paths[i] = d.Source
	}
	return paths, s.err
}

func (s *stubSource) Load(_ context.Context) ([]domain.SourceDocument, error) {
	return s.docs, s.err
}

func testDocs() []domain.SourceDocument {
	return []domain.SourceDocument{
		{
			Source: "sections/origins.tex",
			Text: `\Section{s}{s}{Origins}
\begin{SectionHeaderLedger}{Origins}
\Tag[ONTO]{SEED} 2024-03-01 v1.2.0 — Initial seed.
\Tag{ZZZTOP} 2024-03-02 v1.2.1 — Not in any registry.
\end{SectionHeaderLedger}
`,
		},
		{
			Source: "sections/gates.tex",
			Text:   `\Tag[EPI]{GATE_OPEN} 2024-04-01 v1.3.0 — Opened.`,
		},
	}
}

func TestLedgerService_Entries(t *testing.T) {
	svc := NewLedgerService(&stubSource{docs: testDocs()}, registry.Builtin())

	entries, err := svc.Entries(context.Background(), domain.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "SEED", entries[0].Tag)
	assert.Equal(t, domain.FamilyStructural, entries[0].Family)
	assert.Equal(t, "Origins", entries[0].Section)
	assert.Equal(t, domain.FamilyUnknown, entries[1].Family)
	assert.Equal(t, domain.FamilyEpiphany, entries[2].Family)
}

func TestLedgerService_Entries_Filtered(t *testing.T) {
	svc := NewLedgerService(&stubSource{docs: testDocs()}, registry.Builtin())

	entries, err := svc.Entries(context.Background(), domain.Filter{Layer: "epi"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "GATE_OPEN", entries[0].Tag)
}

func TestLedgerService_Entries_SourceFailure(t *testing.T) {
	svc := NewLedgerService(&stubSource{err: errors.New("root does not exist")}, registry.Builtin())

	_, err := svc.Entries(context.Background(), domain.Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading documents")
}

func TestLedgerService_UnknownTags(t *testing.T) {
	svc := NewLedgerService(&stubSource{docs: testDocs()}, registry.Builtin())

	unknowns, err := svc.UnknownTags(context.Background(), domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ZZZTOP"}, unknowns)
}

func TestLedgerService_Registry_ReturnsCopy(t *testing.T) {
	svc := NewLedgerService(&stubSource{}, registry.Builtin())

	reg := svc.Registry()
	reg["SEED"] = domain.FamilyMeta

	fresh := svc.Registry()
	assert.Equal(t, domain.FamilyStructural, fresh.Lookup("SEED"))
}
