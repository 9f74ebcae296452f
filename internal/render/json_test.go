package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

func TestRaw_FieldNames(t *testing.T) {
	records := []domain.Annotation{{
		File:    "sections/origins.tex",
		Section: "Origins",
		Layer:   "ONTO",
		Tag:     "SEED",
		Date:    "2024-03-01",
		Version: "1.2.0",
		Note:    "Initial seed.",
		Family:  domain.FamilyStructural,
	}}

	data, err := Raw(records)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	expected := map[string]any{
		"file":    "sections/origins.tex",
		"section": "Origins",
		"layer":   "ONTO",
		"tag":     "SEED",
		"date":    "2024-03-01",
		"ver":     "1.2.0",
		"note":    "Initial seed.",
		"family":  "Structural",
	}
	assert.Equal(t, expected, decoded[0])
}

func TestRaw_PreservesOriginalOrder(t *testing.T) {
	records := []domain.Annotation{
		{Tag: "NEW", Date: "2024-06-01", Version: "2.0.0"},
		{Tag: "OLD", Date: "2024-01-01", Version: "1.0.0"},
	}

	data, err := Raw(records)
	require.NoError(t, err)

	var decoded []domain.Annotation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "NEW", decoded[0].Tag, "raw projection keeps pre-sort order")
}

func TestRaw_EmptyIsArray(t *testing.T) {
	data, err := Raw(nil)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestGroupBy_Layer(t *testing.T) {
	records := []domain.Annotation{
		{Layer: "ONTO", Tag: "SEED"},
		{Layer: "EPI", Tag: "ARC_CLIMAX"},
		{Layer: "", Tag: "GLYPH"},
		{Layer: "ONTO", Tag: "CORE"},
	}

	g := GroupBy(records, domain.GroupByLayer)

	// Exactly three groups, one per distinct value, the empty layer included.
	require.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"ONTO", "EPI", ""}, g.Keys(), "keys keep first-seen order")

	onto := g.Group("ONTO")
	require.Len(t, onto, 2)
	assert.Equal(t, "SEED", onto[0].Tag)
	assert.Equal(t, "CORE", onto[1].Tag, "record order preserved within group")
}

func TestGrouped_MarshalKeepsKeyOrder(t *testing.T) {
	records := []domain.Annotation{
		{Layer: "ZULU", Tag: "A"},
		{Layer: "ALPHA", Tag: "B"},
	}

	data, err := json.Marshal(GroupBy(records, domain.GroupByLayer))
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, `"ZULU"`), strings.Index(out, `"ALPHA"`), "first-seen key renders first even when unsorted")

	var decoded map[string][]domain.Annotation
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "A", decoded["ZULU"][0].Tag)
}

func TestGrouped_MarshalIndent(t *testing.T) {
	records := []domain.Annotation{{Tag: "SEED", Layer: "ONTO"}}

	data, err := json.MarshalIndent(GroupBy(records, domain.GroupByTag), "", "  ")
	require.NoError(t, err)

	var decoded map[string][]domain.Annotation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "SEED")
}

func TestGroupBy_Empty(t *testing.T) {
	g := GroupBy(nil, domain.GroupByTag)
	assert.Equal(t, 0, g.Len())

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
