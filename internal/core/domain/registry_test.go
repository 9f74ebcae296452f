package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := Registry{"SEED": FamilyStructural, "DRIFT": FamilyProcess}

	assert.Equal(t, FamilyStructural, reg.Lookup("SEED"))
	assert.Equal(t, FamilyProcess, reg.Lookup("DRIFT"))
	assert.Equal(t, FamilyUnknown, reg.Lookup("ZZZTOP"))
}

func TestRegistry_Lookup_NilRegistry(t *testing.T) {
	var reg Registry
	assert.Equal(t, FamilyUnknown, reg.Lookup("SEED"))
}

func TestRegistry_Clone(t *testing.T) {
	reg := Registry{"SEED": FamilyStructural}
	clone := reg.Clone()

	require.Equal(t, reg, clone)

	clone["SEED"] = FamilyMeta
	clone["NEW"] = FamilyProcess
	assert.Equal(t, FamilyStructural, reg.Lookup("SEED"), "clone must be independent")
	assert.Equal(t, FamilyUnknown, reg.Lookup("NEW"))
}

func TestFamily_Known(t *testing.T) {
	for _, fam := range Families() {
		assert.True(t, fam.Known(), fam.String())
	}
	assert.False(t, FamilyUnknown.Known())
	assert.False(t, Family("Nonsense").Known())
}

func TestParseGroupKey(t *testing.T) {
	tests := []struct {
		input    string
		expected GroupKey
		wantErr  bool
	}{
		{input: "tag", expected: GroupByTag},
		{input: "layer", expected: GroupByLayer},
		{input: "section", expected: GroupBySection},
		{input: "family", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, err := ParseGroupKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownGroupKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestGroupKey_ValueOf(t *testing.T) {
	record := Annotation{Layer: "ONTO", Tag: "SEED", Section: "Origins"}

	assert.Equal(t, "SEED", GroupByTag.ValueOf(record))
	assert.Equal(t, "ONTO", GroupByLayer.ValueOf(record))
	assert.Equal(t, "Origins", GroupBySection.ValueOf(record))
}

func TestGroupKey_ValueOf_EmptyLayer(t *testing.T) {
	record := Annotation{Tag: "SEED"}
	assert.Equal(t, "", GroupByLayer.ValueOf(record), "empty layer is a legitimate group")
}
