package render

import (
	"bytes"
	"encoding/json"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// Raw serialises the full classified record list in its original order.
// An empty list marshals as an empty JSON array, not null.
func Raw(records []domain.Annotation) ([]byte, error) {
	if records == nil {
		records = []domain.Annotation{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// Grouped is the grouped structured projection: distinct values of the
// chosen key field mapped to the ordered records sharing that value.
// Keys keep first-seen order; a plain map would marshal them sorted.
type Grouped struct {
	keys   []string
	groups map[string][]domain.Annotation
}

// GroupBy builds the grouped projection over records, preserving overall
// record order within every group. The empty string is a valid key
// (annotations without a layer group under "").
func GroupBy(records []domain.Annotation, key domain.GroupKey) *Grouped {
	g := &Grouped{groups: make(map[string][]domain.Annotation)}
	for _, rec := range records {
		val := key.ValueOf(rec)
		if _, ok := g.groups[val]; !ok {
			g.keys = append(g.keys, val)
		}
		g.groups[val] = append(g.groups[val], rec)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Grouped) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Group returns the records under one key, in record order.
func (g *Grouped) Group(key string) []domain.Annotation {
	return g.groups[key]
}

// Len returns the number of distinct groups.
func (g *Grouped) Len() int {
	return len(g.keys)
}

// MarshalJSON implements json.Marshaler, emitting the groups as one
// JSON object with keys in first-seen order.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		records, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(records)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
