package registry

import (
	"regexp"
	"strings"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// familyAliases maps the heading tokens an external registry document
// may use to the family they denote. Matching is by substring
// containment within a "## " heading, first alias wins.
var familyAliases = []struct {
	token  string
	family domain.Family
}{
	{"Structural", domain.FamilyStructural},
	{"Framework", domain.FamilyStructural},
	{"Process", domain.FamilyProcess},
	{"Development", domain.FamilyProcess},
	{"Symbolic", domain.FamilySymbolic},
	{"Philosophical", domain.FamilySymbolic},
	{"Meta", domain.FamilyMeta},
	{"Operational", domain.FamilyMeta},
	{"Seeded Epiphany Matrix", domain.FamilyEpiphany},
	{"Epiphany", domain.FamilyEpiphany},
}

var (
	// tableRowPattern matches table-style rows: | TAG | ...
	tableRowPattern = regexp.MustCompile(`^\|\s*([A-Z][A-Z0-9_]+)\s*\|`)

	// bracketPattern matches bracket-style references: [TAG]
	bracketPattern = regexp.MustCompile(`\[([A-Z][A-Z0-9_]+)\]`)
)

// externalParser is the explicit state of the best-effort TAGS.md scan:
// either no family heading has been seen yet, or the cursor sits inside
// a recognised family section. Tags captured before any heading
// contribute nothing.
type externalParser struct {
	current    domain.Family
	haveFamily bool
	mapping    domain.Registry
}

// ParseExternal extracts tag-to-family pairs from a loosely structured
// registry document. The scan is line-oriented and last-wins: a tag
// assigned twice keeps its later family. An empty or unrecognisable
// document yields an empty mapping, never an error.
func ParseExternal(text string) domain.Registry {
	p := &externalParser{mapping: make(domain.Registry)}
	for _, line := range strings.Split(text, "\n") {
		p.observe(strings.TrimSpace(line))
	}
	return p.mapping
}

// observe consumes one trimmed line.
func (p *externalParser) observe(line string) {
	if strings.HasPrefix(line, "## ") {
		for _, alias := range familyAliases {
			if strings.Contains(line, alias.token) {
				p.current = alias.family
				p.haveFamily = true
				break
			}
		}
		// An unrecognised heading leaves the cursor unchanged.
		return
	}
	if !p.haveFamily {
		return
	}
	if m := tableRowPattern.FindStringSubmatch(line); m != nil {
		p.mapping[strings.ToUpper(m[1])] = p.current
		return
	}
	if m := bracketPattern.FindStringSubmatch(line); m != nil {
		p.mapping[strings.ToUpper(m[1])] = p.current
	}
}
