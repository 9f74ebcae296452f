package scrape

import (
	"regexp"
	"strings"
)

// tagPattern is the annotation grammar: a \Tag marker, an optional
// bracketed layer, a braced tag name (the extended symbols ~ and ∿ are
// part of the published taxonomy), an ISO date, a vX.Y.Z version, an
// em-dash separator and the narrative note. The pattern is unanchored:
// annotations may be preceded by markup decoration on the same line.
var tagPattern = regexp.MustCompile(
	`\\Tag(?:\[(?P<layer>[A-Za-z]+)\])?\{(?P<tag>[A-Za-z0-9_~∿-]+)\}\s+(?P<date>\d{4}-\d{2}-\d{2})\s+v(?P<ver>\d+\.\d+\.\d+)\s+—\s+(?P<note>.+)`,
)

var (
	layerIdx = tagPattern.SubexpIndex("layer")
	tagIdx   = tagPattern.SubexpIndex("tag")
	dateIdx  = tagPattern.SubexpIndex("date")
	verIdx   = tagPattern.SubexpIndex("ver")
	noteIdx  = tagPattern.SubexpIndex("note")
)

// Match holds the five decomposed components of one annotation line.
type Match struct {
	// Layer is the upper-cased layer token, empty when absent.
	Layer string

	// Tag is the upper-cased tag name.
	Tag string

	// Date is the ISO date exactly as written.
	Date string

	// Version is the dotted version without the leading v.
	Version string

	// Note is the narrative, trimmed of surrounding whitespace.
	Note string
}

// MatchLine attempts the annotation grammar against one line of text.
// The second return is false when the line carries no annotation, which
// is the expected case for most lines and never an error.
func MatchLine(line string) (Match, bool) {
	groups := tagPattern.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}
	return Match{
		Layer:   strings.ToUpper(groups[layerIdx]),
		Tag:     strings.ToUpper(groups[tagIdx]),
		Date:    groups[dateIdx],
		Version: groups[verIdx],
		Note:    strings.TrimSpace(groups[noteIdx]),
	}, true
}
