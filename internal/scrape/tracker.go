package scrape

import (
	"regexp"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

var (
	// headerPattern opens a ledger block with an explicit title.
	headerPattern = regexp.MustCompile(`\\begin\{SectionHeaderLedger\}\{(?P<title>.+?)\}`)

	// footerPattern opens a ledger block without a title; the tracker
	// falls back to the document's section title.
	footerPattern = regexp.MustCompile(`\\begin\{SectionFooterLedger\}`)

	// closePattern closes either ledger block variant.
	closePattern = regexp.MustCompile(`\\end\{Section(?:Header|Footer)Ledger\}`)

	// sectionPattern is the \Section declaration. Only the third braced
	// argument (the display title) is captured.
	sectionPattern = regexp.MustCompile(`\\Section(?:\[[^\]]*\])?\{[^}]*\}\{[^}]*\}\{(?P<title>[^}]+)\}`)
)

// tracker is the per-document state machine that attributes annotations
// to their enclosing section or ledger block. sectionTitle is fixed by a
// whole-document prescan; only the ledger state advances line by line.
type tracker struct {
	sectionTitle string
	inLedger     bool
	ledgerTitle  string
}

// newTracker prescans the document for its first \Section declaration.
// A document declares at most one section; later declarations are ignored.
func newTracker(text string) *tracker {
	t := &tracker{}
	if m := sectionPattern.FindStringSubmatch(text); m != nil {
		t.sectionTitle = m[sectionPattern.SubexpIndex("title")]
	}
	return t
}

// observe advances the ledger state for one line. It returns true when
// the line is a block delimiter, which carries no annotation itself.
func (t *tracker) observe(line string) bool {
	if !t.inLedger {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			t.inLedger = true
			t.ledgerTitle = m[headerPattern.SubexpIndex("title")]
			return true
		}
		if footerPattern.MatchString(line) {
			t.inLedger = true
			t.ledgerTitle = t.sectionTitle
			if t.ledgerTitle == "" {
				t.ledgerTitle = domain.UnknownSection
			}
			return true
		}
		return false
	}
	if closePattern.MatchString(line) {
		t.inLedger = false
		t.ledgerTitle = ""
		return true
	}
	return false
}

// context returns the section attribution for the current line: the
// ledger title while inside a block, else the document's section title,
// else the unknown sentinel.
func (t *tracker) context() string {
	if t.inLedger && t.ledgerTitle != "" {
		return t.ledgerTitle
	}
	if t.sectionTitle != "" {
		return t.sectionTitle
	}
	return domain.UnknownSection
}
