package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// entryItem adapts an annotation for the bubbles list component.
type entryItem struct {
	record domain.Annotation
}

// Ensure entryItem implements list.Item.
var _ list.Item = entryItem{}

// Title renders the marker with date and version.
func (i entryItem) Title() string {
	return fmt.Sprintf("%s %s v%s", i.record.Marker(), i.record.Date, i.record.Version)
}

// Description renders the section and note.
func (i entryItem) Description() string {
	return fmt.Sprintf("%s — %s", i.record.Section, i.record.Note)
}

// FilterValue makes fuzzy filtering match tag, layer, section and note.
func (i entryItem) FilterValue() string {
	return i.record.Tag + " " + i.record.Layer + " " + i.record.Section + " " + i.record.Note
}
