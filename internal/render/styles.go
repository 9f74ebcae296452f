package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to narrative output when it
// goes to a terminal. Piped or file output stays plain markdown.
type Styles struct {
	// Heading styles the "## date — version" group headings.
	Heading lipgloss.Style

	// Entry styles the per-annotation bullet lines.
	Entry lipgloss.Style

	// Divider styles the group separator rule.
	Divider lipgloss.Style

	// Notice styles informational messages such as the no-matches text.
	Notice lipgloss.Style
}

// DefaultStyles returns the default terminal palette.
func DefaultStyles() *Styles {
	return &Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Entry:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Notice:  lipgloss.NewStyle().Faint(true),
	}
}

// Apply styles a rendered narrative line by line. The markdown text
// itself is unchanged apart from colour codes, so styled output remains
// grep-able for tags and dates.
func (s *Styles) Apply(narrative string) string {
	lines := strings.Split(narrative, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "## "):
			lines[i] = s.Heading.Render(line)
		case strings.HasPrefix(line, "- "):
			lines[i] = s.Entry.Render(line)
		case strings.HasPrefix(line, "---"):
			lines[i] = s.Divider.Render(line)
		case strings.HasPrefix(line, "[info]"):
			lines[i] = s.Notice.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
