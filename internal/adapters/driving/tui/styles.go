package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the pre-configured lipgloss styles for the browser.
type Styles struct {
	// Title style for the list header.
	Title lipgloss.Style

	// Label style for detail field names.
	Label lipgloss.Style

	// Value style for detail field values.
	Value lipgloss.Style

	// Marker style for the [LAYER:TAG] marker.
	Marker lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Help style for the key hints line.
	Help lipgloss.Style

	// Detail style for the bordered detail pane.
	Detail lipgloss.Style
}

// DefaultStyles returns the default browser styles.
func DefaultStyles() *Styles {
	var (
		primary = lipgloss.Color("#7C3AED")
		cyan    = lipgloss.Color("#06B6D4")
		fg      = lipgloss.Color("#CDD6F4")
		muted   = lipgloss.Color("#6C7086")
		errCol  = lipgloss.Color("#F38BA8")
		border  = lipgloss.Color("#45475A")
	)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan),

		Value: lipgloss.NewStyle().
			Foreground(fg),

		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Error: lipgloss.NewStyle().
			Foreground(errCol),

		Help: lipgloss.NewStyle().
			Foreground(muted),

		Detail: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}
