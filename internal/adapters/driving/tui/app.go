package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// entriesLoaded carries the result of a ledger scrape into the model.
type entriesLoaded struct {
	entries []domain.Annotation
	err     error
}

// App is the ledger browser application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the browser styles.
	styles *Styles

	// entryList is the filterable annotation list.
	entryList list.Model

	// entries holds the classified annotations in scrape order.
	entries []domain.Annotation

	// detail is the entry shown in the detail pane, nil when listing.
	detail *domain.Annotation

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its dimensions.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new ledger browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := DefaultStyles()

	delegate := list.NewDefaultDelegate()
	entryList := list.New(nil, delegate, 0, 0)
	entryList.Title = "Ledger"
	entryList.Styles.Title = s.Title
	entryList.SetShowStatusBar(false)

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		entryList: entryList,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tagledger"),
		a.loadEntries(),
	)
}

// loadEntries scrapes the ledger off the update loop.
func (a *App) loadEntries() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.ports.Ledger.Entries(a.ctx, domain.Filter{})
		return entriesLoaded{entries: entries, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.entryList.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case entriesLoaded:
		a.err = msg.err
		a.entries = msg.entries
		items := make([]list.Item, len(msg.entries))
		for i := range msg.entries {
			items[i] = entryItem{record: msg.entries[i]}
		}
		return a, a.entryList.SetItems(items)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.detail != nil {
			switch msg.String() {
			case "esc", "q", "enter":
				a.detail = nil
			}
			return a, nil
		}

		// Keys while the list owns input. Quit and reload only apply
		// when the filter prompt is not capturing keystrokes.
		if a.entryList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "r":
				return a, a.loadEntries()
			case "enter":
				if item, ok := a.entryList.SelectedItem().(entryItem); ok {
					rec := item.record
					a.detail = &rec
				}
				return a, nil
			}
		}
	}

	a.entryList, cmd = a.entryList.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.err != nil {
		return a.styles.Error.Render("Error: "+a.err.Error()) + "\n" +
			a.styles.Help.Render("[r] retry  [q] quit")
	}

	if a.detail != nil {
		return a.viewDetail()
	}

	help := a.styles.Help.Render("[enter] detail  [/] filter  [r] reload  [q] quit")
	return a.entryList.View() + "\n" + help
}

// viewDetail renders the detail pane for the selected entry.
func (a *App) viewDetail() string {
	rec := a.detail

	var b strings.Builder
	b.WriteString(a.styles.Marker.Render(rec.Marker()) + "\n\n")

	fields := []struct{ label, value string }{
		{"Section", rec.Section},
		{"Family", rec.Family.String()},
		{"Date", rec.Date},
		{"Version", "v" + rec.Version},
		{"File", rec.File},
		{"Note", rec.Note},
	}
	for _, f := range fields {
		b.WriteString(a.styles.Label.Render(f.label+":") + " " + a.styles.Value.Render(f.value) + "\n")
	}

	pane := a.styles.Detail.Render(strings.TrimRight(b.String(), "\n"))
	return pane + "\n" + a.styles.Help.Render("[esc] back  [q] back")
}

// Run starts the browser.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Entries returns the loaded annotations (for testing).
func (a *App) Entries() []domain.Annotation {
	return a.entries
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}
