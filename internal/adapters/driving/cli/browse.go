package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Illian-Amerond/tagledger/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive ledger browser",
	Long: `Launch the interactive terminal browser for the classified ledger.

Controls:
  ↑/k, ↓/j - Navigate entries
  Enter    - Show entry detail
  /        - Filter entries
  r        - Re-scrape the tree
  Esc      - Back
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	app, err := tui.NewApp(&tui.Ports{Ledger: newLedger()})
	if err != nil {
		return fmt.Errorf("creating browser: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
