package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Illian-Amerond/tagledger/internal/logger"
	"github.com/Illian-Amerond/tagledger/internal/render"
)

var (
	flagOutfile string
	flagAppend  bool
	flagDryRun  bool
	flagNoColor bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Render the ledger as a changelog narrative",
	Long: `Scan the sections tree for \Tag annotations, classify them against
the tag registry, and render a reverse-chronological markdown narrative.

By default the narrative goes to stdout, styled when stdout is a
terminal. Use --outfile to write a changelog file instead.`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&flagOutfile, "outfile", "o", "", "write the narrative to this file instead of stdout")
	scrapeCmd.Flags().BoolVar(&flagAppend, "append", false, "append to --outfile instead of overwriting")
	scrapeCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "render without writing the outfile")
	scrapeCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable styled terminal output")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	ledger := newLedger()
	filter := entryFilter()

	entries, err := ledger.Entries(cmd.Context(), filter)
	if err != nil {
		return err
	}
	warnUnknownTags(cmd, ledger, filter)

	narrative := render.Narrative(entries)

	outfile := flagOutfile
	if outfile == "" {
		outfile = cfg.Output.File
	}
	if outfile == "" || outfile == "-" {
		return printNarrative(cmd, narrative)
	}

	if flagDryRun {
		logger.Info("dry run, not writing %s", outfile)
		return printNarrative(cmd, narrative)
	}

	if flagAppend {
		f, err := os.OpenFile(outfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening %s: %w", outfile, err)
		}
		defer f.Close()

		if _, err := f.WriteString("\n" + narrative + "\n"); err != nil {
			return fmt.Errorf("appending to %s: %w", outfile, err)
		}
		cmd.Printf("[ok] appended %d entries to %s\n", len(entries), outfile)
		return nil
	}

	if err := os.WriteFile(outfile, []byte(narrative+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	cmd.Printf("[ok] wrote %d entries to %s\n", len(entries), outfile)
	return nil
}

// printNarrative writes the narrative to the command output, styled
// when that output is a terminal and colour is not disabled.
func printNarrative(cmd *cobra.Command, narrative string) error {
	out := cmd.OutOrStdout()
	if useColor(out) {
		narrative = render.DefaultStyles().Apply(narrative)
	}
	_, err := fmt.Fprintln(out, narrative)
	return err
}

func useColor(out io.Writer) bool {
	if flagNoColor || cfg.Output.NoColor {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
