package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Illian-Amerond/tagledger/internal/connectors/filesystem"
	"github.com/Illian-Amerond/tagledger/internal/core/services"
	"github.com/Illian-Amerond/tagledger/internal/logger"
	"github.com/Illian-Amerond/tagledger/internal/registry"
	"github.com/Illian-Amerond/tagledger/internal/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the narrative when section files change",
	Long: `Render the changelog narrative, then keep watching the sections tree
and re-render on every .tex change until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := filesystem.New(scrapeRoot())
	ledger := services.NewLedgerService(source, registry.ForPath(registryPath()))
	filter := entryFilter()

	renderOnce := func() {
		entries, err := ledger.Entries(ctx, filter)
		if err != nil {
			logger.Warn("scrape failed: %v", err)
			return
		}
		warnUnknownTags(cmd, ledger, filter)

		cmd.Printf("\n[watch] %s\n", time.Now().Format("15:04:05"))
		if err := printNarrative(cmd, render.Narrative(entries)); err != nil {
			logger.Warn("writing narrative: %v", err)
		}
	}

	renderOnce()

	err := source.Watch(ctx, renderOnce)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
