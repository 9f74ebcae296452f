package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Illian-Amerond/tagledger/internal/adapters/driven/storage/sqlite"
	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/render"
)

var (
	flagFormat   string
	flagGroupBy  string
	flagOut      string
	flagDatabase string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export classified annotations",
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export annotations as JSON",
	Long: `Export the classified annotations as JSON.

The raw format is a flat array in scrape order. The grouped format is
an object keyed by tag, layer or section, keys in first-seen order.`,
	RunE: runExportJSON,
}

var exportDBCmd = &cobra.Command{
	Use:   "db",
	Short: "Export annotations into the SQLite ledger database",
	RunE:  runExportDB,
}

func init() {
	exportJSONCmd.Flags().StringVar(&flagFormat, "format", "raw", "output shape: raw or grouped")
	exportJSONCmd.Flags().StringVar(&flagGroupBy, "group-by", "", "grouping field for grouped output: tag, layer or section")
	exportJSONCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write JSON to this file instead of stdout")
	exportDBCmd.Flags().StringVar(&flagDatabase, "db", "", "SQLite database path")
	exportCmd.AddCommand(exportJSONCmd, exportDBCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportJSON(cmd *cobra.Command, _ []string) error {
	ledger := newLedger()
	filter := entryFilter()

	entries, err := ledger.Entries(cmd.Context(), filter)
	if err != nil {
		return err
	}
	warnUnknownTags(cmd, ledger, filter)

	var data []byte
	switch flagFormat {
	case "raw":
		data, err = render.Raw(entries)
	case "grouped":
		groupBy := flagGroupBy
		if groupBy == "" {
			groupBy = cfg.Export.GroupBy
		}
		var key domain.GroupKey
		key, err = domain.ParseGroupKey(groupBy)
		if err != nil {
			return err
		}
		data, err = json.MarshalIndent(render.GroupBy(entries, key), "", "  ")
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownFormat, flagFormat)
	}
	if err != nil {
		return fmt.Errorf("marshalling entries: %w", err)
	}

	if flagOut == "" || flagOut == "-" {
		cmd.Println(string(data))
		return nil
	}
	if err := os.WriteFile(flagOut, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	cmd.Printf("[ok] wrote %d entries to %s\n", len(entries), flagOut)
	return nil
}

func runExportDB(cmd *cobra.Command, _ []string) error {
	ledger := newLedger()
	filter := entryFilter()

	entries, err := ledger.Entries(cmd.Context(), filter)
	if err != nil {
		return err
	}
	warnUnknownTags(cmd, ledger, filter)

	path := flagDatabase
	if path == "" {
		path = cfg.Export.Database
	}

	store, err := sqlite.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.SaveAnnotations(cmd.Context(), entries)
	if err != nil {
		return err
	}
	cmd.Printf("[ok] exported %d entries to %s\n", n, path)
	return nil
}
