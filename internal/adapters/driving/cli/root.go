// Package cli implements the tagledger command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Illian-Amerond/tagledger/internal/adapters/driven/config/file"
	"github.com/Illian-Amerond/tagledger/internal/connectors/filesystem"
	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driving"
	"github.com/Illian-Amerond/tagledger/internal/core/services"
	"github.com/Illian-Amerond/tagledger/internal/logger"
	"github.com/Illian-Amerond/tagledger/internal/registry"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// cfg holds the loaded configuration, layered over file.Default.
var cfg = file.Default()

var (
	flagConfig   string
	flagVerbose  bool
	flagRoot     string
	flagRegistry string
	flagLayer    string
	flagTag      string
)

var rootCmd = &cobra.Command{
	Use:   "tagledger",
	Short: "Scrape and classify ledger annotations from a TeX manuscript",
	Long: `tagledger scans a sections tree for \Tag{...} ledger annotations,
classifies each tag against the built-in taxonomy (optionally overlaid
with a TAGS.md registry), and renders the result as a changelog
narrative or structured export.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		path := file.DefaultPath
		explicit := flagConfig != ""
		if explicit {
			path = flagConfig
		}

		loaded, err := file.Load(path, explicit)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "config file (default "+file.DefaultPath+")")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&flagRoot, "root", "", "sections folder or single .tex file to scrape")
	pf.StringVar(&flagRegistry, "registry", "", "external TAGS.md registry path")
	pf.StringVar(&flagLayer, "layer", "", "only annotations with this layer code")
	pf.StringVar(&flagTag, "tag", "", "only annotations with this tag")
}

// scrapeRoot resolves the effective sections root, flag over config.
func scrapeRoot() string {
	if flagRoot != "" {
		return flagRoot
	}
	return cfg.Scrape.Root
}

// registryPath resolves the effective external registry path.
func registryPath() string {
	if flagRegistry != "" {
		return flagRegistry
	}
	return cfg.Scrape.Registry
}

// entryFilter resolves the effective layer and tag filter.
func entryFilter() domain.Filter {
	layer := flagLayer
	if layer == "" {
		layer = cfg.Scrape.Layer
	}
	tag := flagTag
	if tag == "" {
		tag = cfg.Scrape.Tag
	}
	return domain.Filter{Layer: layer, Tag: tag}
}

// newLedger wires the filesystem connector and resolved registry into
// the ledger service.
func newLedger() *services.LedgerService {
	source := filesystem.New(scrapeRoot())
	return services.NewLedgerService(source, registry.ForPath(registryPath()))
}

// warnUnknownTags reports tags the registry does not cover. Diagnostic
// only: a failed scrape here never aborts the calling command.
func warnUnknownTags(cmd *cobra.Command, ledger driving.Ledger, filter domain.Filter) {
	tags, err := ledger.UnknownTags(cmd.Context(), filter)
	if err != nil {
		return
	}
	for _, tag := range tags {
		logger.Warn("unknown tag encountered: %s (not in registry)", tag)
	}
}
