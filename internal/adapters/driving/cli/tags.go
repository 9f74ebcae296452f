package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/logger"
	"github.com/Illian-Amerond/tagledger/internal/registry"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Print the resolved tag registry",
	Long: `Print the tag registry grouped by family, after overlaying any
external TAGS.md registry on the built-in taxonomy, followed by the
tags found in the sections tree that no registry source covers.`,
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, _ []string) error {
	reg := registry.ForPath(registryPath())

	byFamily := make(map[domain.Family][]string)
	for tag, fam := range reg {
		byFamily[fam] = append(byFamily[fam], tag)
	}

	for _, fam := range domain.Families() {
		tags := byFamily[fam]
		if len(tags) == 0 {
			continue
		}
		sort.Strings(tags)

		cmd.Printf("%s:\n", fam)
		for _, tag := range tags {
			cmd.Printf("  %s\n", tag)
		}
	}

	// Best effort: a missing sections tree still leaves the registry
	// listing useful.
	unknown, err := newLedger().UnknownTags(cmd.Context(), entryFilter())
	if err != nil {
		logger.Debug("skipping unknown tag check: %v", err)
		return nil
	}
	if len(unknown) > 0 {
		cmd.Println("Unregistered:")
		for _, tag := range unknown {
			cmd.Printf("  %s\n", tag)
		}
	}
	return nil
}
