package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "tagledger.toml"

// Config is the TOML configuration surface.
type Config struct {
	Scrape ScrapeConfig `toml:"scrape"`
	Output OutputConfig `toml:"output"`
	Export ExportConfig `toml:"export"`
}

// ScrapeConfig configures discovery, registry and default filters.
type ScrapeConfig struct {
	// Root is the sections folder or single .tex file to scrape.
	Root string `toml:"root"`

	// Registry is the path of an external TAGS.md registry document.
	Registry string `toml:"registry"`

	// Layer and Tag are default filters, same semantics as the flags.
	Layer string `toml:"layer"`
	Tag   string `toml:"tag"`
}

// OutputConfig configures the narrative output.
type OutputConfig struct {
	// File is the default changelog path; empty or "-" means stdout.
	File string `toml:"file"`

	// NoColor disables styled terminal output even on a TTY.
	NoColor bool `toml:"no_color"`
}

// ExportConfig configures the structured exports.
type ExportConfig struct {
	// Database is the default SQLite ledger path for `export db`.
	Database string `toml:"database"`

	// GroupBy is the default grouping field for grouped JSON.
	GroupBy string `toml:"group_by"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scrape: ScrapeConfig{Root: "sections"},
		Output: OutputConfig{File: "-"},
		Export: ExportConfig{Database: "ledger.db", GroupBy: "tag"},
	}
}

// Load reads the config at path, layered over Default. A missing file
// at the default path yields the defaults; a missing file at an
// explicitly requested path is an error, as is malformed TOML.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
