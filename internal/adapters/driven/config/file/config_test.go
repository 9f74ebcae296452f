package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "sections", cfg.Scrape.Root)
	assert.Equal(t, "-", cfg.Output.File)
	assert.Equal(t, "ledger.db", cfg.Export.Database)
	assert.Equal(t, "tag", cfg.Export.GroupBy)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagledger.toml")
	content := `
[scrape]
root = "book/sections"
registry = "TAGS.md"
layer = "ONTO"

[output]
file = "CHANGELOG.md"
no_color = true

[export]
group_by = "section"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "book/sections", cfg.Scrape.Root)
	assert.Equal(t, "TAGS.md", cfg.Scrape.Registry)
	assert.Equal(t, "ONTO", cfg.Scrape.Layer)
	assert.Equal(t, "CHANGELOG.md", cfg.Output.File)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "section", cfg.Export.GroupBy)

	// Unset keys keep their defaults.
	assert.Equal(t, "ledger.db", cfg.Export.Database)
}

func TestLoad_MissingDefaultPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true)
	require.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scrape\nroot ="), 0o600))

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
