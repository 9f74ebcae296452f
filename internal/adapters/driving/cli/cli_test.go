package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Illian-Amerond/tagledger/internal/adapters/driven/config/file"
)

// execute runs the root command with args and captures its output.
// Package-level flag and config state is restored afterwards.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagRoot, flagRegistry, flagLayer, flagTag = "", "", "", "", ""
		flagVerbose = false
		flagOutfile, flagAppend, flagDryRun, flagNoColor = "", false, false, false
		flagFormat, flagGroupBy, flagOut, flagDatabase = "raw", "", "", ""
		cfg = file.Default()
		rootCmd.SetArgs(nil)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeTree creates a sections tree with two annotated files.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	origins := `\Section[opt]{01}{short}{Origins}
Body text.
\Tag[ONTO]{SEED} 2024-03-01 v1.2.0 — Initial seed.
\Tag{DRIFT} 2024-04-01 v1.3.0 — Drift pass.
`
	gates := `\Section{02}{short}{Gates}
\Tag{ZZZTOP} 2024-05-01 v1.4.0 — Not in any registry.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "origins.tex"), []byte(origins), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gates.tex"), []byte(gates), 0o600))
	return dir
}
