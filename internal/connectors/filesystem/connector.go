// Package filesystem supplies TeX section documents from a local root.
// It is the only document source tagledger has: discovery walks the
// root for .tex files, and reads are tolerant, skipping unreadable
// files with a diagnostic so one bad file never aborts a run.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driven"
	"github.com/Illian-Amerond/tagledger/internal/logger"
)

// Ensure Connector implements the driven port.
var _ driven.Source = (*Connector)(nil)

// Connector discovers and reads .tex documents under a root path.
// The root may also be a single .tex file.
type Connector struct {
	root string
}

// New creates a filesystem connector for the given root.
func New(root string) *Connector {
	return &Connector{root: root}
}

// Root returns the configured root path.
func (c *Connector) Root() string {
	return c.root
}

// Discover returns the .tex files under the root in lexicographic
// order. Dot-prefixed files are skipped. A root that is itself a .tex
// file yields exactly that file; a root of any other file type yields
// nothing.
func (c *Connector) Discover() ([]string, error) {
	info, err := os.Stat(c.root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", c.root, err)
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(c.root), ".tex") {
			return []string{c.root}, nil
		}
		return nil, nil
	}

	var paths []string
	err = filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are diagnosed and skipped, same as
			// unreadable files.
			logger.Warn("could not walk %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".tex") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking root %s: %w", c.root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Load implements driven.Source. Unreadable documents are skipped with
// a warning; the run continues across the remaining documents.
func (c *Connector) Load(ctx context.Context) ([]domain.SourceDocument, error) {
	paths, err := c.Discover()
	if err != nil {
		return nil, err
	}

	docs := make([]domain.SourceDocument, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("could not read %s: %v", path, err)
			continue
		}
		docs = append(docs, domain.SourceDocument{Source: path, Text: string(data)})
	}
	logger.Debug("loaded %d of %d discovered documents", len(docs), len(paths))
	return docs, nil
}
