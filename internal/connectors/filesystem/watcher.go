package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/Illian-Amerond/tagledger/internal/logger"
)

// rebuildRate throttles how often change events trigger a rebuild.
// Editors fire bursts of writes for a single save; one rebuild per
// second is plenty for a changelog.
var rebuildRate = rate.Every(time.Second)

// Watch monitors the connector's root for .tex changes and invokes
// onChange for each accepted event, throttled by a rate limiter.
// It blocks until the context is cancelled.
func (c *Connector) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := c.addWatchDirs(watcher); err != nil {
		return err
	}

	limiter := rate.NewLimiter(rebuildRate, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			// New directories need watching as they appear.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("could not watch %s: %v", event.Name, err)
					}
					continue
				}
			}
			if !limiter.Allow() {
				logger.Debug("change in %s coalesced into pending rebuild", event.Name)
				continue
			}
			logger.Info("change detected: %s", event.Name)
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// addWatchDirs registers the root and every subdirectory, or the
// parent directory when the root is a single file.
func (c *Connector) addWatchDirs(watcher *fsnotify.Watcher) error {
	info, err := os.Stat(c.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(c.root))
	}
	return filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable subtrees were already diagnosed by Discover
		}
		return watcher.Add(path)
	})
}

// relevantEvent reports whether an fsnotify event should trigger a
// rebuild: writes, creates, removes and renames of .tex files, plus
// directory-level creates (handled by the caller).
func relevantEvent(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.EqualFold(filepath.Ext(name), ".tex") {
		return true
	}
	// Creates may be directories; let the caller decide.
	return event.Op.Has(fsnotify.Create)
}
