package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.AnnotationStore = (*Store)(nil)

// schema holds the annotations table. Each export run appends rows;
// the id column keeps repeated exports of the same annotation distinct.
const schema = `
CREATE TABLE IF NOT EXISTS annotations (
	id          TEXT PRIMARY KEY,
	file        TEXT NOT NULL,
	section     TEXT NOT NULL,
	layer       TEXT NOT NULL,
	tag         TEXT NOT NULL,
	date        TEXT NOT NULL,
	ver         TEXT NOT NULL,
	note        TEXT NOT NULL,
	family      TEXT NOT NULL,
	exported_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_annotations_tag ON annotations(tag);
CREATE INDEX IF NOT EXISTS idx_annotations_date ON annotations(date);
`

// Store is the SQLite-backed annotation export sink.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the ledger database at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	// WAL keeps concurrent readers (sqlite3 CLI, notebook tooling)
	// happy while an export is running.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveAnnotations implements driven.AnnotationStore. All records are
// written in one transaction: an export either lands whole or not at all.
func (s *Store) SaveAnnotations(ctx context.Context, records []domain.Annotation) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO annotations (id, file, section, layer, tag, date, ver, note, family, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	exportedAt := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			uuid.New().String(),
			rec.File, rec.Section, rec.Layer, rec.Tag,
			rec.Date, rec.Version, rec.Note, rec.Family.String(),
			exportedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting annotation %s: %w", rec.Tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing export: %w", err)
	}
	return len(records), nil
}
