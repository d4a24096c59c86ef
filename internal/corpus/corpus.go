// Package corpus is a SQLite-backed regression corpus of generated
// (type, sample) pairs. Each row keeps the seed and size it was drawn
// with so it can be regenerated later and compared against its stored
// rendering.
package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/funvibe/typegen/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	seed INTEGER NOT NULL,
	size INTEGER NOT NULL,
	terminal_size INTEGER NOT NULL DEFAULT 1,
	type TEXT NOT NULL,
	sample TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id);
`

// Entry is one recorded pair. Seed, Size and TerminalSize are everything
// needed to draw it again.
type Entry struct {
	ID           int64
	RunID        string
	Seed         int64
	Size         int
	TerminalSize int
	Type         string
	Sample       string
	CreatedAt    time.Time
}

// Regenerate rebuilds the rendering of a recorded pair from the settings it
// was originally drawn with.
type Regenerate func(e Entry) (typ, sample string, err error)

// Mismatch is a recorded entry whose regenerated rendering differs from the
// stored one.
type Mismatch struct {
	Entry     Entry
	GotType   string
	GotSample string
}

// Store manages the corpus database.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// NewRunID returns a fresh identifier grouping the entries of one run.
func NewRunID() string {
	return uuid.NewString()
}

// Open creates or opens the corpus at path. A nil logger disables logging.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create corpus directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	// Writes are serialized through one connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, path: path, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize corpus schema: %w", err)
	}

	logger.Debug("opened corpus", zap.String("path", path))
	return store, nil
}

// initSchema creates the samples table and adds columns missing from
// corpora written by older versions.
func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}

	var n int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pragma_table_info('samples') WHERE name = 'terminal_size'`)
	if err := row.Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		s.logger.Info("adding terminal_size column to corpus", zap.String("path", s.path))
		_, err := s.db.ExecContext(ctx, fmt.Sprintf(
			`ALTER TABLE samples ADD COLUMN terminal_size INTEGER NOT NULL DEFAULT %d`, config.TerminalSize))
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record stores e and returns its row id. A zero CreatedAt is set to now
// and a zero TerminalSize to config.TerminalSize.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.RunID == "" {
		return 0, errors.New("corpus entry has no run id")
	}
	if e.TerminalSize == 0 {
		e.TerminalSize = config.TerminalSize
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO samples (run_id, seed, size, terminal_size, type, sample, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Seed, e.Size, e.TerminalSize, e.Type, e.Sample, e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to record sample: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read sample id: %w", err)
	}

	s.logger.Debug("recorded sample",
		zap.Int64("id", id),
		zap.String("run", e.RunID),
		zap.Int64("seed", e.Seed),
		zap.Int("size", e.Size),
		zap.Int("terminal_size", e.TerminalSize))
	return id, nil
}

// Entries lists the entries of runID in insertion order. An empty runID
// lists every entry.
func (s *Store) Entries(ctx context.Context, runID string) ([]Entry, error) {
	query := `SELECT id, run_id, seed, size, terminal_size, type, sample, created_at FROM samples`
	var args []any
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.RunID, &e.Seed, &e.Size, &e.TerminalSize, &e.Type, &e.Sample, &created); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("sample %d has a malformed timestamp: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return entries, nil
}

// Replay regenerates every entry and returns those whose rendering changed.
func (s *Store) Replay(ctx context.Context, regen Regenerate) ([]Mismatch, error) {
	entries, err := s.Entries(ctx, "")
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return mismatches, err
		}
		typ, sample, err := regen(e)
		if err != nil {
			return mismatches, fmt.Errorf("regenerating sample %d: %w", e.ID, err)
		}
		if typ == e.Type && sample == e.Sample {
			continue
		}
		s.logger.Warn("sample changed on replay",
			zap.Int64("id", e.ID),
			zap.Int64("seed", e.Seed),
			zap.Int("size", e.Size),
			zap.String("want_type", e.Type),
			zap.String("got_type", typ))
		mismatches = append(mismatches, Mismatch{Entry: e, GotType: typ, GotSample: sample})
	}

	s.logger.Info("replayed corpus",
		zap.Int("entries", len(entries)),
		zap.Int("mismatches", len(mismatches)))
	return mismatches, nil
}
