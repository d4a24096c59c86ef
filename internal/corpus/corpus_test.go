package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRegen(e Entry) (string, string, error) {
	return fmt.Sprintf("List<Int#%d>", e.Seed), fmt.Sprintf("[%d]", e.Size), nil
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "corpus.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(t *testing.T, s *Store, run string, seed int64, size int) {
	t.Helper()
	typ, sample, err := fakeRegen(Entry{Seed: seed, Size: size})
	require.NoError(t, err)
	_, err = s.Record(context.Background(), Entry{RunID: run, Seed: seed, Size: size, Type: typ, Sample: sample})
	require.NoError(t, err)
}

func TestRecordAndEntries(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	runA, runB := NewRunID(), NewRunID()
	require.NotEqual(t, runA, runB)

	record(t, s, runA, 1, 10)
	record(t, s, runB, 2, 20)
	record(t, s, runA, 3, 30)

	entries, err := s.Entries(ctx, runA)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Seed)
	assert.Equal(t, int64(3), entries[1].Seed)
	assert.Equal(t, "List<Int#3>", entries[1].Type)
	assert.Equal(t, "[30]", entries[1].Sample)
	assert.False(t, entries[0].CreatedAt.IsZero())

	all, err := s.Entries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecord_RequiresRunID(t *testing.T) {
	s := openTemp(t)
	_, err := s.Record(context.Background(), Entry{Seed: 1, Size: 1, Type: "Int", Sample: "0"})
	assert.Error(t, err)
}

func TestReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "corpus.db")

	s, err := Open(ctx, path, nil)
	require.NoError(t, err)
	record(t, s, NewRunID(), 5, 5)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()
	entries, err := s.Entries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, path, s.Path())
}

func TestReplay_NoMismatches(t *testing.T) {
	s := openTemp(t)
	run := NewRunID()
	for seed := int64(0); seed < 5; seed++ {
		record(t, s, run, seed, 12)
	}

	mismatches, err := s.Replay(context.Background(), fakeRegen)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestReplay_ReportsChangedRows(t *testing.T) {
	s := openTemp(t)
	run := NewRunID()
	for seed := int64(0); seed < 4; seed++ {
		record(t, s, run, seed, 8)
	}

	drifted := func(e Entry) (string, string, error) {
		typ, sample, _ := fakeRegen(e)
		if e.Seed%2 == 1 {
			sample = "[changed]"
		}
		return typ, sample, nil
	}

	mismatches, err := s.Replay(context.Background(), drifted)
	require.NoError(t, err)
	require.Len(t, mismatches, 2)
	assert.Equal(t, int64(1), mismatches[0].Entry.Seed)
	assert.Equal(t, int64(3), mismatches[1].Entry.Seed)
	assert.Equal(t, "[changed]", mismatches[0].GotSample)
	assert.Equal(t, "[8]", mismatches[0].Entry.Sample)
}

func TestReplay_PropagatesRegenerateError(t *testing.T) {
	s := openTemp(t)
	record(t, s, NewRunID(), 1, 1)

	_, err := s.Replay(context.Background(), func(Entry) (string, string, error) {
		return "", "", fmt.Errorf("sampling disabled")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sampling disabled")
}

func TestTerminalSizeRoundTrip(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	run := NewRunID()

	_, err := s.Record(ctx, Entry{RunID: run, Seed: 1, Size: 20, TerminalSize: 100, Type: "Int", Sample: "3"})
	require.NoError(t, err)
	_, err = s.Record(ctx, Entry{RunID: run, Seed: 2, Size: 20, Type: "Int", Sample: "4"})
	require.NoError(t, err)

	entries, err := s.Entries(ctx, run)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 100, entries[0].TerminalSize)
	assert.Equal(t, 1, entries[1].TerminalSize, "zero terminal size is recorded as the default")

	var got []int
	_, err = s.Replay(ctx, func(e Entry) (string, string, error) {
		got = append(got, e.TerminalSize)
		return e.Type, e.Sample, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{100, 1}, got)
}

func TestOpen_UpgradesOldSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
CREATE TABLE samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	seed INTEGER NOT NULL,
	size INTEGER NOT NULL,
	type TEXT NOT NULL,
	sample TEXT NOT NULL,
	created_at TEXT NOT NULL
);
INSERT INTO samples (run_id, seed, size, type, sample, created_at)
VALUES ('old-run', 7, 9, 'Bool', 'true', '2024-01-02T03:04:05Z');`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Entries(ctx, "old-run")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].TerminalSize)
	assert.Equal(t, int64(7), entries[0].Seed)
}
