package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// createTestSQLiteStore creates a new file-backed store for testing.
func createTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testStart = time.Date(2024, 6, 14, 19, 0, 0, 0, time.UTC)

// createTestMatch creates a live match with minimal required fields.
func createTestMatch(id, home, away string, seq int64) match.Match {
	m := match.New(id, home, away, testStart.Add(time.Duration(seq)*time.Minute), seq)
	m.Live = true
	return m
}
