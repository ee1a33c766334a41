package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
	"github.com/MahaboobV/live-football-scoreboard/internal/store"
	"github.com/MahaboobV/live-football-scoreboard/internal/testutil"
)

// newTestScoreboard builds a scoreboard over a fresh memory store with
// deterministic IDs (match-1, match-2, ...) and start times one minute apart.
func newTestScoreboard(t *testing.T, opts ...Option) (*Scoreboard, *store.MemoryStore, *testutil.StepClock) {
	t.Helper()
	st := store.NewMemoryStore()
	clock := testutil.NewStepClock()
	base := []Option{
		WithIDGenerator(match.NewSequenceGenerator("match")),
		WithNow(clock.Now),
	}
	return New(st, append(base, opts...)...), st, clock
}

// failingStore wraps a store and fails selected operations.
type failingStore struct {
	store.Store
	failSave   bool
	failList   bool
	failFind   bool
	failByTeam bool
}

var errDatabase = errors.New("database error")

func (f *failingStore) Save(ctx context.Context, m match.Match) error {
	if f.failSave {
		return errDatabase
	}
	return f.Store.Save(ctx, m)
}

func (f *failingStore) ListAll(ctx context.Context) ([]match.Match, error) {
	if f.failList {
		return nil, errDatabase
	}
	return f.Store.ListAll(ctx)
}

func (f *failingStore) FindByID(ctx context.Context, id string) (match.Match, error) {
	if f.failFind {
		return match.Match{}, errDatabase
	}
	return f.Store.FindByID(ctx, id)
}

func (f *failingStore) FindByTeams(ctx context.Context, home, away string) (match.Match, bool, error) {
	if f.failByTeam {
		return match.Match{}, false, errDatabase
	}
	return f.Store.FindByTeams(ctx, home, away)
}

// seedLive saves a live match directly, bypassing the engine.
func seedLive(t *testing.T, st store.Store, id, home, away string, hs, as int, start time.Time) {
	t.Helper()
	m := match.New(id, home, away, start, 0)
	m.HomeScore, m.AwayScore = hs, as
	m.Live = true
	if err := st.Save(context.Background(), m); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}
