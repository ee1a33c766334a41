package store

import (
	"context"
	"sync"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// MemoryStore keeps matches in a map. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{matches: make(map[string]match.Match)}
}

// Save stores a copy of m.
func (s *MemoryStore) Save(_ context.Context, m match.Match) error {
	if match.IsBlank(m.ID) {
		return invalidIDError()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m
	return nil
}

// FindByID returns a copy of the stored match.
func (s *MemoryStore) FindByID(_ context.Context, id string) (match.Match, error) {
	if match.IsBlank(id) {
		return match.Match{}, blankIDError()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return match.Match{}, notFoundError(id)
	}
	return m, nil
}

// FindByTeams scans for the live match with this exact pairing.
func (s *MemoryStore) FindByTeams(_ context.Context, homeTeam, awayTeam string) (match.Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.Live && m.IsPairing(homeTeam, awayTeam) {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

// ListAll returns a snapshot of all matches.
func (s *MemoryStore) ListAll(_ context.Context) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]match.Match, 0, len(s.matches))
	for _, m := range s.matches {
		all = append(all, m)
	}
	return all, nil
}

var _ Store = (*MemoryStore)(nil)
