package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

const selectColumns = `id, home_team, away_team, home_score, away_score, start_time, live, seq`

// FindByID retrieves a single match by ID.
func (s *SQLiteStore) FindByID(ctx context.Context, id string) (match.Match, error) {
	if match.IsBlank(id) {
		return match.Match{}, blankIDError()
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM matches
		WHERE id = ?
	`, id)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, notFoundError(id)
	}
	if err != nil {
		return match.Match{}, fmt.Errorf("find match %s: %w", id, err)
	}
	return m, nil
}

// FindByTeams retrieves the live match with this exact pairing.
// If more than one row qualifies (only possible when the engine is
// bypassed), the most recently created one wins.
func (s *SQLiteStore) FindByTeams(ctx context.Context, homeTeam, awayTeam string) (match.Match, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM matches
		WHERE live = 1 AND home_team = ? AND away_team = ?
		ORDER BY seq DESC, id COLLATE BINARY ASC
		LIMIT 1
	`, homeTeam, awayTeam)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, false, nil
	}
	if err != nil {
		return match.Match{}, false, fmt.Errorf("find match %s vs %s: %w", homeTeam, awayTeam, err)
	}
	return m, true, nil
}

// ListAll returns all matches ordered by seq for deterministic output.
// Returns an empty slice (not nil) when the store is empty.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]match.Match, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM matches
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	matches := []match.Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return matches, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (match.Match, error) {
	var (
		m         match.Match
		startNano int64
		live      int
	)
	err := row.Scan(
		&m.ID,
		&m.HomeTeam,
		&m.AwayTeam,
		&m.HomeScore,
		&m.AwayScore,
		&startNano,
		&live,
		&m.Seq,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return match.Match{}, err
		}
		return match.Match{}, fmt.Errorf("scan match: %w", err)
	}
	m.StartTime = time.Unix(0, startNano).UTC()
	m.Live = live == 1
	return m, nil
}
