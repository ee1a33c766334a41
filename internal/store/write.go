package store

import (
	"context"
	"fmt"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// Save upserts a match row. Uses ON CONFLICT(id) DO UPDATE so a second save
// of the same ID overwrites every mutable column.
//
// CHECK constraints (negative scores) surface as errors.
func (s *SQLiteStore) Save(ctx context.Context, m match.Match) error {
	if match.IsBlank(m.ID) {
		return invalidIDError()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches
		(id, home_team, away_team, home_score, away_score, start_time, live, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			home_team  = excluded.home_team,
			away_team  = excluded.away_team,
			home_score = excluded.home_score,
			away_score = excluded.away_score,
			start_time = excluded.start_time,
			live       = excluded.live,
			seq        = excluded.seq
	`,
		m.ID,
		m.HomeTeam,
		m.AwayTeam,
		m.HomeScore,
		m.AwayScore,
		m.StartTime.UTC().UnixNano(),
		boolToInt(m.Live),
		m.Seq,
	)
	if err != nil {
		return fmt.Errorf("save match %s: %w", m.ID, err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
