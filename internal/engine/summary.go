package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// Standing is one ranked row of the live summary.
type Standing struct {
	Rank  int         `json:"rank"`
	Match match.Match `json:"match"`
}

// String formats the row as "<rank>. <home> <hs> - <away> <as>".
func (s Standing) String() string {
	return fmt.Sprintf("%d. %s %d - %s %d",
		s.Rank, s.Match.HomeTeam, s.Match.HomeScore, s.Match.AwayTeam, s.Match.AwayScore)
}

// Standings returns live matches ranked by total score (descending), then
// start time (most recent first), then creation order (most recent first).
// Returns an empty slice when nothing is live.
func (b *Scoreboard) Standings(ctx context.Context) ([]Standing, error) {
	all, err := b.store.ListAll(ctx)
	if err != nil {
		return nil, wrapError(KindStoreUnavailable, msgStoreUnavailable, "", err)
	}

	live := make([]match.Match, 0, len(all))
	for _, m := range all {
		if m.Live {
			live = append(live, m)
		}
	}
	sortForSummary(live)

	standings := make([]Standing, len(live))
	for i, m := range live {
		standings[i] = Standing{Rank: i + 1, Match: m}
	}
	return standings, nil
}

// Summary returns the formatted live summary, e.g. "1. Mexico 3 - Canada 4".
func (b *Scoreboard) Summary(ctx context.Context) ([]string, error) {
	standings, err := b.Standings(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(standings))
	for i, s := range standings {
		lines[i] = s.String()
	}
	return lines, nil
}

// sortForSummary orders matches in place. Store enumeration order is
// irrelevant: the comparison is total as long as Seq values are distinct,
// with ID as a final fallback.
func sortForSummary(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Total() != b.Total() {
			return a.Total() > b.Total()
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.After(b.StartTime)
		}
		if a.Seq != b.Seq {
			return a.Seq > b.Seq
		}
		return a.ID < b.ID
	})
}
