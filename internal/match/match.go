// Package match defines the Match record tracked by the scoreboard.
//
// Match is a plain value: copying it never aliases state held by a store,
// so callers holding a returned Match cannot change the scoreboard without
// going through the engine.
package match

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Match is one football contest being tracked.
type Match struct {
	ID        string    `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	StartTime time.Time `json:"start_time"`
	Live      bool      `json:"live"`

	// Seq orders matches by creation. Assigned by the engine, strictly
	// increasing, used as the last summary tie-breaker.
	Seq int64 `json:"seq"`
}

// New creates a not-live match with a 0-0 score.
func New(id, homeTeam, awayTeam string, startTime time.Time, seq int64) Match {
	return Match{
		ID:        id,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		StartTime: startTime,
		Seq:       seq,
	}
}

// Total returns the sum of both scores.
func (m Match) Total() int {
	return m.HomeScore + m.AwayScore
}

// Involves reports whether team plays in this match, home or away.
func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// IsPairing reports whether the match is exactly home vs away (order-sensitive).
func (m Match) IsPairing(home, away string) bool {
	return m.HomeTeam == home && m.AwayTeam == away
}

// NormalizeTeam returns the NFC form of a team name.
//
// Comparison stays case-sensitive; only canonically equivalent encodings
// (a precomposed "\u00e7" versus "c" plus a combining cedilla) collapse
// to one name.
func NormalizeTeam(name string) string {
	return norm.NFC.String(name)
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
