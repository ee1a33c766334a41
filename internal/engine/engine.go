package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
	"github.com/MahaboobV/live-football-scoreboard/internal/store"
)

// Messages returned verbatim through Error.Error().
const (
	msgTeamsRequired     = "Home and Away Teams must not be null or empty"
	msgTeamsMustDiffer   = "Home and Away Teams must be different."
	msgPairingInProgress = "A match between these two teams is already in progress."
	msgMatchIDRequired   = "Match ID cannot be null or empty"
	msgNegativeScore     = "Score cannot be negative"
	msgAlreadyFinished   = "The match is already finished"
	msgFinishedNoUpdates = "Cannot update the score of a finished match"
	msgStartFailed       = "Failed to save the new match"
	msgScoreFailed       = "Failed to update the match score"
	msgFinishFailed      = "Failed to update the match status"
	msgStoreUnavailable  = "Match store is unavailable"
)

// Scoreboard enforces the live-match rules on top of a store.Store.
//
// Thread-safety model:
//   - StartMatch, UpdateScore, FinishMatch: one critical section each, so
//     check-then-act sequences cannot interleave
//   - GetMatch, GetMatchByTeams, Summary, Standings: read-only, rely on the
//     store's own synchronisation
type Scoreboard struct {
	mu     sync.Mutex
	store  store.Store
	ids    match.IDGenerator
	now    func() time.Time
	clock  *Clock
	logger *slog.Logger

	allowFinishedUpdates bool
}

// Option configures a Scoreboard.
type Option func(*Scoreboard)

// WithIDGenerator sets the match ID generator.
//
// Default: match.UUIDv7Generator.
func WithIDGenerator(gen match.IDGenerator) Option {
	return func(b *Scoreboard) {
		b.ids = gen
	}
}

// WithNow sets the wall clock used for StartTime.
//
// Default: time.Now.
func WithNow(now func() time.Time) Option {
	return func(b *Scoreboard) {
		b.now = now
	}
}

// WithLogger sets the logger for lifecycle events.
//
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Scoreboard) {
		b.logger = logger
	}
}

// WithFinishedScoreUpdates controls whether UpdateScore accepts a match
// that has already finished.
//
// Default: false (finished matches reject updates with ILLEGAL_STATE).
func WithFinishedScoreUpdates(allow bool) Option {
	return func(b *Scoreboard) {
		b.allowFinishedUpdates = allow
	}
}

// New creates a Scoreboard backed by s.
func New(s store.Store, opts ...Option) *Scoreboard {
	b := &Scoreboard{
		store:  s,
		ids:    match.UUIDv7Generator{},
		now:    time.Now,
		clock:  NewClock(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// StartMatch creates a live 0-0 match between homeTeam and awayTeam.
//
// Checks run in order: blank names, identical names, live pairing,
// either team already live elsewhere.
func (b *Scoreboard) StartMatch(ctx context.Context, homeTeam, awayTeam string) (match.Match, error) {
	if match.IsBlank(homeTeam) || match.IsBlank(awayTeam) {
		return match.Match{}, newError(KindInvalidArgument, msgTeamsRequired)
	}
	homeTeam = match.NormalizeTeam(homeTeam)
	awayTeam = match.NormalizeTeam(awayTeam)
	if homeTeam == awayTeam {
		return match.Match{}, newError(KindInvalidArgument, msgTeamsMustDiffer)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, found, err := b.store.FindByTeams(ctx, homeTeam, awayTeam)
	if err != nil {
		return match.Match{}, wrapError(KindStoreUnavailable, msgStoreUnavailable, "", err)
	}
	if found {
		b.logger.Debug("start rejected: pairing already live",
			"home", homeTeam, "away", awayTeam, "match_id", existing.ID)
		return match.Match{}, wrapError(KindConflict, msgPairingInProgress, existing.ID, nil)
	}

	all, err := b.store.ListAll(ctx)
	if err != nil {
		return match.Match{}, wrapError(KindStoreUnavailable, msgStoreUnavailable, "", err)
	}
	for _, m := range all {
		b.clock.Observe(m.Seq)
		if !m.Live {
			continue
		}
		for _, team := range []string{homeTeam, awayTeam} {
			if m.Involves(team) {
				b.logger.Debug("start rejected: team already live",
					"team", team, "match_id", m.ID)
				return match.Match{}, wrapError(KindConflict,
					fmt.Sprintf("Team %s is already playing in a live match.", team), m.ID, nil)
			}
		}
	}

	id := b.ids.Generate()
	if _, err := b.store.FindByID(ctx, id); err == nil {
		return match.Match{}, wrapError(KindConflict,
			fmt.Sprintf("Match ID %s is already in use", id), id, nil)
	} else if !errors.Is(err, store.ErrNotFound) {
		return match.Match{}, wrapError(KindStoreUnavailable, msgStoreUnavailable, id, err)
	}

	m := match.New(id, homeTeam, awayTeam, b.now(), b.clock.Next())
	m.Live = true

	if err := b.store.Save(ctx, m); err != nil {
		b.logger.Error("failed to save new match", "match_id", id, "error", err)
		return match.Match{}, wrapError(KindUpdateFailed, msgStartFailed, id, err)
	}

	b.logger.Info("match started",
		"match_id", m.ID,
		"home", m.HomeTeam,
		"away", m.AwayTeam,
		"seq", m.Seq,
	)
	return m, nil
}

// GetMatch returns the match with the given ID, live or finished.
func (b *Scoreboard) GetMatch(ctx context.Context, id string) (match.Match, error) {
	if match.IsBlank(id) {
		return match.Match{}, newError(KindInvalidArgument, msgMatchIDRequired)
	}
	return b.find(ctx, id)
}

// GetMatchByTeams returns the live match with this exact home/away pairing.
func (b *Scoreboard) GetMatchByTeams(ctx context.Context, homeTeam, awayTeam string) (match.Match, error) {
	if match.IsBlank(homeTeam) || match.IsBlank(awayTeam) {
		return match.Match{}, newError(KindInvalidArgument, msgTeamsRequired)
	}
	homeTeam = match.NormalizeTeam(homeTeam)
	awayTeam = match.NormalizeTeam(awayTeam)

	m, found, err := b.store.FindByTeams(ctx, homeTeam, awayTeam)
	if err != nil {
		return match.Match{}, wrapError(KindStoreUnavailable, msgStoreUnavailable, "", err)
	}
	if !found {
		return match.Match{}, newError(KindNotFound,
			fmt.Sprintf("No live match found between %s and %s", homeTeam, awayTeam))
	}
	return m, nil
}

// UpdateScore replaces both scores of a match.
func (b *Scoreboard) UpdateScore(ctx context.Context, id string, homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return newError(KindInvalidArgument, msgNegativeScore)
	}
	if match.IsBlank(id) {
		return newError(KindInvalidArgument, msgMatchIDRequired)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	m, err := b.find(ctx, id)
	if err != nil {
		return err
	}
	if !m.Live && !b.allowFinishedUpdates {
		return wrapError(KindIllegalState, msgFinishedNoUpdates, id, nil)
	}

	m.HomeScore = homeScore
	m.AwayScore = awayScore
	if err := b.store.Save(ctx, m); err != nil {
		b.logger.Error("failed to save score", "match_id", id, "error", err)
		return wrapError(KindUpdateFailed, msgScoreFailed, id, err)
	}

	b.logger.Info("score updated",
		"match_id", id,
		"home_score", homeScore,
		"away_score", awayScore,
	)
	return nil
}

// FinishMatch ends a live match. Finishing twice is an ILLEGAL_STATE error.
func (b *Scoreboard) FinishMatch(ctx context.Context, id string) error {
	if match.IsBlank(id) {
		return newError(KindInvalidArgument, msgMatchIDRequired)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	m, err := b.find(ctx, id)
	if err != nil {
		return err
	}
	if !m.Live {
		return wrapError(KindIllegalState, msgAlreadyFinished, id, nil)
	}

	m.Live = false
	if err := b.store.Save(ctx, m); err != nil {
		b.logger.Error("failed to save finished match", "match_id", id, "error", err)
		return wrapError(KindUpdateFailed, msgFinishFailed, id, err)
	}

	b.logger.Info("match finished",
		"match_id", id,
		"home_score", m.HomeScore,
		"away_score", m.AwayScore,
	)
	return nil
}

// find resolves id through the store, translating store errors.
func (b *Scoreboard) find(ctx context.Context, id string) (match.Match, error) {
	m, err := b.store.FindByID(ctx, id)
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, store.ErrNotFound):
		return match.Match{}, wrapError(KindNotFound, "No match found with ID: "+id, id, err)
	case errors.Is(err, store.ErrInvalidArgument):
		return match.Match{}, wrapError(KindInvalidArgument, msgMatchIDRequired, id, err)
	default:
		return match.Match{}, wrapError(KindStoreUnavailable, msgStoreUnavailable, id, err)
	}
}
