package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/MahaboobV/live-football-scoreboard/internal/engine"
	"github.com/MahaboobV/live-football-scoreboard/internal/match"
	"github.com/MahaboobV/live-football-scoreboard/internal/store"
	"github.com/MahaboobV/live-football-scoreboard/internal/testutil"
)

// Harness executes scenario steps against one Scoreboard.
type Harness struct {
	board *engine.Scoreboard
	refs  map[string]string // start step ref -> match ID
}

type runConfig struct {
	sqlite bool
	logger *slog.Logger
}

// Option configures a scenario run.
type Option func(*runConfig)

// WithSQLiteBackend runs the scenario on an in-memory SQLite store instead
// of the memory store.
func WithSQLiteBackend() Option {
	return func(c *runConfig) {
		c.sqlite = true
	}
}

// WithLogger sets the scoreboard logger. Default: logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// Run executes a scenario and returns the result.
//
// Each run gets a fresh store, so scenarios are isolated. A returned error
// means the run could not start; step failures are reported in
// Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	cfg := runConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var st store.Store
	if cfg.sqlite {
		sqlite, err := store.OpenSQLite(store.MemoryDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory store: %w", err)
		}
		defer sqlite.Close()
		st = sqlite
	} else {
		st = store.NewMemoryStore()
	}

	clock := testutil.NewStepClock()
	h := &Harness{
		board: engine.New(st,
			engine.WithIDGenerator(match.NewSequenceGenerator("match")),
			engine.WithNow(clock.Now),
			engine.WithLogger(cfg.logger),
			engine.WithFinishedScoreUpdates(scenario.AllowFinishedUpdates),
		),
		refs: make(map[string]string),
	}

	ctx := context.Background()
	result := NewResult()
	for i, step := range scenario.Steps {
		h.executeStep(ctx, i+1, step, result)
	}

	return result, nil
}

// executeStep runs one step, writes its transcript lines and records
// unmet expectations.
func (h *Harness) executeStep(ctx context.Context, n int, step Step, result *Result) {
	var (
		label  string
		detail []string
		err    error
		fetch  *match.Match
		lines  []string
		output string
	)

	switch step.Action {
	case ActionStart:
		label = fmt.Sprintf("start %s vs %s", step.Home, step.Away)
		var m match.Match
		if m, err = h.board.StartMatch(ctx, step.Home, step.Away); err == nil {
			if step.Ref != "" {
				h.refs[step.Ref] = m.ID
			}
			output = m.ID
		}

	case ActionScore:
		var target, id string
		target, id, err = h.resolve(ctx, step)
		label = fmt.Sprintf("score %s %d-%d", target, *step.HomeScore, *step.AwayScore)
		if err == nil {
			err = h.board.UpdateScore(ctx, id, *step.HomeScore, *step.AwayScore)
		}
		output = "ok"

	case ActionFinish:
		var target, id string
		target, id, err = h.resolve(ctx, step)
		label = "finish " + target
		if err == nil {
			err = h.board.FinishMatch(ctx, id)
		}
		output = "ok"

	case ActionGet:
		var target, id string
		target, id, err = h.resolve(ctx, step)
		label = "get " + target
		if err == nil {
			var m match.Match
			if m, err = h.board.GetMatch(ctx, id); err == nil {
				fetch = &m
				output = describeMatch(m)
			}
		}

	case ActionSummary:
		label = "summary"
		if lines, err = h.board.Summary(ctx); err == nil {
			output = fmt.Sprintf("%d live", len(lines))
			for _, l := range lines {
				detail = append(detail, "    "+l)
			}
		}
	}

	if err != nil {
		output = describeFailure(err)
		detail = nil
	}
	result.AddLine(fmt.Sprintf("[%d] %s -> %s", n, label, output))
	for _, d := range detail {
		result.AddLine(d)
	}

	if f := checkOutcome(n, step, err); f != nil {
		result.AddError(f.Error())
		return
	}
	if fetch != nil {
		for _, f := range checkMatch(n, step, *fetch) {
			result.AddError(f.Error())
		}
	}
	if err == nil && step.Action == ActionSummary {
		if f := checkSummary(n, step, lines); f != nil {
			result.AddError(f.Error())
		}
	}
}

// resolve returns a transcript label and the match ID a step targets.
// A "match" value is looked up as a ref first, then used as a literal ID.
// Team names resolve through the live pairing lookup.
func (h *Harness) resolve(ctx context.Context, step Step) (string, string, error) {
	if step.Match != "" || (step.Home == "" && step.Away == "") {
		id := step.Match
		if ref, ok := h.refs[step.Match]; ok {
			id = ref
		}
		return id, id, nil
	}

	target := fmt.Sprintf("%s vs %s", step.Home, step.Away)
	m, err := h.board.GetMatchByTeams(ctx, step.Home, step.Away)
	if err != nil {
		return target, "", err
	}
	return target, m.ID, nil
}

func describeMatch(m match.Match) string {
	state := "live"
	if !m.Live {
		state = "finished"
	}
	return fmt.Sprintf("%s %d - %s %d (%s)", m.HomeTeam, m.HomeScore, m.AwayTeam, m.AwayScore, state)
}

func describeFailure(err error) string {
	if kind := engine.KindOf(err); kind != "" {
		return fmt.Sprintf("%s: %s", kind, err.Error())
	}
	return "error: " + err.Error()
}
