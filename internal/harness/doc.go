// Package harness runs scripted scoreboard scenarios.
//
// A scenario is a list of steps executed against a fresh Scoreboard. Each
// step appends one or more lines to a transcript, and optional expect
// clauses check the outcome as the steps run.
//
// # Scenario Format
//
// Scenarios are YAML or CUE files with the same fields:
//
//	name: world_cup
//	description: "Ranking of five live matches"
//	allow_finished_updates: false
//	steps:
//	  - action: start
//	    home: Mexico
//	    away: Canada
//	    ref: mex
//	  - action: score
//	    match: mex
//	    home_score: 0
//	    away_score: 5
//	  - action: summary
//	    expect:
//	      summary: ["1. Mexico 0 - Canada 5"]
//	  - action: start
//	    home: Mexico
//	    away: Brazil
//	    expect:
//	      error: CONFLICT
//	      message: "Team Mexico is already playing in a live match."
//
// Actions are start, score, finish, get and summary. The score, finish and
// get steps target a match either by "match" (a ref from an earlier start
// step or a literal ID) or by "home" and "away" team names.
//
// CUE scenarios are validated against the embedded #Scenario schema before
// decoding. YAML scenarios are decoded strictly: unknown fields are errors.
//
// # Deterministic Execution
//
// Every run uses:
//   - IDs match-1, match-2, ... (match.SequenceGenerator)
//   - start times one minute apart from 2024-01-01T12:00:00Z (testutil.StepClock)
//   - a fresh store, in memory by default or SQLite with WithSQLiteBackend
//
// so transcripts are identical across runs and can be compared against
// golden files with RunWithGolden.
package harness
