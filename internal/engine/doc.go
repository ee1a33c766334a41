// Package engine implements the scoreboard: the rules for starting,
// scoring, finishing and ranking live football matches.
//
// ARCHITECTURE:
//
// The Scoreboard owns no data. Every match lives in a store.Store that is
// constructed by the caller and injected through New, so tests and drivers
// can swap the in-memory store for SQLite (or a failing stub).
//
// Write operations (StartMatch, UpdateScore, FinishMatch) each run inside
// one critical section. Their check-then-act sequences ("is either team
// already live?" then "save the new match") cannot interleave with another
// writer.
//
// Matches cross the API by value. A caller holding a returned Match cannot
// change the scoreboard except through these operations.
//
// RANKING:
//
// The summary lists live matches by total score, highest first. Equal
// totals put the most recently started match first; Seq from the logical
// Clock breaks any remaining tie.
//
// ERRORS:
//
// Every failure is an *Error with a Kind (INVALID_ARGUMENT, NOT_FOUND,
// CONFLICT, ILLEGAL_STATE, UPDATE_FAILED, STORE_UNAVAILABLE) and a message
// suitable for display as-is.
package engine
