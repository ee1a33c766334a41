package store

import (
	"context"
	"errors"

	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

var (
	// ErrInvalidArgument is returned for an empty or whitespace-only match ID.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when no match has the requested ID.
	ErrNotFound = errors.New("match not found")
)

// Store is keyed storage of match records.
type Store interface {
	// Save inserts m or overwrites the record with the same ID.
	// Returns ErrInvalidArgument if the ID is empty.
	Save(ctx context.Context, m match.Match) error

	// FindByID returns the match with the given ID.
	// Returns ErrInvalidArgument for a blank ID and ErrNotFound if absent.
	FindByID(ctx context.Context, id string) (match.Match, error)

	// FindByTeams returns the live match whose home and away teams equal
	// the given pair, in that order. found is false when no such match is
	// live; that is not an error.
	FindByTeams(ctx context.Context, homeTeam, awayTeam string) (m match.Match, found bool, err error)

	// ListAll returns every stored match, live and finished, in no
	// particular order. The slice is an independent snapshot.
	ListAll(ctx context.Context) ([]match.Match, error)
}

// invalidIDError builds the error returned by Save for a match without ID.
func invalidIDError() error {
	return &Error{Err: ErrInvalidArgument, Message: "Match or Match Id cannot be null"}
}

// blankIDError builds the error returned by FindByID for a blank ID.
func blankIDError() error {
	return &Error{Err: ErrInvalidArgument, Message: "Match ID cannot be null or empty"}
}

// notFoundError builds the error returned by FindByID for an unknown ID.
func notFoundError(id string) error {
	return &Error{Err: ErrNotFound, Message: "No match found with ID: " + id, ID: id}
}

// Error carries a human-readable message alongside one of the sentinel
// errors, so callers can both match with errors.Is and show Message as-is.
type Error struct {
	Err     error
	Message string
	ID      string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
