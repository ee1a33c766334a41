package engine

import (
	"errors"
)

// Kind categorizes scoreboard errors.
type Kind string

const (
	// KindInvalidArgument indicates malformed caller input: blank team
	// names or ID, identical teams, negative score.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindNotFound indicates an unknown match ID or team pairing.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict indicates a live-match rule violation: duplicate live
	// pairing or a team already playing.
	KindConflict Kind = "CONFLICT"

	// KindIllegalState indicates an operation not allowed in the match's
	// current state, e.g. finishing a finished match. Conflict-class.
	KindIllegalState Kind = "ILLEGAL_STATE"

	// KindUpdateFailed indicates the store failed to persist a change
	// after validation passed.
	KindUpdateFailed Kind = "UPDATE_FAILED"

	// KindStoreUnavailable indicates a store read failed for a reason
	// other than a missing match.
	KindStoreUnavailable Kind = "STORE_UNAVAILABLE"
)

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrIllegalState     = errors.New("illegal state")
	ErrUpdateFailed     = errors.New("update failed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var kindSentinels = map[Kind]error{
	KindInvalidArgument:  ErrInvalidArgument,
	KindNotFound:         ErrNotFound,
	KindConflict:         ErrConflict,
	KindIllegalState:     ErrIllegalState,
	KindUpdateFailed:     ErrUpdateFailed,
	KindStoreUnavailable: ErrStoreUnavailable,
}

// Error is returned by every Scoreboard operation that fails.
//
// Error() is Message verbatim, so a front end can print it as-is.
// The underlying cause, if any, is available through errors.Unwrap.
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// Message is a human-readable description.
	Message string

	// MatchID identifies the affected match, when known.
	MatchID string

	// Err is the underlying cause (store error), if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsInvalidArgument returns true if err is an INVALID_ARGUMENT error.
func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

// IsNotFound returns true if err is a NOT_FOUND error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict returns true for CONFLICT and for the conflict-class
// ILLEGAL_STATE.
func IsConflict(err error) bool {
	k := KindOf(err)
	return k == KindConflict || k == KindIllegalState
}

// IsIllegalState returns true if err is an ILLEGAL_STATE error.
func IsIllegalState(err error) bool {
	return KindOf(err) == KindIllegalState
}

// IsUpdateFailed returns true if err is an UPDATE_FAILED error.
func IsUpdateFailed(err error) bool {
	return KindOf(err) == KindUpdateFailed
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message, matchID string, cause error) *Error {
	return &Error{Kind: kind, Message: message, MatchID: matchID, Err: cause}
}
