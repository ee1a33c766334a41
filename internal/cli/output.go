package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MahaboobV/live-football-scoreboard/internal/engine"
	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Scoreboard rejected the operation, or a scenario failed
	ExitCommandError = 2 // Command error (bad arguments, database cannot be opened, etc.)
)

// CodeCommandError is the JSON error code for failures outside the
// scoreboard's error kinds.
const CodeCommandError = "COMMAND_ERROR"

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set when the command already wrote the error to its
	// output, so main must not print it again.
	Reported bool
}

func (e *ExitError) Error() string {
	switch {
	case e.Message == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already written by the command.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // engine error kind, e.g. "CONFLICT"
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// Text output prints data with fmt.Fprintln, so views implement fmt.Stringer.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail writes err in the configured format and returns the ExitError the
// command should return. Scoreboard errors use their kind as the code and
// exit with ExitFailure. Anything else is a command error.
func (f *OutputFormatter) Fail(err error) error {
	code := CodeCommandError
	exitCode := ExitCommandError
	var details interface{}

	var (
		se      *engine.Error
		exitErr *ExitError
	)
	switch {
	case errors.As(err, &se):
		code = string(se.Kind)
		exitCode = ExitFailure
		if se.MatchID != "" {
			details = map[string]string{"match_id": se.MatchID}
		}
	case errors.As(err, &exitErr):
		exitCode = exitErr.Code
	}

	if outErr := f.Error(code, err.Error(), details); outErr != nil {
		return outErr
	}
	return &ExitError{Code: exitCode, Err: err, Reported: true}
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// matchView is the output of start, score, finish and show.
type matchView struct {
	match.Match
}

func (v matchView) String() string {
	state := "live"
	if !v.Live {
		state = "finished"
	}
	return fmt.Sprintf("%s  %s %d - %s %d (%s)",
		v.ID, v.HomeTeam, v.HomeScore, v.AwayTeam, v.AwayScore, state)
}

// summaryView is the output of summary.
type summaryView struct {
	Matches []engine.Standing `json:"matches"`
}

func (v summaryView) String() string {
	if len(v.Matches) == 0 {
		return "No live matches."
	}
	lines := make([]string, len(v.Matches))
	for i, s := range v.Matches {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}
