package harness

import (
	"fmt"
	"strings"

	"github.com/MahaboobV/live-football-scoreboard/internal/engine"
	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// AssertionError is an unmet step expectation.
type AssertionError struct {
	Step     int    // 1-based step number
	Action   string // Step action
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("step %d (%s): expected %s, got %s", e.Step, e.Action, e.Expected, e.Actual)
}

// checkOutcome compares a step's error against its expect clause.
// Returns nil when the step behaved as expected.
func checkOutcome(n int, step Step, err error) *AssertionError {
	var wantKind, wantMsg string
	if step.Expect != nil {
		wantKind, wantMsg = step.Expect.Error, step.Expect.Message
	}

	switch {
	case wantKind == "" && err == nil:
		return nil
	case wantKind == "":
		return &AssertionError{Step: n, Action: step.Action,
			Expected: "success",
			Actual:   describeError(err)}
	case err == nil:
		return &AssertionError{Step: n, Action: step.Action,
			Expected: describeExpected(wantKind, wantMsg),
			Actual:   "success"}
	}

	gotKind := string(engine.KindOf(err))
	if gotKind != wantKind || (wantMsg != "" && wantMsg != err.Error()) {
		return &AssertionError{Step: n, Action: step.Action,
			Expected: describeExpected(wantKind, wantMsg),
			Actual:   describeError(err)}
	}
	return nil
}

// checkMatch compares a fetched match against a get step's expect clause.
func checkMatch(n int, step Step, m match.Match) []*AssertionError {
	e := step.Expect
	if e == nil {
		return nil
	}

	var failures []*AssertionError
	if e.HomeScore != nil && *e.HomeScore != m.HomeScore {
		failures = append(failures, &AssertionError{Step: n, Action: step.Action,
			Expected: fmt.Sprintf("home_score %d", *e.HomeScore),
			Actual:   fmt.Sprintf("home_score %d", m.HomeScore)})
	}
	if e.AwayScore != nil && *e.AwayScore != m.AwayScore {
		failures = append(failures, &AssertionError{Step: n, Action: step.Action,
			Expected: fmt.Sprintf("away_score %d", *e.AwayScore),
			Actual:   fmt.Sprintf("away_score %d", m.AwayScore)})
	}
	if e.Live != nil && *e.Live != m.Live {
		failures = append(failures, &AssertionError{Step: n, Action: step.Action,
			Expected: fmt.Sprintf("live %t", *e.Live),
			Actual:   fmt.Sprintf("live %t", m.Live)})
	}
	return failures
}

// checkSummary compares summary lines, order included.
func checkSummary(n int, step Step, got []string) *AssertionError {
	if step.Expect == nil || step.Expect.Summary == nil {
		return nil
	}

	want := step.Expect.Summary
	if len(want) != len(got) {
		return &AssertionError{Step: n, Action: step.Action,
			Expected: fmt.Sprintf("%d summary lines %s", len(want), quoteLines(want)),
			Actual:   fmt.Sprintf("%d %s", len(got), quoteLines(got))}
	}
	for i := range want {
		if want[i] != got[i] {
			return &AssertionError{Step: n, Action: step.Action,
				Expected: fmt.Sprintf("summary line %d %q", i+1, want[i]),
				Actual:   fmt.Sprintf("%q", got[i])}
		}
	}
	return nil
}

func describeExpected(kind, msg string) string {
	if msg == "" {
		return kind
	}
	return fmt.Sprintf("%s %q", kind, msg)
}

func describeError(err error) string {
	kind := engine.KindOf(err)
	if kind == "" {
		return fmt.Sprintf("error %q", err.Error())
	}
	return fmt.Sprintf("%s %q", kind, err.Error())
}

func quoteLines(lines []string) string {
	quoted := make([]string, len(lines))
	for i, l := range lines {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
