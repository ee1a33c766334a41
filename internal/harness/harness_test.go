package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func TestRun_NilScenario(t *testing.T) {
	_, err := Run(nil)
	assert.Error(t, err)
}

func TestRun_MinimalScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "minimal",
		Description: "Start one match and read the summary",
		Steps: []Step{
			{Action: ActionStart, Home: "Mexico", Away: "Canada"},
			{Action: ActionSummary, Expect: &Expect{Summary: []string{"1. Mexico 0 - Canada 0"}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{
		"[1] start Mexico vs Canada -> match-1",
		"[2] summary -> 1 live",
		"    1. Mexico 0 - Canada 0",
	}, result.Transcript)
}

func TestRun_RefsResolveToMatchIDs(t *testing.T) {
	scenario := &Scenario{
		Name:        "refs",
		Description: "Refs name matches",
		Steps: []Step{
			{Action: ActionStart, Home: "A", Away: "B", Ref: "first"},
			{Action: ActionStart, Home: "C", Away: "D", Ref: "second"},
			{Action: ActionScore, Match: "second", HomeScore: intPtr(2), AwayScore: intPtr(0)},
			{Action: ActionGet, Match: "second", Expect: &Expect{HomeScore: intPtr(2), Live: boolPtr(true)}},
			{Action: ActionGet, Match: "match-1", Expect: &Expect{HomeScore: intPtr(0)}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "[3] score match-2 2-0 -> ok", result.Transcript[2])
	assert.Equal(t, "[4] get match-2 -> C 2 - D 0 (live)", result.Transcript[3])
	assert.Equal(t, "[5] get match-1 -> A 0 - B 0 (live)", result.Transcript[4])
}

func TestRun_UnexpectedErrorFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "unexpected",
		Description: "Step fails without an expect clause",
		Steps: []Step{
			{Action: ActionFinish, Match: "nope"},
			{Action: ActionSummary},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, `step 1 (finish): expected success, got NOT_FOUND "No match found with ID: nope"`, result.Errors[0])
	assert.Len(t, result.Transcript, 2, "failing steps do not stop the run")
}

func TestRun_ExpectedErrorMissing(t *testing.T) {
	scenario := &Scenario{
		Name:        "missing_error",
		Description: "Expected error does not happen",
		Steps: []Step{
			{Action: ActionStart, Home: "A", Away: "B", Expect: &Expect{Error: "CONFLICT"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{"step 1 (start): expected CONFLICT, got success"}, result.Errors)
}

func TestRun_WrongErrorMessage(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_message",
		Description: "Kind matches, message does not",
		Steps: []Step{
			{Action: ActionStart, Home: "A", Away: "A", Expect: &Expect{
				Error:   "INVALID_ARGUMENT",
				Message: "Teams must differ",
			}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `expected INVALID_ARGUMENT "Teams must differ"`)
	assert.Contains(t, result.Errors[0], `got INVALID_ARGUMENT "Home and Away Teams must be different."`)
}

func TestRun_SummaryMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "summary_mismatch",
		Description: "Wrong order",
		Steps: []Step{
			{Action: ActionStart, Home: "A", Away: "B"},
			{Action: ActionStart, Home: "C", Away: "D"},
			{Action: ActionSummary, Expect: &Expect{Summary: []string{
				"1. A 0 - B 0",
				"2. C 0 - D 0",
			}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, `step 3 (summary): expected summary line 1 "1. A 0 - B 0", got "1. C 0 - D 0"`, result.Errors[0])
}

func TestRun_EmptySummaryExpectation(t *testing.T) {
	scenario := &Scenario{
		Name:        "empty_summary",
		Description: "Nothing live",
		Steps: []Step{
			{Action: ActionStart, Home: "A", Away: "B", Ref: "ab"},
			{Action: ActionSummary, Expect: &Expect{Summary: []string{}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{`step 2 (summary): expected 0 summary lines [], got 1 ["1. A 0 - B 0"]`}, result.Errors)
}

func TestRun_GetExpectationMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "get_mismatch",
		Description: "Every mismatching field is reported",
		Steps: []Step{
			{Action: ActionStart, Home: "A", Away: "B", Ref: "ab"},
			{Action: ActionGet, Match: "ab", Expect: &Expect{
				HomeScore: intPtr(1),
				AwayScore: intPtr(2),
				Live:      boolPtr(false),
			}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{
		"step 2 (get): expected home_score 1, got home_score 0",
		"step 2 (get): expected away_score 2, got away_score 0",
		"step 2 (get): expected live false, got live true",
	}, result.Errors)
}

func TestRun_FinishedUpdatesPolicy(t *testing.T) {
	steps := []Step{
		{Action: ActionStart, Home: "A", Away: "B", Ref: "ab"},
		{Action: ActionFinish, Match: "ab"},
		{Action: ActionScore, Match: "ab", HomeScore: intPtr(1), AwayScore: intPtr(0)},
	}

	strict, err := Run(&Scenario{Name: "strict", Description: "d", Steps: steps})
	require.NoError(t, err)
	assert.False(t, strict.Pass)
	assert.Equal(t, "[3] score match-1 1-0 -> ILLEGAL_STATE: Cannot update the score of a finished match", strict.Transcript[2])

	lenient, err := Run(&Scenario{Name: "lenient", Description: "d", AllowFinishedUpdates: true, Steps: steps})
	require.NoError(t, err)
	assert.True(t, lenient.Pass, "errors: %v", lenient.Errors)
	assert.Equal(t, "[3] score match-1 1-0 -> ok", lenient.Transcript[2])
}

func TestRun_IsolatedRuns(t *testing.T) {
	scenario := &Scenario{
		Name:        "isolated",
		Description: "Each run starts from an empty board",
		Steps:       []Step{{Action: ActionStart, Home: "A", Away: "B"}},
	}

	for i := 0; i < 3; i++ {
		result, err := Run(scenario)
		require.NoError(t, err)
		assert.True(t, result.Pass)
		assert.Equal(t, "[1] start A vs B -> match-1", result.Transcript[0])
	}
}

func TestRun_SQLiteBackend(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/lifecycle_errors.yaml")
	require.NoError(t, err)

	memory, err := Run(scenario)
	require.NoError(t, err)
	sqlite, err := Run(scenario, WithSQLiteBackend())
	require.NoError(t, err)

	assert.True(t, sqlite.Pass, "errors: %v", sqlite.Errors)
	assert.Equal(t, memory.Transcript, sqlite.Transcript)
}

func TestRun_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := Run(&Scenario{
		Name:        "logged",
		Description: "d",
		Steps:       []Step{{Action: ActionStart, Home: "A", Away: "B"}},
	}, WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "match started")
}

func TestResult_TranscriptText(t *testing.T) {
	r := NewResult()
	assert.Equal(t, "", r.TranscriptText())

	r.AddLine("a")
	r.AddLine("b")
	assert.Equal(t, "a\nb\n", r.TranscriptText())

	assert.True(t, r.Pass)
	r.AddError("boom")
	assert.False(t, r.Pass)
}
