package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestMenu_SummaryAndExit(t *testing.T) {
	out, _, err := runRootWithInput(t, testOptions(), lines("4", "5"))
	require.NoError(t, err)

	want := "Welcome to the Live Football Scoreboard!\n" +
		menuOptions + "\n" +
		"Enter your choice:\n" +
		"No live matches.\n" +
		menuOptions + "\n" +
		"Enter your choice:\n" +
		"Exiting the application...\n"
	assert.Equal(t, want, out)
}

func TestMenu_StartUpdateFinish(t *testing.T) {
	input := lines(
		"1", "Mexico", "Canada",
		"1", "Spain", "Brazil",
		"2", "1", "match-1", "0", "5",
		"2", "2", "Spain", "Brazil", "10", "2",
		"4",
		"3", "2", "Spain", "Brazil",
		"4",
		"5",
	)

	out, _, err := runRootWithInput(t, testOptions(), input)
	require.NoError(t, err)

	assert.Contains(t, out, "Match started: Mexico vs Canada\nMatch ID: match-1\n")
	assert.Contains(t, out, "Match started: Spain vs Brazil\nMatch ID: match-2\n")
	assert.Contains(t, out, "Score updated: Mexico 0 - Canada 5\n")
	assert.Contains(t, out, "Score updated: Spain 10 - Brazil 2\n")
	assert.Contains(t, out, "Live match summary:\n1. Spain 10 - Brazil 2\n2. Mexico 0 - Canada 5\n")
	assert.Contains(t, out, "Match match-2 has been finished\n")
	assert.Contains(t, out, "Live match summary:\n1. Mexico 0 - Canada 5\n")
	assert.True(t, strings.HasSuffix(out, "Exiting the application...\n"))
}

func TestMenu_ErrorsDoNotStopTheLoop(t *testing.T) {
	input := lines(
		"1", "Spain", "Spain",
		"1", "Mexico", "Canada",
		"1", "Mexico", "Brazil",
		"2", "1", "match-1", "-1", "0",
		"2", "1", "match-1", "two",
		"2", "1", "nope", "1", "0",
		"2", "3",
		"3", "1", "match-1",
		"3", "1", "match-1",
		"3", "2", "Canada", "Mexico",
		"9",
		"5",
	)

	out, _, err := runRootWithInput(t, testOptions(), input)
	require.NoError(t, err)

	for _, want := range []string{
		"Error: Home and Away Teams must be different.\n",
		"Error: Team Mexico is already playing in a live match.\n",
		"Error: Score cannot be negative\n",
		"Error: Invalid score input. Please enter numeric values.\n",
		"Error: No match found with ID: nope\n",
		"Invalid choice, please choose 1 or 2.\n",
		"Match match-1 has been finished\n",
		"Error: The match is already finished\n",
		"Error: No live match found between Canada and Mexico\n",
		"Invalid choice, please try again!\n",
		"Exiting the application...\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestMenu_EndOfInputExitsCleanly(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"after choice", lines("1")},
		{"mid start", lines("1", "Mexico")},
		{"mid update", lines("1", "Mexico", "Canada", "2", "1", "match-1", "3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runRootWithInput(t, testOptions(), tt.input)
			require.NoError(t, err)
			assert.NotContains(t, out, "Exiting the application...")
		})
	}
}

func TestMenu_TrimsInput(t *testing.T) {
	out, _, err := runRootWithInput(t, testOptions(), " 1 \r\n  Mexico \n Canada\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Match started: Mexico vs Canada\n")
	assert.Contains(t, out, "1. Mexico 0 - Canada 0\n")
}

func TestMenu_UsesDatabase(t *testing.T) {
	db := tempDB(t)
	opts := testOptions()

	_, _, err := runRootWithInput(t, opts, lines("1", "Mexico", "Canada", "5"), "--db", db)
	require.NoError(t, err)

	out, err := runRoot(t, opts, "--db", db, "summary")
	require.NoError(t, err)
	assert.Equal(t, "1. Mexico 0 - Canada 0\n", out)
}
