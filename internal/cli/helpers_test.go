package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MahaboobV/live-football-scoreboard/internal/config"
	"github.com/MahaboobV/live-football-scoreboard/internal/match"
	"github.com/MahaboobV/live-football-scoreboard/internal/testutil"
)

var testConfig = config.Config{Format: config.FormatText, LogLevel: "error"}

// testOptions returns options with deterministic IDs (match-1, ...) and
// start times. Reuse the same options across invocations that share a
// database so IDs keep counting.
func testOptions() *RootOptions {
	return &RootOptions{
		IDGenerator: match.NewSequenceGenerator("match"),
		Now:         testutil.NewStepClock().Now,
	}
}

// runRoot executes the root command with args and returns stdout.
func runRoot(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	out, _, err := runRootWithInput(t, opts, "", args...)
	return out, err
}

// runRootWithInput executes the root command with stdin set to input.
func runRootWithInput(t *testing.T, opts *RootOptions, input string, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRootCommand(testConfig, opts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "board.db")
}
