package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MahaboobV/live-football-scoreboard/internal/harness"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	SQLite bool // run scenarios on an in-memory SQLite store
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name       string   `json:"name"`
	File       string   `json:"file"`
	Pass       bool     `json:"pass"`
	Transcript []string `json:"transcript,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// PlayResult holds the overall result.
type PlayResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play <scenario>...",
		Short: "Run scripted scenarios",
		Long: `Run scenario files (.yaml, .yml or .cue) against a fresh scoreboard
each and print their transcripts. Scenarios use deterministic match IDs
(match-1, match-2, ...) and ignore --db.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error

Examples:
  scoreboard play ./scenarios/world_cup.yaml
  scoreboard play --sqlite ./scenarios/*.cue --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.SQLite, "sqlite", false, "run on an in-memory SQLite store")

	return cmd
}

func runPlay(opts *PlayOptions, files []string, cmd *cobra.Command) error {
	runOpts := []harness.Option{}
	if opts.SQLite {
		runOpts = append(runOpts, harness.WithSQLiteBackend())
	}
	if opts.Verbose {
		runOpts = append(runOpts, harness.WithLogger(opts.Logger()))
	}

	result := PlayResult{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		scenResult := playScenario(file, runOpts)
		result.Scenarios = append(result.Scenarios, scenResult)

		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	w := cmd.OutOrStdout()
	var err error
	if opts.Format == "json" {
		err = outputPlayJSON(w, result)
	} else {
		err = outputPlayText(w, result)
	}
	if err != nil {
		return err
	}

	if result.Failed > 0 {
		return &ExitError{
			Code:     ExitFailure,
			Message:  fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total),
			Reported: true,
		}
	}
	return nil
}

// playScenario loads and runs one scenario file.
func playScenario(file string, runOpts []harness.Option) ScenarioResult {
	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return ScenarioResult{
			Name:   filepath.Base(file),
			File:   file,
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	result, err := harness.Run(scenario, runOpts...)
	if err != nil {
		return ScenarioResult{
			Name:   scenario.Name,
			File:   file,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	return ScenarioResult{
		Name:       scenario.Name,
		File:       file,
		Pass:       result.Pass,
		Transcript: result.Transcript,
		Errors:     result.Errors,
	}
}

func outputPlayJSON(w io.Writer, result PlayResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}
	return json.NewEncoder(w).Encode(CLIResponse{
		Status: status,
		Data:   result,
	})
}

func outputPlayText(w io.Writer, result PlayResult) error {
	for _, s := range result.Scenarios {
		fmt.Fprintf(w, "=== %s (%s)\n", s.Name, s.File)
		for _, line := range s.Transcript {
			fmt.Fprintln(w, line)
		}
		if s.Pass {
			fmt.Fprintf(w, "PASS %s\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "FAIL %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	return nil
}
