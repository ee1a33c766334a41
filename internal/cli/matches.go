package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Home string
	Away string
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <home-team> <away-team>",
		Short: "Start a live match",
		Long: `Start a live match between two teams with a 0-0 score.

Example:
  scoreboard --db ./board.db start Mexico Canada`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(rootOpts, args[0], args[1], cmd)
		},
	}
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <match-id> <home-score> <away-score>",
		Short: "Set the score of a match",
		Long: `Replace both scores of a match. Scores are absolute, not increments.

Example:
  scoreboard --db ./board.db score 0190c8a2-7d6e-7c3f-9b1a-2f4e6d8c0a1b 0 5`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(rootOpts, args, cmd)
		},
	}
}

// NewFinishCommand creates the finish command.
func NewFinishCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "finish <match-id>",
		Short:         "Finish a live match",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFinish(rootOpts, args[0], cmd)
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show [match-id]",
		Short: "Show one match",
		Long: `Show a match by ID, live or finished, or the live match of a
home/away pairing.

Examples:
  scoreboard --db ./board.db show 0190c8a2-7d6e-7c3f-9b1a-2f4e6d8c0a1b
  scoreboard --db ./board.db show --home Mexico --away Canada`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Home, "home", "", "home team of a live match")
	cmd.Flags().StringVar(&opts.Away, "away", "", "away team of a live match")

	return cmd
}

func runStart(opts *RootOptions, home, away string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	board, closeFn, err := openScoreboard(opts)
	if err != nil {
		return f.Fail(err)
	}
	defer closeFn()

	m, err := board.StartMatch(commandContext(cmd), home, away)
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(matchView{m})
}

func runScore(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	homeScore, err := parseScore(args[1])
	if err != nil {
		return f.Fail(err)
	}
	awayScore, err := parseScore(args[2])
	if err != nil {
		return f.Fail(err)
	}

	board, closeFn, err := openScoreboard(opts)
	if err != nil {
		return f.Fail(err)
	}
	defer closeFn()

	ctx := commandContext(cmd)
	if err := board.UpdateScore(ctx, args[0], homeScore, awayScore); err != nil {
		return f.Fail(err)
	}
	m, err := board.GetMatch(ctx, args[0])
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(matchView{m})
}

func runFinish(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	board, closeFn, err := openScoreboard(opts)
	if err != nil {
		return f.Fail(err)
	}
	defer closeFn()

	ctx := commandContext(cmd)
	if err := board.FinishMatch(ctx, id); err != nil {
		return f.Fail(err)
	}
	m, err := board.GetMatch(ctx, id)
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(matchView{m})
}

func runShow(opts *ShowOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	byTeams := opts.Home != "" || opts.Away != ""
	switch {
	case len(args) == 1 && byTeams:
		return f.Fail(NewExitError(ExitCommandError, "show takes a match ID or --home/--away, not both"))
	case len(args) == 0 && !byTeams:
		return f.Fail(NewExitError(ExitCommandError, "show needs a match ID or --home and --away"))
	}

	board, closeFn, err := openScoreboard(opts.RootOptions)
	if err != nil {
		return f.Fail(err)
	}
	defer closeFn()

	ctx := commandContext(cmd)
	if byTeams {
		m, err := board.GetMatchByTeams(ctx, opts.Home, opts.Away)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(matchView{m})
	}

	m, err := board.GetMatch(ctx, args[0])
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(matchView{m})
}

// parseScore parses a score argument. Negative numbers parse; the
// scoreboard rejects them.
func parseScore(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid score %q: must be a whole number", s))
	}
	return n, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// commandContext returns the command's context, or Background when the
// command was executed without one (tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
