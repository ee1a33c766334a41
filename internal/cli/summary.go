package cli

import (
	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show live matches ranked by total score",
		Long: `Show the live matches ordered by total score, highest first.
Matches with the same total are ordered by start time, most recent first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(rootOpts, cmd)
		},
	}
}

func runSummary(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	board, closeFn, err := openScoreboard(opts)
	if err != nil {
		return f.Fail(err)
	}
	defer closeFn()

	standings, err := board.Standings(commandContext(cmd))
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(summaryView{Matches: standings})
}
