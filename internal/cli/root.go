package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/MahaboobV/live-football-scoreboard/internal/config"
	"github.com/MahaboobV/live-football-scoreboard/internal/match"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose              bool
	Format               string // "json" | "text"
	Database             string // SQLite path; empty for the in-memory store
	AllowFinishedUpdates bool
	LogLevel             slog.Level

	// IDGenerator and Now override match IDs and start times (for testing).
	// If nil, the scoreboard defaults (UUIDv7, time.Now) apply.
	IDGenerator match.IDGenerator
	Now         func() time.Time

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command. Flag defaults come from cfg.
//
// Without a subcommand the root command runs the interactive menu.
func NewRootCommand(cfg config.Config) *cobra.Command {
	return newRootCommand(cfg, &RootOptions{})
}

func newRootCommand(cfg config.Config, opts *RootOptions) *cobra.Command {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	opts.LogLevel = level

	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Live football scoreboard",
		Long: `Track live football matches: start them, update scores, finish them
and view a summary ranked by total score.

Run without a subcommand for the interactive menu.

Environment:
  SCOREBOARD_DB                      SQLite database path (default: in-memory)
  SCOREBOARD_FORMAT                  output format, text or json
  SCOREBOARD_LOG_LEVEL               debug, info, warn or error
  SCOREBOARD_ALLOW_FINISHED_UPDATES  accept score updates on finished matches`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.configureLogging(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", cfg.Database, "path to SQLite database (default: in-memory)")
	cmd.PersistentFlags().BoolVar(&opts.AllowFinishedUpdates, "allow-finished-updates", cfg.AllowFinishedUpdates,
		"accept score updates on finished matches")

	// Add subcommands
	cmd.AddCommand(NewStartCommand(opts))
	cmd.AddCommand(NewScoreCommand(opts))
	cmd.AddCommand(NewFinishCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

// configureLogging installs a text handler on w at the configured level.
// --verbose forces debug.
func (o *RootOptions) configureLogging(w io.Writer) {
	level := o.LogLevel
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(o.logger)
}

// Logger returns the configured logger, or slog.Default() when the root
// command's pre-run hook has not run.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
