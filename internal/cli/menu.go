package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MahaboobV/live-football-scoreboard/internal/engine"
)

const menuOptions = `
Select an option:
1. Start a match
2. Update match score
3. Finish a match
4. View live match summary
5. Exit`

const targetOptions = `
Select an option:
1. Using match ID
2. Using team names`

const (
	msgInvalidChoice = "Invalid choice, please try again!"
	msgInvalidTarget = "Invalid choice, please choose 1 or 2."
	msgInvalidScore  = "Invalid score input. Please enter numeric values."
)

var (
	errInvalidTarget = errors.New("invalid match selection")
	errInvalidScore  = errors.New("invalid score input")
)

// menu is the interactive front end. It reads one answer per line and
// keeps running after scoreboard errors until the user exits or input ends.
type menu struct {
	ctx   context.Context
	board *engine.Scoreboard
	in    *bufio.Scanner
	out   io.Writer
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	board, closeFn, err := openScoreboard(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	m := &menu{
		ctx:   commandContext(cmd),
		board: board,
		in:    bufio.NewScanner(cmd.InOrStdin()),
		out:   cmd.OutOrStdout(),
	}
	return m.run()
}

func (m *menu) run() error {
	fmt.Fprintln(m.out, "Welcome to the Live Football Scoreboard!")

	for {
		fmt.Fprintln(m.out, menuOptions)
		choice, err := m.prompt("Enter your choice:")
		if err != nil {
			return m.exit(err)
		}

		switch choice {
		case "1":
			err = m.startMatch()
		case "2":
			err = m.updateScore()
		case "3":
			err = m.finishMatch()
		case "4":
			err = m.showSummary()
		case "5":
			fmt.Fprintln(m.out, "Exiting the application...")
			return nil
		default:
			fmt.Fprintln(m.out, msgInvalidChoice)
		}

		if err != nil {
			return m.exit(err)
		}
	}
}

// exit ends the loop. End of input is a normal exit.
func (m *menu) exit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return WrapExitError(ExitCommandError, "failed to read input", err)
}

func (m *menu) startMatch() error {
	home, err := m.prompt("Enter home team:")
	if err != nil {
		return err
	}
	away, err := m.prompt("Enter away team:")
	if err != nil {
		return err
	}

	started, err := m.board.StartMatch(m.ctx, home, away)
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "Match started: %s vs %s\n", started.HomeTeam, started.AwayTeam)
	fmt.Fprintf(m.out, "Match ID: %s\n", started.ID)
	return nil
}

func (m *menu) updateScore() error {
	id, err := m.selectMatch()
	if err != nil {
		return m.report(err)
	}
	homeScore, err := m.promptScore("Enter home team score:")
	if err != nil {
		return m.report(err)
	}
	awayScore, err := m.promptScore("Enter away team score:")
	if err != nil {
		return m.report(err)
	}

	if err := m.board.UpdateScore(m.ctx, id, homeScore, awayScore); err != nil {
		return m.report(err)
	}
	updated, err := m.board.GetMatch(m.ctx, id)
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "Score updated: %s %d - %s %d\n",
		updated.HomeTeam, updated.HomeScore, updated.AwayTeam, updated.AwayScore)
	return nil
}

func (m *menu) finishMatch() error {
	id, err := m.selectMatch()
	if err != nil {
		return m.report(err)
	}

	if err := m.board.FinishMatch(m.ctx, id); err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "Match %s has been finished\n", id)
	return nil
}

func (m *menu) showSummary() error {
	lines, err := m.board.Summary(m.ctx)
	if err != nil {
		return m.report(err)
	}

	if len(lines) == 0 {
		fmt.Fprintln(m.out, "No live matches.")
		return nil
	}
	fmt.Fprintln(m.out, "Live match summary:")
	for _, line := range lines {
		fmt.Fprintln(m.out, line)
	}
	return nil
}

// selectMatch asks how to identify the match and returns its ID.
func (m *menu) selectMatch() (string, error) {
	fmt.Fprintln(m.out, targetOptions)
	choice, err := m.prompt("Enter your choice:")
	if err != nil {
		return "", err
	}

	switch choice {
	case "1":
		return m.prompt("Enter match ID:")
	case "2":
		home, err := m.prompt("Enter home team:")
		if err != nil {
			return "", err
		}
		away, err := m.prompt("Enter away team:")
		if err != nil {
			return "", err
		}
		found, err := m.board.GetMatchByTeams(m.ctx, home, away)
		if err != nil {
			return "", err
		}
		return found.ID, nil
	default:
		return "", errInvalidTarget
	}
}

// report prints a recoverable error and swallows it. End of input and read
// failures are passed through to stop the loop.
func (m *menu) report(err error) error {
	switch {
	case errors.Is(err, io.EOF), m.in.Err() != nil:
		return err
	case errors.Is(err, errInvalidTarget):
		fmt.Fprintln(m.out, msgInvalidTarget)
	case errors.Is(err, errInvalidScore):
		fmt.Fprintf(m.out, "Error: %s\n", msgInvalidScore)
	default:
		fmt.Fprintf(m.out, "Error: %s\n", err.Error())
	}
	return nil
}

// prompt prints label and reads one trimmed line. Returns io.EOF at end
// of input.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprintln(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) promptScore(label string) (int, error) {
	answer, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errInvalidScore
	}
	return score, nil
}
