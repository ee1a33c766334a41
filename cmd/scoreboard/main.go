// Command scoreboard is the live football scoreboard CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MahaboobV/live-football-scoreboard/internal/cli"
	"github.com/MahaboobV/live-football-scoreboard/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps cobra's own argument and flag errors, which are not
// ExitErrors, to the command error code.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return cli.ExitCommandError
}
