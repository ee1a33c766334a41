package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MahaboobV/live-football-scoreboard/internal/config"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(testConfig)
	require.NotNil(t, cmd)
	assert.Equal(t, "scoreboard", cmd.Use)
	assert.Contains(t, cmd.Long, "interactive menu")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(testConfig)
	commands := []string{"start", "score", "finish", "show", "summary", "play"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(testConfig)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)

	allowFlag := cmd.PersistentFlags().Lookup("allow-finished-updates")
	require.NotNil(t, allowFlag)
	assert.Equal(t, "false", allowFlag.DefValue)
}

func TestGlobalFlags_DefaultsFromConfig(t *testing.T) {
	cmd := NewRootCommand(config.Config{
		Database:             "/var/lib/scoreboard.db",
		LogLevel:             "info",
		Format:               config.FormatJSON,
		AllowFinishedUpdates: true,
	})

	assert.Equal(t, "json", cmd.PersistentFlags().Lookup("format").DefValue)
	assert.Equal(t, "/var/lib/scoreboard.db", cmd.PersistentFlags().Lookup("db").DefValue)
	assert.Equal(t, "true", cmd.PersistentFlags().Lookup("allow-finished-updates").DefValue)
}

func TestShowCommandFlags(t *testing.T) {
	cmd := NewRootCommand(testConfig)
	showCmd, _, err := cmd.Find([]string{"show"})
	require.NoError(t, err)

	assert.NotNil(t, showCmd.Flags().Lookup("home"))
	assert.NotNil(t, showCmd.Flags().Lookup("away"))
}

func TestPlayCommandFlags(t *testing.T) {
	cmd := NewRootCommand(testConfig)
	playCmd, _, err := cmd.Find([]string{"play"})
	require.NoError(t, err)

	sqliteFlag := playCmd.Flags().Lookup("sqlite")
	require.NotNil(t, sqliteFlag)
	assert.Equal(t, "false", sqliteFlag.DefValue)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := runRoot(t, testOptions(), "--format", "xml", "summary")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := runRoot(t, testOptions(), "kickoff")
	assert.Error(t, err)
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	_, stderr, err := runRootWithInput(t, testOptions(), "", "--verbose", "start", "Mexico", "Canada")
	require.NoError(t, err)

	assert.Contains(t, stderr, "level=INFO")
	assert.Contains(t, stderr, "match started")
}

func TestRootCommand_QuietByDefault(t *testing.T) {
	_, stderr, err := runRootWithInput(t, testOptions(), "", "start", "Mexico", "Canada")
	require.NoError(t, err)

	assert.Empty(t, stderr)
}
