package cli

import (
	"github.com/MahaboobV/live-football-scoreboard/internal/engine"
	"github.com/MahaboobV/live-football-scoreboard/internal/store"
)

// openScoreboard builds a Scoreboard over the configured store.
// The returned close function releases the SQLite handle, if any.
func openScoreboard(opts *RootOptions) (*engine.Scoreboard, func(), error) {
	logger := opts.Logger()

	var st store.Store
	closeFn := func() {}
	if opts.Database == "" {
		st = store.NewMemoryStore()
	} else {
		logger.Debug("opening database", "path", opts.Database)
		sqlite, err := store.OpenSQLite(opts.Database)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		st = sqlite
		closeFn = func() {
			if err := sqlite.Close(); err != nil {
				logger.Error("error closing database", "error", err)
			}
		}
	}

	boardOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithFinishedScoreUpdates(opts.AllowFinishedUpdates),
	}
	if opts.IDGenerator != nil {
		boardOpts = append(boardOpts, engine.WithIDGenerator(opts.IDGenerator))
	}
	if opts.Now != nil {
		boardOpts = append(boardOpts, engine.WithNow(opts.Now))
	}

	return engine.New(st, boardOpts...), closeFn, nil
}
