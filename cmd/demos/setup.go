package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/games/catch"
	"github.com/vovakirdan/arcade-demos/internal/games/click"
	"github.com/vovakirdan/arcade-demos/internal/games/maze"
	"github.com/vovakirdan/arcade-demos/internal/games/runjump"
	"github.com/vovakirdan/arcade-demos/internal/games/shooter"
	"github.com/vovakirdan/arcade-demos/internal/platform/tui"
)

// newLogger builds the diagnostics logger. The terminal is owned by the
// TUI, so without --log-file everything is discarded.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, f, nil
}

// runtimeConfig returns the shared runtime config sized to the terminal.
func runtimeConfig(logger *log.Logger) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}
}

// configureGame applies --config and --difficulty to a demo before it is
// created. With interactive set, demos that offer a choice (maze level,
// difficulty preset) show a picker when no flag decided it.
// Returns false if the user backed out of a picker.
func configureGame(gameID string, cfg core.RuntimeConfig, interactive bool) (bool, error) {
	switch gameID {
	case config.ShooterID:
		shooter.SetConfigPath(flagConfig)
		return pickDifficulty("S H O O T E R", shooter.SetDifficultyPreset, cfg, interactive)
	case config.CatchID:
		catch.SetConfigPath(flagConfig)
		return pickDifficulty("C A T C H", catch.SetDifficultyPreset, cfg, interactive)
	case config.ClickID:
		click.SetConfigPath(flagConfig)
	case config.RunJumpID:
		runjump.SetConfigPath(flagConfig)
	case config.MazeID:
		maze.SetConfigPath(flagConfig)
		if flagLevel > 0 {
			if flagLevel > maze.LevelCount() {
				return false, fmt.Errorf("level %d out of range (1-%d)", flagLevel, maze.LevelCount())
			}
			maze.SetStartLevel(flagLevel)
			return true, nil
		}
		if interactive {
			return tui.RunMazeLevelSelector(cfg)
		}
	}
	return true, nil
}

func pickDifficulty(title string, set func(string), cfg core.RuntimeConfig, interactive bool) (bool, error) {
	if flagDifficulty != "" || !interactive {
		set(flagDifficulty)
		return true, nil
	}
	preset, err := tui.RunDifficultySelector(title, cfg)
	if err != nil || preset == "" {
		return false, err
	}
	set(string(preset))
	return true, nil
}

// newWatcher watches the config files of gameID when --watch is set.
// Locations whose directory does not exist are skipped.
func newWatcher(gameID string, logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}

	var files []string
	for _, path := range config.SearchPaths(gameID, flagConfig) {
		if _, err := os.Stat(filepath.Dir(path)); err == nil {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		logger.Warn("no config directory to watch", "game", gameID)
		return nil
	}

	w, err := config.NewWatcher(files...)
	if err != nil {
		logger.Warn("config watch disabled", "error", err)
		return nil
	}
	logger.Info("watching config", "files", files)

	go func() {
		for err := range w.Errors {
			logger.Warn("config watcher", "error", err)
		}
	}()
	return w
}
