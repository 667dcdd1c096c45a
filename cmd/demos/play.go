package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-demos/internal/platform/tui"
	"github.com/vovakirdan/arcade-demos/internal/registry"
	"github.com/vovakirdan/arcade-demos/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo",
	Long: `Start playing the specified demo.

Controls:
  Arrows/WASD - Move
  Space       - Fire / jump
  Mouse       - Click balls (click demo, needs a terminal of 80x24 or more)
  Enter       - Start from a title screen
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options (shooter, catch):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  demos play shooter
  demos play catch --difficulty hard
  demos play click --seed 7
  demos play maze --level 2
  demos play runjump --config ./my-runjump.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Maze start level (1-based, 0 = show picker)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the demo when its config file changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if demo exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'demos list' to see available demos.")
		os.Exit(1)
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg := runtimeConfig(logger)

	ok, err := configureGame(gameID, cfg, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - demo still works
		store = nil
	}

	watcher := newWatcher(gameID, logger)

	logger.Info("starting demo", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	_, runErr := tui.Run(game, store, cfg, watcher)

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}
