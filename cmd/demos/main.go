// demos is a terminal front end for a set of small 2D kinematic demos.
//
// Usage:
//
//	demos list              - List available demos
//	demos play <demo>       - Play a demo
//	demos menu              - Start menu to pick demos interactively
//	demos serve             - Start SSH server for remote play
//	demos scores <demo>     - Show high scores for a demo
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade-demos/scores.db)
//	--log-file <path>   - Write diagnostics to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/arcade-demos/internal/games/catch"
	_ "github.com/vovakirdan/arcade-demos/internal/games/click"
	_ "github.com/vovakirdan/arcade-demos/internal/games/maze"
	_ "github.com/vovakirdan/arcade-demos/internal/games/runjump"
	_ "github.com/vovakirdan/arcade-demos/internal/games/shooter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "demos",
	Short: "Arcade Demos - small 2D physics demos in your terminal",
	Long: `Arcade Demos runs a handful of small 2D demos built on one shared
fixed-step kinematic core: a shooter, a click-the-balls game, a catcher,
a run-and-jump platformer and a grid maze.

Available commands:
  list     - Show all available demos
  play     - Play a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  demos list
  demos play shooter
  demos play click --seed 42
  demos menu
  demos serve --ssh :2222
  demos scores maze --csv`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade-demos/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
