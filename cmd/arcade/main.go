// arcade is a terminal arcade platform for small action games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade stats             - Show play statistics for all games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-kit/internal/games/bricks"
	_ "github.com/vovakirdan/arcade-kit/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-kit/internal/games/shooter"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Terminal arcade - small action games with game feel",
	Long: `Arcade is a terminal gaming platform for small action games with
particles, screen shake, and difficulty progression.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View play statistics

Examples:
  arcade list
  arcade play flappy
  arcade menu
  arcade serve --ssh :2222
  arcade scores bricks`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
