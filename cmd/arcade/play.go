package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-kit/internal/core"
	"github.com/vovakirdan/arcade-kit/internal/games/bricks"
	"github.com/vovakirdan/arcade-kit/internal/games/flappy"
	"github.com/vovakirdan/arcade-kit/internal/games/shooter"
	"github.com/vovakirdan/arcade-kit/internal/lifecycle"
	"github.com/vovakirdan/arcade-kit/internal/platform/tui"
	"github.com/vovakirdan/arcade-kit/internal/registry"
	"github.com/vovakirdan/arcade-kit/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogEvents  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space        - Jump / Launch / Fire
  A/D, Arrows  - Move
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play flappy
  arcade play bricks --difficulty easy
  arcade play shooter --difficulty hard
  arcade play flappy --config ./my-flappy.yaml
  arcade play flappy --log-events ./events.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogEvents, "log-events", "", "Append lifecycle events to this file")
}

// setGameOptions forwards the CLI config/difficulty flags to the game package
// before the registry instantiates it.
func setGameOptions(gameID string) {
	switch gameID {
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	case "bricks":
		bricks.SetConfigPath(flagConfig)
		bricks.SetDifficultyPreset(flagDifficulty)
	case "shooter":
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
	}
}

// eventLogger returns a lifecycle event sink writing to the --log-events
// file, or nil when the flag is unset. The terminal itself is owned by the
// TUI, so events never go to stdout during play.
func eventLogger() (func(lifecycle.Event), func(), error) {
	if flagLogEvents == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(flagLogEvents, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open event log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})

	sink := func(e lifecycle.Event) {
		switch e.Kind {
		case lifecycle.EventGameOver:
			logger.Info(string(e.Kind), "score", e.Result.Score, "best", e.Result.HighScore, "level", e.Result.Level)
		case lifecycle.EventScoreUpdate:
			logger.Debug(string(e.Kind), "score", e.Score)
		default:
			logger.Info(string(e.Kind))
		}
	}
	return sink, func() { f.Close() }, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	setGameOptions(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	events, closeEvents, err := eventLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeEvents()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, events)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
