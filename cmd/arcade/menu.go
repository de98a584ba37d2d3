package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-kit/internal/core"
	"github.com/vovakirdan/arcade-kit/internal/platform/tui"
	"github.com/vovakirdan/arcade-kit/internal/registry"
	"github.com/vovakirdan/arcade-kit/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		setGameOptions(gameID)

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
