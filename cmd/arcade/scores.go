package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-kit/internal/registry"
	"github.com/vovakirdan/arcade-kit/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  arcade scores flappy
  arcade scores bricks
  arcade scores shooter --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		level := "-"
		if entry.Level > 0 {
			level = fmt.Sprintf("%d", entry.Level)
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, level, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics for all games",
	Long: `Display aggregate statistics (games played, best, average) per game.

Examples:
  arcade stats
  arcade stats --db ./scores.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-7s  %-8s  %-8s  %s\n", "Game", "Played", "Best", "Avg", "Last played")
	fmt.Printf("  %-10s  %-7s  %-8s  %-8s  %s\n", "----", "------", "----", "---", "-----------")
	for _, id := range ids {
		s := stats[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-10s  %-7d  %-8d  %-8.1f  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore, last)
	}
}
