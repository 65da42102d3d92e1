package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high-score table.

Subcommands move scores in and out of the plain text format
"name:score;name:score;" and clear the table.

Examples:
  tetris scores
  tetris scores --interactive
  tetris scores import ./highscores.txt
  tetris scores export ./highscores.txt
  tetris scores clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import scores from a name:score; file",
	Args:  cobra.ExactArgs(1),
	Run:   runScoresImport,
}

var scoresExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export scores to a name:score; file (- for stdout)",
	Args:  cobra.ExactArgs(1),
	Run:   runScoresExport,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded scores",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the table in the terminal UI")

	scoresCmd.AddCommand(scoresImportCmd)
	scoresCmd.AddCommand(scoresExportCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

// mustOpenStore opens the score database or exits.
func mustOpenStore() *storage.Store {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, tetris.GameID, "Tetris", cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(tetris.GameID, store.MaxEntries())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "Rank", storage.MaxNameLength, "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "----", storage.MaxNameLength, "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-10d  %s\n", i+1, storage.MaxNameLength, entry.Name, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(tetris.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.0f\n", stats.HighScore, stats.AvgScore)
	}
}

func runScoresImport(_ *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	store := mustOpenStore()
	defer store.Close()

	n, err := store.ImportLegacy(tetris.GameID, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d scores from %s\n", n, args[0])
}

func runScoresExport(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if args[0] == "-" {
		if err := store.ExportLegacy(tetris.GameID, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	exportErr := store.ExportLegacy(tetris.GameID, f)
	closeErr := f.Close()
	if exportErr != nil || closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error exporting scores: %v\n", errors.Join(exportErr, closeErr))
		os.Exit(1)
	}
	fmt.Printf("Exported scores to %s\n", args[0])
}

func runScoresClear(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.ClearScores(tetris.GameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Scores cleared.")
}
