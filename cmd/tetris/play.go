package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Start playing immediately, without the menu.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/J     - Soft drop
  Up/W/K/Space - Rotate
  P            - Pause
  Enter/R      - Restart (after game over)
  Esc/B        - Leave (when paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower first level, speeds up with score
  normal - Standard speed curve
  hard   - Faster first level, speeds up with score
  fixed  - No progression, stays at the configured speed

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Surface config errors before the alt screen takes over.
	if _, err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := withGameLog(func(gameLog *log.Logger) error {
		return tui.Run(game, store, runtimeConfig(), gameLog)
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
