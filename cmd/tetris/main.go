// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play immediately
//	tetris menu              - Main menu with highscores
//	tetris scores            - Show, import, export or clear high scores
//	tetris config            - Print the effective configuration
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
//
// TETRIS_FPS, TETRIS_SEED and TETRIS_DB, read from the environment or a
// .env file, replace the defaults of the matching flags.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tetris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Available commands:
  play     - Start a game right away
  menu     - Main menu: new game, highscores, quit
  scores   - View and manage high scores
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --difficulty hard
  tetris menu
  tetris scores export scores.txt
  tetris serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv loads .env and lets TETRIS_* variables replace flag defaults.
// Flags given on the command line still win.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("cannot read .env", "error", err)
	}

	flags := cmd.Flags()
	if v, ok := os.LookupEnv("TETRIS_DB"); ok && !flags.Changed("db") {
		flagDBPath = v
	}
	if v, ok := os.LookupEnv("TETRIS_SEED"); ok && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TETRIS_SEED %q: %w", v, err)
		}
		flagSeed = seed
	}
	if v, ok := os.LookupEnv("TETRIS_FPS"); ok && !flags.Changed("fps") {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TETRIS_FPS %q: %w", v, err)
		}
		flagFPS = fps
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig returns the tetris config the game will run with.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyConfiguredPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the score database sized from the tetris config.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	if cfg, cfgErr := loadConfig(); cfgErr == nil {
		store.SetMaxEntries(cfg.Scores.MaxEntries)
	}
	return store, nil
}

// fileLogger returns a logger writing to ~/.tetris/tetris.log, since the
// terminal belongs to the game while it runs. On failure it returns nil.
// withGameLog runs fn with the file logger and closes the log file before
// returning, so callers may os.Exit on the result.
func withGameLog(fn func(*log.Logger) error) error {
	gameLog, closeLog := fileLogger()
	defer closeLog()
	return fn(gameLog)
}

func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, func() {}
	}
	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create log directory", "error", err)
		return nil, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("cannot open log file", "error", err)
		return nil, func() {}
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	}), func() { f.Close() }
}
