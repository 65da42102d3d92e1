package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the search
path and any --difficulty preset are applied.

Copy the output to ~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml
to customize it.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --default > configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the embedded defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		fmt.Print(string(config.GetDefaultYAML(tetris.GameID)))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
