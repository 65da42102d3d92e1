package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10×20 board
// with the classic 750 ms / 150 points / 5 levels speed curve.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			InitialFallMS: 750,
			LevelAtScore:  150,
			LevelScale:    5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  "",
		},
		Scores: ScoresConfig{
			MaxEntries: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
