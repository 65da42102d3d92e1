// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris game.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for a game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scores     ScoresConfig     `yaml:"scores"`
}

// BoardConfig sets the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the gravity curve.
type SpeedConfig struct {
	InitialFallMS int `yaml:"initial_fall_ms"` // Fall interval at level 1
	LevelAtScore  int `yaml:"level_at_score"`  // Points per level
	LevelScale    int `yaml:"level_scale"`     // Levels until gravity is twice as fast
}

// DifficultyConfig controls speed progression.
type DifficultyConfig struct {
	Enabled bool             `yaml:"enabled"` // false keeps the initial fall interval forever
	Preset  DifficultyPreset `yaml:"preset"`
}

// ScoresConfig controls the high-score table.
type ScoresConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialFallForPreset returns the level-1 fall interval of a preset,
// or 0 when the preset does not change it.
func InitialFallForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 900
	case DifficultyNormal:
		return 750
	case DifficultyHard:
		return 500
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// MinBoardWidth fits every piece at its spawn column.
const MinBoardWidth = 7

// Validate reports the first setting that would make the game unplayable.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < MinBoardWidth {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", MinBoardWidth, c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height must be at least 4, got %d", c.Board.Height))
	}
	if c.Speed.InitialFallMS <= 0 || c.Speed.InitialFallMS > 65535 {
		errs = append(errs, fmt.Errorf("speed.initial_fall_ms must be in 1..65535, got %d", c.Speed.InitialFallMS))
	}
	if c.Speed.LevelAtScore <= 0 {
		errs = append(errs, fmt.Errorf("speed.level_at_score must be positive, got %d", c.Speed.LevelAtScore))
	}
	if c.Speed.LevelScale <= 0 {
		errs = append(errs, fmt.Errorf("speed.level_scale must be positive, got %d", c.Speed.LevelScale))
	}
	if c.Scores.MaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("scores.max_entries must be positive, got %d", c.Scores.MaxEntries))
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
