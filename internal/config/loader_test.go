package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 12
  height: 22
speed:
  initial_fall_ms: 600
`)

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 22 {
		t.Errorf("board = %dx%d, expected 12x22", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Speed.InitialFallMS != 600 {
		t.Errorf("initial_fall_ms = %d, expected 600", cfg.Speed.InitialFallMS)
	}
	// Keys not in the file keep their defaults.
	if cfg.Speed.LevelAtScore != 150 || cfg.Speed.LevelScale != 5 {
		t.Errorf("speed defaults lost: %+v", cfg.Speed)
	}
	if cfg.Scores.MaxEntries != 10 {
		t.Errorf("max_entries = %d, expected 10", cfg.Scores.MaxEntries)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadTetrisRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed", "board: [", "failed to parse"},
		{"narrow board", "board:\n  width: 3\n", "board.width"},
		{"board narrower than spawn", "board:\n  width: 6\n", "board.width"},
		{"zero speed", "speed:\n  initial_fall_ms: 0\n", "initial_fall_ms"},
		{"bad preset", "difficulty:\n  preset: insane\n", "unknown difficulty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTetris(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadTetrisFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded config %+v differs from DefaultTetrisConfig %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadTetrisUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".tetris", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tetris.yaml"), []byte("board:\n  height: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}
	if cfg.Board.Height != 24 {
		t.Errorf("height = %d, expected user override 24", cfg.Board.Height)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		fallMS  int
		enabled bool
	}{
		{DifficultyEasy, 900, true},
		{DifficultyNormal, 750, true},
		{DifficultyHard, 500, true},
		{DifficultyFixed, 750, false},
		{"", 750, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)

			if cfg.Speed.InitialFallMS != tt.fallMS {
				t.Errorf("initial_fall_ms = %d, expected %d", cfg.Speed.InitialFallMS, tt.fallMS)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}
}

func TestApplyConfiguredPreset(t *testing.T) {
	path := writeConfig(t, "speed:\n  initial_fall_ms: 600\ndifficulty:\n  preset: hard\n")
	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}

	fromFile := cfg
	ApplyConfiguredPreset(&fromFile, "")
	if fromFile.Speed.InitialFallMS != 500 {
		t.Errorf("file preset: initial_fall_ms = %d, expected 500", fromFile.Speed.InitialFallMS)
	}

	fromFlag := cfg
	ApplyConfiguredPreset(&fromFlag, DifficultyEasy)
	if fromFlag.Speed.InitialFallMS != 900 || fromFlag.Difficulty.Preset != DifficultyEasy {
		t.Errorf("flag preset: got %d/%q, expected 900/easy", fromFlag.Speed.InitialFallMS, fromFlag.Difficulty.Preset)
	}
}

func TestNoPresetKeepsFileSpeed(t *testing.T) {
	cfg, err := LoadTetris(writeConfig(t, "speed:\n  initial_fall_ms: 600\n"))
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}
	ApplyConfiguredPreset(&cfg, "")
	if cfg.Speed.InitialFallMS != 600 {
		t.Errorf("initial_fall_ms = %d, expected 600", cfg.Speed.InitialFallMS)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("tetris")) == 0 {
		t.Error("embedded tetris defaults are empty")
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no defaults")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := LoadTetris(writeConfig(t, string(out)))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if back != cfg {
		t.Errorf("reloaded %+v, expected %+v", back, cfg)
	}
}
