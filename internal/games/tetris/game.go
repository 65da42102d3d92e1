// Package tetris adapts the falling-block engine to the platform's
// fixed-tick Game interface: it turns ticks into gravity, actions into
// engine calls and state into screen cells.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "tetris"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of engine.State.
type Game struct {
	cfg        config.TetrisConfig
	configured bool

	runtime core.RuntimeConfig
	state   *engine.State
	tick    uint64

	// gravityMS is the simulated time since the last gravity step.
	gravityMS int
	paused    bool
}

// New creates a game that loads its configuration on the first Reset,
// honoring SetConfigPath and SetDifficultyPreset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, configured: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.TetrisConfig {
	g.ensureConfig()
	return g.cfg
}

func (g *Game) ensureConfig() {
	if g.configured {
		return
	}
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyConfiguredPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.configured = true
}

// engineConfig converts the YAML configuration into engine parameters.
func engineConfig(cfg config.TetrisConfig) engine.Config {
	return engine.Config{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Speed: engine.Speed{
			InitialFallMS: cfg.Speed.InitialFallMS,
			LevelAtScore:  cfg.Speed.LevelAtScore,
			LevelScale:    cfg.Speed.LevelScale,
			Fixed:         !cfg.Difficulty.Enabled,
		},
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ensureConfig()
	g.runtime = cfg
	g.state = engine.New(engineConfig(g.cfg), rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.gravityMS = 0
	g.paused = false
}

// Step advances the game by one tick. Actions are applied in arrival
// order, then gravity runs if a full fall interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.state.Over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	result := core.StepResult{}
	record := func(d engine.DropResult) {
		if d.Locked {
			result.Locked = true
			result.Cleared += d.Cleared
		}
	}

	for _, a := range in.Actions {
		if g.state.Over {
			break
		}
		switch a {
		case core.ActionLeft:
			g.state.MoveLeft()
		case core.ActionRight:
			g.state.MoveRight()
		case core.ActionRotate:
			g.state.Rotate()
		case core.ActionSoftDrop:
			record(g.state.SoftDrop())
		}
	}

	if !g.state.Over {
		g.gravityMS += g.runtime.TickMillis()
		elapsed := g.gravityMS >= int(g.state.FallInterval)
		if elapsed {
			g.gravityMS = 0
		}
		record(g.state.OnGravityTick(elapsed))
	}

	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.state.CurrentScore()),
		Level:    int(g.state.Level),
		GameOver: g.state.Over,
		Paused:   g.paused,
	}
}
