// Package registry maps game identifiers to factories. The tetris adapter
// registers itself from init(), so the CLI, the menu and the SSH sessions
// create games by ID without importing the game package directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations hold pure simulation
// state; timing, key mapping and terminal output belong to the platform.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score table.
	ID() string

	// Title is shown in menus and headers.
	Title() string

	// Reset starts a fresh game. Called before the first Step and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick using this tick's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that the caller has already cleared.
	Render(dst *core.Screen)

	// State reports score, level and terminal flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, un-reset game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
