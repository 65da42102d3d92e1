package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// GameModel runs one game with restart, back-to-menu and high-score entry.
// It is embedded by the standalone Model and by SessionModel.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	entry        *NameEntryModel
	scoreChecked bool  // qualification already decided for this game over
	savedID      int64 // row ID of the last saved score, 0 if none

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store may be nil, in which case
// scores are never recorded.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithLogger returns a copy that reports score-saving failures to l.
func (m GameModel) WithLogger(l *log.Logger) GameModel {
	m.logger = l
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.entry != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateEntry(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.entry != nil {
		// Simulation is frozen while the player types a name.
		return m, tickCmd(m.config.TickRate)
	}

	restart := m.inputFrame.Has(core.ActionRestart) || m.inputFrame.Has(core.ActionConfirm)
	if restart && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreChecked = false
		m.savedID = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	var cmd tea.Cmd
	if m.gameState.GameOver && !m.scoreChecked {
		m.scoreChecked = true
		cmd = m.promptForName()
	}

	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// promptForName opens the name entry when the final score makes the table.
func (m *GameModel) promptForName() tea.Cmd {
	if m.store == nil || m.gameState.Score <= 0 {
		return nil
	}

	ok, err := m.store.Qualifies(m.game.ID(), m.gameState.Score)
	if err != nil {
		m.warn("cannot check high score", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	entry := NewNameEntryModel(m.gameState.Score, m.config.ScreenW, m.config.ScreenH)
	m.entry = &entry
	return entry.Init()
}

// updateEntry forwards input to the name prompt and saves on submit.
func (m GameModel) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = ws.Width
		m.config.ScreenH = ws.Height
		m.screen.Resize(ws.Width, ws.Height)
	}
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	entry, cmd := m.entry.Update(msg)
	m.entry = &entry

	switch {
	case entry.Submitted():
		id, err := m.store.SaveScore(m.game.ID(), entry.Name(), entry.Score())
		if err != nil {
			// Best-effort: the game continues whether or not the row landed.
			m.warn("cannot save score", "error", err)
		}
		m.savedID = id
		m.entry = nil
		return m, nil
	case entry.Skipped():
		m.entry = nil
		return m, nil
	}
	return m, cmd
}

func (m GameModel) warn(msg string, keyvals ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Warn(msg, append(keyvals, "game", m.game.ID())...)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("cannot save screenshot", "error", err)
	}
}

// View renders the game, or the name prompt after a qualifying game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.entry != nil {
		return m.entry.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedScoreID returns the row ID of the score recorded for the last
// game over, or 0 if nothing was saved.
func (m GameModel) SavedScoreID() int64 {
	return m.savedID
}

// EnteringName reports whether the high-score prompt is showing.
func (m GameModel) EnteringName() bool {
	return m.entry != nil
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Model runs a single game without the menu. Going back quits.
type Model struct {
	GameModel
}

// NewModel creates a standalone model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{GameModel: NewGameModel(game, store, cfg)}
}

// Update handles messages, quitting when the game asks for the menu.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.BackToMenu() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// Run starts the Bubble Tea program with the given game. logger may be
// nil; it must not write to the terminal the game is drawn on.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	m := NewModel(game, store, cfg)
	m.GameModel = m.GameModel.WithLogger(logger)

	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
