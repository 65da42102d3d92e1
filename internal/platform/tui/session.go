package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game -> name entry ->
// scoreboard -> menu. It is used by the menu command and by SSH sessions.
type SessionModel struct {
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	gameID    string
	title     string
	username  string
	sessionID string

	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that plays gameID. logger may be nil.
func NewSessionModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		gameID: gameID,
		title:  title,
		menu:   NewMenuModel(store, gameID, cfg),
	}
}

// WithUser tags the session with the SSH user and session ID for logging.
func (m SessionModel) WithUser(username, sessionID string) SessionModel {
	m.username = username
	m.sessionID = sessionID
	if m.logger != nil {
		m.logger = m.logger.With("user", username, "session", sessionID)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoiceNewGame:
		game, err := registry.Create(m.gameID)
		if err != nil {
			if m.logger != nil {
				m.logger.Error("cannot create game", "error", err)
			}
			m.quitting = true
			return m, tea.Quit
		}
		gm := NewGameModel(game, m.store, m.config).WithLogger(m.logger)
		// A fixed seed applies to the first game only.
		m.config.Seed = 0
		m.gameModel = &gm
		m.screen = screenGame
		return m, m.gameModel.Init()

	case MenuChoiceHighscores:
		m.showScores(0)
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasEntering := m.gameModel.EnteringName()

	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// A finished name entry that saved a row goes straight to the table.
	if wasEntering && !m.gameModel.EnteringName() && m.gameModel.SavedScoreID() != 0 {
		id := m.gameModel.SavedScoreID()
		m.gameModel = nil
		m.showScores(id)
		return m, nil
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.openMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is showing.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.openMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m *SessionModel) showScores(highlight int64) {
	sb := NewScoreboardModel(m.store, m.gameID, m.title, highlight, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
	m.screen = screenScores
}

func (m *SessionModel) openMenu() {
	m.menu = NewMenuModel(m.store, m.gameID, m.config)
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
// logger may be nil.
func RunSession(store *storage.Store, gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, gameID, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
