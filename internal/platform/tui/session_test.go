package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionPlaySaveAndShowScores(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, stubID, testConfig(), nil)

	if !strings.Contains(m.View(), "New Game") {
		t.Fatalf("menu should list New Game, got %q", m.View())
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("Enter on New Game should start the game, screen = %v", m.screen)
	}

	m, _ = sessionUpdate(t, m, TickMsg{})
	if !m.gameModel.EnteringName() {
		t.Fatal("stub game ends on the first tick with a qualifying score")
	}

	for _, r := range "ada" {
		m, _ = sessionUpdate(t, m, runeKey(r))
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenScores {
		t.Fatalf("saving a score should open the scoreboard, screen = %v", m.screen)
	}
	if m.scoreboard.highlight == 0 {
		t.Error("scoreboard should highlight the saved entry")
	}
	if view := m.View(); !strings.Contains(view, "ada") || !strings.Contains(view, "120") {
		t.Errorf("scoreboard should show the new entry, got %q", view)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("Esc on the scoreboard should return to the menu, screen = %v", m.screen)
	}
	if !strings.Contains(m.View(), "Best: 120") {
		t.Errorf("menu should show the best score, got %q", m.View())
	}
}

func TestSessionSkipNameReturnsToGameOver(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, stubID, testConfig(), nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenGame || m.gameModel.EnteringName() {
		t.Fatal("skipping the prompt should leave the game-over screen up")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("Esc after game over should return to the menu, screen = %v", m.screen)
	}
}

func TestSessionHighscoresFromMenu(t *testing.T) {
	m := NewSessionModel(openTestStore(t), stubID, testConfig(), nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenScores {
		t.Fatalf("View Highscores should open the scoreboard, screen = %v", m.screen)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty scoreboard message missing, got %q", m.View())
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, stubID, testConfig(), nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.quitting || cmd == nil {
		t.Error("Quit should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
