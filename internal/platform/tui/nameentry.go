package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// NameEntryModel asks for a player name after a qualifying game.
type NameEntryModel struct {
	input     textinput.Model
	score     int
	width     int
	height    int
	submitted bool
	skipped   bool
	err       error
}

// NewNameEntryModel creates a focused name prompt for score.
func NewNameEntryModel(score, width, height int) NameEntryModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = storage.MaxNameLength
	ti.Width = storage.MaxNameLength + 1
	ti.Prompt = "> "
	ti.Focus()

	return NameEntryModel{
		input:  ti,
		score:  score,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m NameEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles typing, Enter to submit and Esc to skip.
func (m NameEntryModel) Update(msg tea.Msg) (NameEntryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if _, err := storage.NormalizeName(m.input.Value()); err != nil {
				m.err = err
				return m, nil
			}
			m.submitted = true
			return m, nil
		case tea.KeyEsc:
			m.skipped = true
			return m, nil
		}
		m.err = nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt centered on the screen.
func (m NameEntryModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW HIGH SCORE"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %d", m.score)
	b.WriteString("\n\n")
	b.WriteString("Enter your name:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errStyle.Render("A name is required"))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("Enter: save  |  Esc: skip"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Name returns the normalized name, or "" if it is not valid.
func (m NameEntryModel) Name() string {
	name, err := storage.NormalizeName(m.input.Value())
	if err != nil {
		return ""
	}
	return name
}

// Score returns the score being recorded.
func (m NameEntryModel) Score() int {
	return m.score
}

// Submitted reports whether the player confirmed a valid name.
func (m NameEntryModel) Submitted() bool {
	return m.submitted
}

// Skipped reports whether the player declined to record the score.
func (m NameEntryModel) Skipped() bool {
	return m.skipped
}
