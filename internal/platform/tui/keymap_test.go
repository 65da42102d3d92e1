package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{"s", runeKey('s'), core.ActionSoftDrop, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"w", runeKey('w'), core.ActionRotate, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotate, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{runeKey('a'), runeKey('a'), runeKey('w'), runeKey('z')} {
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatalf("%q should not quit", msg.String())
		}
	}

	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionRotate}
	if len(frame.Actions) != len(want) {
		t.Fatalf("frame = %v, expected %v", frame.Actions, want)
	}
	for i := range want {
		if frame.Actions[i] != want[i] {
			t.Errorf("frame[%d] = %v, expected %v", i, frame.Actions[i], want[i])
		}
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be recorded in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenPlainRuns(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "<|  |>")
	s.DrawText(0, 1, "Score")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "<|")
	s.DrawTextColored(2, 0, "[]", core.ColorCyan)
	s.DrawText(4, 0, "|>")

	got := RenderScreen(s)
	for _, part := range []string{"<|", "[]", "|>"} {
		if !strings.Contains(got, part) {
			t.Errorf("RenderScreen() = %q, missing %q", got, part)
		}
	}
}
