package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2 // each board cell is drawn as "[]"

	boardX = 5 // screen column of the first board cell
	boardY = 2 // screen row of the first board row

	hudGap   = 3  // columns between the right wall and the HUD
	hudWidth = 16 // widest HUD line
)

// layout returns where the HUD starts and the minimum screen size.
func (g *Game) layout() (hudX, minW, minH int) {
	b := g.state.Board
	hudX = boardX + b.Width*cellWidth + hudGap
	minW = hudX + hudWidth
	minH = boardY + b.Height + 1
	return hudX, minW, minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hudX, minW, minH := g.layout()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	g.renderFrame(dst)
	for _, c := range g.state.Board.Cells() {
		drawCell(dst, c)
	}
	for _, c := range g.state.Active.Cells() {
		drawCell(dst, c)
	}
	g.renderHUD(dst, hudX)
	g.renderOverlays(dst, hudX)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderFrame draws the walls, the top edge and the floor.
func (g *Game) renderFrame(dst *core.Screen) {
	b := g.state.Board
	rightX := boardX + b.Width*cellWidth

	for y := 0; y < b.Height; y++ {
		dst.DrawTextColored(boardX-2, boardY+y, "<|", core.ColorGray)
		dst.DrawTextColored(rightX, boardY+y, "|>", core.ColorGray)
	}
	dst.DrawHLine(boardX, boardY-1, b.Width*cellWidth, '_', core.ColorGray)
	dst.DrawHLine(boardX, boardY+b.Height, b.Width*cellWidth, '‾', core.ColorGray)
}

// drawCell draws one board cell; cells above the board are invisible.
func drawCell(dst *core.Screen, c engine.Point) {
	if c.Y < 0 {
		return
	}
	dst.DrawTextColored(boardX+c.X*cellWidth, boardY+c.Y, "[]", c.Color)
}

// renderHUD draws score, level, lines and the next piece.
func (g *Game) renderHUD(dst *core.Screen, x int) {
	s := g.state
	dst.DrawText(x, boardY, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawText(x, boardY+1, fmt.Sprintf("Level: %d", s.Level))
	dst.DrawText(x, boardY+2, fmt.Sprintf("Lines: %d", s.Lines))

	dst.DrawText(x, boardY+4, "Next:")
	drawPreview(dst, x, boardY+5, s.NextKind())
}

// drawPreview draws a template in its spawn orientation with its top-left
// cell at (x, y).
func drawPreview(dst *core.Screen, x, y int, k engine.Kind) {
	t := engine.TemplateFor(k)
	minX, minY := t.Cells[0].X, t.Cells[0].Y
	for _, c := range t.Cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	for _, c := range t.Cells {
		dst.DrawTextColored(x+(c.X-minX)*cellWidth, y+c.Y-minY, "[]", t.Color)
	}
}

// renderOverlays draws pause and game-over messages beside the board.
func (g *Game) renderOverlays(dst *core.Screen, x int) {
	y := boardY + 10
	switch {
	case g.state.Over:
		dst.DrawText(x, y, "Game over")
		dst.DrawText(x, y+1, "Enter to try again,")
		dst.DrawText(x, y+2, "Esc for menu")
	case g.paused:
		dst.DrawText(x, y, "Paused")
		dst.DrawText(x, y+1, "P to resume")
	default:
		dst.DrawText(x, y, "←→ move  ↑ turn")
		dst.DrawText(x, y+1, "↓ drop   P pause")
	}
}
