// Package engine is the falling-block simulation: piece geometry,
// collision, rotation with kicks, locking, row clearing and speed
// progression. It performs no I/O and never blocks; callers drive it one
// event at a time.
package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Point is a grid coordinate. Y grows downward and may be negative for
// cells of the active piece that are still above the board.
type Point struct {
	X, Y  int
	Color core.Color
}

// Pt returns an uncolored point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p moved by q, keeping p's color.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Color: p.Color}
}

// Sub returns p moved by -q, keeping p's color.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Color: p.Color}
}

// SamePos reports whether p and q share a position, ignoring color.
func (p Point) SamePos(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// keyStride separates rows in packed position keys. Boards are far
// narrower than this, and x is only ever looked up in [-1, width].
const keyStride = 1 << 16

func (p Point) key() int {
	return p.Y*keyStride + p.X
}

// rotate90 turns p a quarter turn about the origin.
// Clockwise maps (x, y) to (y, -x); counter-clockwise maps it to (-y, x).
func rotate90(p Point, clockwise bool) Point {
	if clockwise {
		return Point{X: p.Y, Y: -p.X, Color: p.Color}
	}
	return Point{X: -p.Y, Y: p.X, Color: p.Color}
}
