package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board holds the locked cells. Cells are kept in lock order; index maps
// a packed position to the cell's slice index.
type Board struct {
	Width, Height int

	occupied []Point
	index    *intmap.Map[int, int]
}

// NewBoard creates an empty width×height board.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:    width,
		Height:   height,
		occupied: make([]Point, 0, width*height),
		index:    intmap.New[int, int](width * height),
	}
}

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.occupied = b.occupied[:0]
	b.index.Clear()
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return len(b.occupied)
}

// Cells returns a copy of the locked cells in lock order.
func (b *Board) Cells() []Point {
	out := make([]Point, len(b.occupied))
	copy(out, b.occupied)
	return out
}

// At returns the locked cell at (x, y), if any.
func (b *Board) At(x, y int) (Point, bool) {
	i, ok := b.index.Get(Pt(x, y).key())
	if !ok {
		return Point{}, false
	}
	return b.occupied[i], true
}

// IsBlocked reports whether cells moved by (dx, dy) would hit the floor,
// a side wall or a locked cell. There is no ceiling: negative y is free.
//
// Walls are x == -1 and x == Width. Anything beyond them also counts as
// blocked, since a two-column kick could otherwise step over a wall.
func (b *Board) IsBlocked(cells [4]Point, dx, dy int) bool {
	for _, c := range cells {
		x, y := c.X+dx, c.Y+dy
		if y >= b.Height {
			return true
		}
		if x >= b.Width || x <= -1 {
			return true
		}
		if b.index.Has(Pt(x, y).key()) {
			return true
		}
	}
	return false
}

// Lock copies the piece cells into the board. It returns false without
// touching the board when part of the piece is still above row 0.
func (b *Board) Lock(p Piece) bool {
	if !p.CanLock() {
		return false
	}
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.Width || c.Y >= b.Height {
			panic(fmt.Sprintf("tetris: invariant violated: locking cell (%d, %d) outside %dx%d board", c.X, c.Y, b.Width, b.Height))
		}
		if b.index.Has(c.key()) {
			panic(fmt.Sprintf("tetris: invariant violated: cell (%d, %d) locked twice", c.X, c.Y))
		}
		b.index.Put(c.key(), len(b.occupied))
		b.occupied = append(b.occupied, c)
	}
	return true
}

// ClearFullRows removes every complete row, drops the rows above them
// and returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	counts := b.rowCounts()

	// shift[row] is how far a surviving row moves down.
	shift := make([]int, b.Height)
	cleared := 0
	for row := b.Height - 1; row >= 0; row-- {
		if counts[row] == b.Width {
			cleared++
		} else {
			shift[row] = cleared
		}
	}
	if cleared == 0 {
		return 0
	}

	kept := b.occupied[:0]
	for _, c := range b.occupied {
		if counts[c.Y] == b.Width {
			continue
		}
		c.Y += shift[c.Y]
		kept = append(kept, c)
	}
	b.occupied = kept
	b.reindex()
	return cleared
}

func (b *Board) rowCounts() []int {
	counts := make([]int, b.Height)
	for _, c := range b.occupied {
		if c.Y < 0 || c.Y >= b.Height {
			panic(fmt.Sprintf("tetris: invariant violated: locked cell (%d, %d) outside rows [0, %d)", c.X, c.Y, b.Height))
		}
		counts[c.Y]++
	}
	return counts
}

func (b *Board) reindex() {
	b.index.Clear()
	for i, c := range b.occupied {
		b.index.Put(c.key(), i)
	}
}
