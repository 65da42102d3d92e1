package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindL
	KindJ
	KindT
	KindO
	KindS
	KindZ

	kindCount = 7
)

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

var kindNames = [kindCount]string{"I", "L", "J", "T", "O", "S", "Z"}

// Template is the immutable description of a shape.
type Template struct {
	Kind  Kind
	Spawn Point // anchor of a freshly spawned piece
	Pivot Point
	Cells [4]Point // offsets, relative to Pivot once anchored

	// AllowedFlips is the number of rotations before the cycle resets:
	// 0 never rotates, 1 toggles between two states, 3 cycles four.
	AllowedFlips    uint8
	RotateClockwise bool
	Color           core.Color
}

var catalog = [kindCount]Template{
	KindI: {
		Kind:            KindI,
		Spawn:           Pt(4, -3),
		Pivot:           Pt(0, 1),
		Cells:           [4]Point{Pt(0, 0), Pt(0, 1), Pt(0, 2), Pt(0, 3)},
		AllowedFlips:    1,
		RotateClockwise: true,
		Color:           core.ColorBlue,
	},
	KindL: {
		Kind:            KindL,
		Spawn:           Pt(4, -2),
		Pivot:           Pt(0, 1),
		Cells:           [4]Point{Pt(0, 0), Pt(0, 1), Pt(0, 2), Pt(1, 2)},
		AllowedFlips:    3,
		RotateClockwise: true,
		Color:           core.ColorRed,
	},
	KindJ: {
		Kind:            KindJ,
		Spawn:           Pt(4, -2),
		Pivot:           Pt(0, 1),
		Cells:           [4]Point{Pt(0, 0), Pt(0, 1), Pt(0, 2), Pt(-1, 2)},
		AllowedFlips:    3,
		RotateClockwise: true,
		Color:           core.ColorGreen,
	},
	KindT: {
		Kind:            KindT,
		Spawn:           Pt(4, -2),
		Pivot:           Pt(1, 0),
		Cells:           [4]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(2, 0)},
		AllowedFlips:    3,
		RotateClockwise: true,
		Color:           core.ColorYellow,
	},
	KindO: {
		Kind:            KindO,
		Spawn:           Pt(4, -2),
		Pivot:           Pt(0, 0),
		Cells:           [4]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1)},
		AllowedFlips:    0,
		RotateClockwise: true,
		Color:           core.ColorMagenta,
	},
	KindS: {
		Kind:            KindS,
		Spawn:           Pt(4, -2),
		Pivot:           Pt(1, 1),
		Cells:           [4]Point{Pt(0, 1), Pt(1, 1), Pt(1, 0), Pt(2, 0)},
		AllowedFlips:    1,
		RotateClockwise: false,
		Color:           core.ColorCyan,
	},
	KindZ: {
		Kind:            KindZ,
		Spawn:           Pt(4, -2),
		Pivot:           Pt(1, 1),
		Cells:           [4]Point{Pt(2, 1), Pt(1, 1), Pt(1, 0), Pt(0, 0)},
		AllowedFlips:    1,
		RotateClockwise: true,
		Color:           core.ColorOrange,
	},
}

// TemplateFor returns the catalog entry for k.
func TemplateFor(k Kind) Template {
	return catalog[k]
}

// Kinds lists every shape in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindL, KindJ, KindT, KindO, KindS, KindZ}
}

// Piece is the live, player-controlled piece.
type Piece struct {
	Kind            Kind
	Anchor          Point
	Pivot           Point
	Model           [4]Point
	Flips           uint8
	AllowedFlips    uint8
	RotateClockwise bool
	Color           core.Color
}

// NewPiece returns a piece of kind k at its spawn anchor.
func NewPiece(k Kind) Piece {
	t := catalog[k]
	return Piece{
		Kind:            t.Kind,
		Anchor:          t.Spawn,
		Pivot:           t.Pivot,
		Model:           t.Cells,
		AllowedFlips:    t.AllowedFlips,
		RotateClockwise: t.RotateClockwise,
		Color:           t.Color,
	}
}

// Cells returns the absolute board cells, tagged with the piece color.
func (p Piece) Cells() [4]Point {
	var cells [4]Point
	for i, m := range p.Model {
		cells[i] = Point{
			X:     p.Anchor.X - p.Pivot.X + m.X,
			Y:     p.Anchor.Y - p.Pivot.Y + m.Y,
			Color: p.Color,
		}
	}
	return cells
}

// Translate moves the piece by (dx, dy) unless that would collide.
func (p *Piece) Translate(dx, dy int, b *Board) bool {
	if b.IsBlocked(p.Cells(), dx, dy) {
		return false
	}
	p.Anchor.X += dx
	p.Anchor.Y += dy
	return true
}

// maxKick bounds the kick search in both axes.
const maxKick = 2

// Rotate advances the piece one step through its flip cycle. When the
// rotated shape collides, the nearest free offset is searched, preferring
// no vertical lift, then small horizontal shifts (right before left), and
// only ever lifting upward. If nothing fits the piece is left untouched.
func (p *Piece) Rotate(b *Board) bool {
	if p.AllowedFlips == 0 {
		return false
	}

	next := *p
	reset := next.Flips == next.AllowedFlips
	if reset {
		for range next.Flips {
			next.turn(next.RotateClockwise)
		}
	} else {
		next.turn(!next.RotateClockwise)
	}

	dx, dy, ok := findKick(next.Cells(), b)
	if !ok {
		return false
	}
	next.Anchor.X += dx
	next.Anchor.Y += dy

	if reset {
		next.Flips = 0
	} else {
		next.Flips++
	}
	*p = next
	return true
}

// turn rotates the model and pivot a quarter turn.
func (p *Piece) turn(clockwise bool) {
	for i := range p.Model {
		p.Model[i] = rotate90(p.Model[i], clockwise)
	}
	p.Pivot = rotate90(p.Pivot, clockwise)
}

func findKick(cells [4]Point, b *Board) (dx, dy int, ok bool) {
	for lift := 0; lift <= maxKick; lift++ {
		for shift := 0; shift <= maxKick; shift++ {
			if !b.IsBlocked(cells, shift, -lift) {
				return shift, -lift, true
			}
			if shift != 0 && !b.IsBlocked(cells, -shift, -lift) {
				return -shift, -lift, true
			}
		}
	}
	return 0, 0, false
}

// CanLock reports whether every cell is inside the visible board.
func (p Piece) CanLock() bool {
	for _, c := range p.Cells() {
		if c.Y < 0 {
			return false
		}
	}
	return true
}

// Spawner picks pieces uniformly at random and keeps one piece of
// lookahead for the preview.
type Spawner struct {
	rng  *rand.Rand
	next Kind
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	s := &Spawner{rng: rng}
	s.next = s.roll()
	return s
}

func (s *Spawner) roll() Kind {
	return Kind(s.rng.Intn(kindCount))
}

// Next returns a fresh piece and rolls the following one.
func (s *Spawner) Next() Piece {
	k := s.next
	s.next = s.roll()
	return NewPiece(k)
}

// Peek returns the kind that the next call to Next will produce.
func (s *Spawner) Peek() Kind {
	return s.next
}
