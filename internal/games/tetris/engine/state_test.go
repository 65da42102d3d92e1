package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newState(seed int64) *State {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func TestNewState(t *testing.T) {
	s := newState(1)

	assert.Equal(t, uint32(0), s.CurrentScore())
	assert.Equal(t, uint32(1), s.Level)
	assert.Equal(t, uint16(750), s.FallInterval)
	assert.False(t, s.Over)
	assert.Zero(t, s.Board.Len())
	assert.Equal(t, TemplateFor(s.Active.Kind).Spawn, s.Active.Anchor)
}

// Every lock scores 3^(rows+1), so a lock that clears nothing still scores 3.
func TestLockWithoutClearStillScoresThree(t *testing.T) {
	s := newState(1)
	s.Active = NewPiece(KindO)
	s.Active.Anchor = Pt(4, 18)

	res := s.SoftDrop()

	assert.Equal(t, DropResult{Locked: true}, res)
	assert.Equal(t, uint32(3), s.CurrentScore())
	assert.Equal(t, 1, s.Pieces)
	assert.Equal(t, 4, s.Board.Len())
	assert.Equal(t, uint32(1), s.Level)
}

func TestDoubleClearScoresTwentySeven(t *testing.T) {
	s := newState(1)
	fillRow(s.Board, 18, 0)
	fillRow(s.Board, 19, 0)
	s.Active = NewPiece(KindI)
	s.Active.Anchor = Pt(0, 17) // vertical in column 0, rows 16..19

	res := s.OnGravityTick(true)

	assert.True(t, res.Locked)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, uint32(27), s.CurrentScore())
	assert.Equal(t, 2, s.Lines)
	assert.Equal(t, []Point{
		{X: 0, Y: 18, Color: core.ColorBlue},
		{X: 0, Y: 19, Color: core.ColorBlue},
	}, s.Board.Cells())
}

func TestLevelUpSpeedsGravity(t *testing.T) {
	s := newState(1)
	s.Score = 148
	s.Active = NewPiece(KindO)
	s.Active.Anchor = Pt(0, 18)

	s.SoftDrop()

	assert.Equal(t, uint32(151), s.Score)
	assert.Equal(t, uint32(2), s.Level)
	assert.Equal(t, uint16(625), s.FallInterval)
}

func TestFixedSpeedKeepsInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed.Fixed = true
	s := New(cfg, rand.New(rand.NewSource(1)))
	s.Score = 1000
	s.Active = NewPiece(KindO)
	s.Active.Anchor = Pt(0, 18)

	s.SoftDrop()

	assert.Equal(t, uint32(7), s.Level)
	assert.Equal(t, uint16(750), s.FallInterval)
}

func TestGravityTickFalseIsNoop(t *testing.T) {
	s := newState(3)
	before := s.Active

	assert.Equal(t, DropResult{}, s.OnGravityTick(false))
	assert.Equal(t, before, s.Active)

	assert.Equal(t, DropResult{Moved: true}, s.OnGravityTick(true))
	assert.Equal(t, before.Anchor.Y+1, s.Active.Anchor.Y)
}

func TestLockSpawnsNextPreview(t *testing.T) {
	s := newState(9)
	next := s.NextKind()
	s.Active = NewPiece(KindO)
	s.Active.Anchor = Pt(6, 18)

	s.SoftDrop()

	assert.Equal(t, next, s.Active.Kind)
	assert.Equal(t, TemplateFor(next).Spawn, s.Active.Anchor)
}

func TestGameOverWhenLockAboveBoard(t *testing.T) {
	s := newState(1)
	place(s.Board, Pt(4, 0), Pt(5, 0))
	s.Active = NewPiece(KindO)

	res := s.SoftDrop()

	assert.True(t, res.GameOver)
	assert.True(t, s.Over)
	assert.Equal(t, 2, s.Board.Len())
	assert.Equal(t, uint32(0), s.CurrentScore())

	// Nothing moves once the game is over.
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.Rotate())
	assert.True(t, s.OnGravityTick(true).GameOver)
}

func TestMovesRespectWalls(t *testing.T) {
	s := newState(1)
	s.Active = NewPiece(KindO)
	s.Active.Anchor = Pt(4, 5)

	moved := 0
	for s.MoveLeft() {
		moved++
	}
	assert.Equal(t, 4, moved)
	assert.Equal(t, 0, s.Active.Anchor.X)

	moved = 0
	for s.MoveRight() {
		moved++
	}
	assert.Equal(t, 8, moved)
}

func TestStackingEndsGame(t *testing.T) {
	s := newState(5)
	for i := 0; i < 1000 && !s.Over; i++ {
		s.SoftDrop()
	}

	require.True(t, s.Over, "dropping straight down must eventually top out")
	for _, c := range s.Board.Cells() {
		assert.GreaterOrEqual(t, c.Y, 0)
		assert.Less(t, c.Y, s.Board.Height)
		assert.GreaterOrEqual(t, c.X, 0)
		assert.Less(t, c.X, s.Board.Width)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	script := func(s *State) {
		for i := 0; i < 400 && !s.Over; i++ {
			switch i % 7 {
			case 0:
				s.MoveLeft()
			case 2:
				s.Rotate()
			case 4:
				s.MoveRight()
				s.MoveRight()
			}
			s.OnGravityTick(i%2 == 0)
		}
	}

	a, b := newState(2024), newState(2024)
	script(a)
	script(b)

	assert.Equal(t, a.Board.Cells(), b.Board.Cells())
	assert.Equal(t, a.Active, b.Active)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Over, b.Over)
}
