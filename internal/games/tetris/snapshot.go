package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     uint32
	Level     uint32
	FallMS    uint16
	Lines     int
	Pieces    int
	Piece     engine.Kind
	Anchor    engine.Point
	Flips     uint8
	Next      engine.Kind
	Board     []engine.Point
	GravityMS int
	Paused    bool
	Over      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Tick:      g.tick,
		Score:     s.Score,
		Level:     s.Level,
		FallMS:    s.FallInterval,
		Lines:     s.Lines,
		Pieces:    s.Pieces,
		Piece:     s.Active.Kind,
		Anchor:    s.Active.Anchor,
		Flips:     s.Active.Flips,
		Next:      s.NextKind(),
		Board:     s.Board.Cells(),
		GravityMS: g.gravityMS,
		Paused:    g.paused,
		Over:      s.Over,
	}
}
