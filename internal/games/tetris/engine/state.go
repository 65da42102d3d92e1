package engine

import "math/rand"

// Config sizes the board and sets the speed curve.
type Config struct {
	Width  int
	Height int
	Speed  Speed
}

// DefaultConfig returns the canonical 10×20 game.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Speed:  DefaultSpeed(),
	}
}

// DropResult describes what one downward step did.
type DropResult struct {
	Moved    bool // the piece fell one row
	Locked   bool // the piece was locked and a new one spawned
	Cleared  int  // rows removed by the lock
	GameOver bool // the lock failed and the game ended
}

// State is a whole game. Its methods are the only way the outside world
// changes it, one call per input event or gravity tick.
type State struct {
	Board  *Board
	Active Piece

	Score        uint32
	Level        uint32
	FallInterval uint16 // milliseconds between gravity steps
	Lines        int
	Pieces       int
	Over         bool

	speed   Speed
	spawner *Spawner
}

// New starts a game whose pieces are drawn from rng.
func New(cfg Config, rng *rand.Rand) *State {
	s := &State{
		Board:   NewBoard(cfg.Width, cfg.Height),
		speed:   cfg.Speed,
		spawner: NewSpawner(rng),
	}
	s.Level = 1
	s.FallInterval = s.speed.FallInterval(1)
	s.Active = s.spawner.Next()
	return s
}

// NextKind is the shape that spawns after the active piece locks.
func (s *State) NextKind() Kind {
	return s.spawner.Peek()
}

// CurrentScore returns the score to rank when the game is over.
func (s *State) CurrentScore() uint32 {
	return s.Score
}

// MoveLeft shifts the active piece one column left.
func (s *State) MoveLeft() bool {
	if s.Over {
		return false
	}
	return s.Active.Translate(-1, 0, s.Board)
}

// MoveRight shifts the active piece one column right.
func (s *State) MoveRight() bool {
	if s.Over {
		return false
	}
	return s.Active.Translate(1, 0, s.Board)
}

// Rotate turns the active piece, kicking it if needed.
func (s *State) Rotate() bool {
	if s.Over {
		return false
	}
	return s.Active.Rotate(s.Board)
}

// SoftDrop moves the active piece down one row, locking it if it cannot
// move.
func (s *State) SoftDrop() DropResult {
	return s.drop()
}

// OnGravityTick applies gravity when elapsed is true. The caller owns the
// clock and decides when FallInterval has passed.
func (s *State) OnGravityTick(elapsed bool) DropResult {
	if !elapsed {
		return DropResult{}
	}
	return s.drop()
}

func (s *State) drop() DropResult {
	if s.Over {
		return DropResult{GameOver: true}
	}
	if s.Active.Translate(0, 1, s.Board) {
		return DropResult{Moved: true}
	}
	if !s.Board.Lock(s.Active) {
		s.Over = true
		return DropResult{GameOver: true}
	}

	cleared := s.Board.ClearFullRows()
	s.Pieces++
	s.Lines += cleared
	s.Score += ScoreForClear(cleared)
	s.Level = s.speed.LevelForScore(s.Score)
	s.FallInterval = s.speed.FallInterval(s.Level)
	s.Active = s.spawner.Next()

	return DropResult{Locked: true, Cleared: cleared}
}
