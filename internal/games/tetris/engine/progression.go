package engine

// Speed holds the progression constants.
type Speed struct {
	InitialFallMS int // fall interval at level 1
	LevelAtScore  int // points per level
	LevelScale    int // levels needed to double the speed

	// Fixed keeps the fall interval at InitialFallMS regardless of level.
	Fixed bool
}

// DefaultSpeed returns the canonical constants: 750 ms, 150 points, 5.
func DefaultSpeed() Speed {
	return Speed{
		InitialFallMS: 750,
		LevelAtScore:  150,
		LevelScale:    5,
	}
}

// ScoreForClear returns the points for one lock that cleared rows rows:
// 3^(rows+1). A lock that clears nothing is still worth 3.
func ScoreForClear(rows int) uint32 {
	points := uint32(3)
	for range rows {
		points *= 3
	}
	return points
}

// LevelForScore returns ceil(score / LevelAtScore), never below 1.
func (s Speed) LevelForScore(score uint32) uint32 {
	per := uint32(max(s.LevelAtScore, 1))
	level := (score + per - 1) / per
	return max(level, 1)
}

// FallInterval returns floor(InitialFallMS / (1 + (level-1)/LevelScale))
// in milliseconds. Level 1 (and below) is exactly InitialFallMS.
func (s Speed) FallInterval(level uint32) uint16 {
	if s.Fixed || level <= 1 || s.LevelScale <= 0 {
		return uint16(s.InitialFallMS)
	}
	// initial / (1 + (level-1)/scale) == initial*scale / (scale + level-1)
	scale := uint64(s.LevelScale)
	ms := uint64(s.InitialFallMS) * scale / (scale + uint64(level) - 1)
	return uint16(ms)
}
