package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreForClear(t *testing.T) {
	want := []uint32{3, 9, 27, 81, 243}
	for rows, points := range want {
		assert.Equal(t, points, ScoreForClear(rows), "rows=%d", rows)
	}
}

func TestLevelForScore(t *testing.T) {
	speed := DefaultSpeed()
	tests := []struct {
		score uint32
		level uint32
	}{
		{0, 1},
		{3, 1},
		{150, 1},
		{151, 2},
		{300, 2},
		{301, 3},
		{1500, 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score=%d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.level, speed.LevelForScore(tt.score))
		})
	}
}

func TestFallInterval(t *testing.T) {
	speed := DefaultSpeed()
	tests := []struct {
		level uint32
		ms    uint16
	}{
		{0, 750},
		{1, 750},
		{2, 625},
		{6, 375},
		{11, 250},
		{21, 150},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("level=%d", tt.level), func(t *testing.T) {
			assert.Equal(t, tt.ms, speed.FallInterval(tt.level))
		})
	}
}

func TestFallIntervalCustomAndFixed(t *testing.T) {
	slow := Speed{InitialFallMS: 900, LevelAtScore: 150, LevelScale: 5}
	assert.Equal(t, uint16(450), slow.FallInterval(6))

	fixed := DefaultSpeed()
	fixed.Fixed = true
	assert.Equal(t, uint16(750), fixed.FallInterval(11))
	assert.Equal(t, uint32(2), fixed.LevelForScore(151))
}
