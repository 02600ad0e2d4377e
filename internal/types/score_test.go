package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMateScoreRoundTripsThroughTT(t *testing.T) {
	tests := []struct {
		name string
		ply  int
		v    Score
	}{
		{"mate for side to move, shallow", 1, MateIn(3)},
		{"mate for side to move, deep", 7, MateIn(9)},
		{"mated, shallow", 1, MatedIn(3)},
		{"mated, deep", 7, MatedIn(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := tt.v.ToTT(tt.ply)
			assert.Equal(t, tt.v, stored.FromTT(tt.ply))
		})
	}
}

func TestNonMateScoreUnaffectedByToFromTT(t *testing.T) {
	v := Score(237)
	assert.Equal(t, v, v.ToTT(5))
	assert.Equal(t, v, v.FromTT(5))
}

func TestIsMateScore(t *testing.T) {
	assert.True(t, MateIn(1).IsMateScore())
	assert.True(t, MatedIn(1).IsMateScore())
	assert.False(t, Score(0).IsMateScore())
	assert.False(t, Score(900).IsMateScore())
	assert.False(t, Score(Infinity).IsMateScore())
}

func TestClampKeepsScoresOutOfMateBand(t *testing.T) {
	assert.Equal(t, MateBound-1, Score(50000).Clamp())
	assert.Equal(t, -(MateBound - 1), Score(-50000).Clamp())
	assert.Equal(t, Score(123), Score(123).Clamp())
}

func TestScoreStringFormat(t *testing.T) {
	assert.Equal(t, "cp 123", Score(123).String())
	assert.Equal(t, "cp -50", Score(-50).String())
	assert.Equal(t, "mate 1", MateIn(1).String())
	assert.Equal(t, "mate -1", MatedIn(1).String())
}

func TestMatedDeeperIsLessNegative(t *testing.T) {
	shallow := MatedIn(1)
	deep := MatedIn(5)
	assert.Greater(t, deep, shallow)
}
