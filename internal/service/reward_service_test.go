package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tuanvu/snapgrade/internal/model"
)

func TestCalculateXP(t *testing.T) {
	reward := NewRewardService()

	tests := []struct {
		name       string
		score      float64
		difficulty string
		want       int
	}{
		{"easy high score", 9.5, model.DifficultyEasy, 95},
		{"hard", 8.0, model.DifficultyHard, 160},
		{"medium", 8.0, model.DifficultyMedium, 120},
		{"medium fractional base", 7.5, model.DifficultyMedium, 112}, // floor(75 * 1.5)
		{"unknown difficulty behaves as easy", 9.5, "IMPOSSIBLE", 95},
		{"empty difficulty behaves as easy", 9.5, "", 95},
		{"zero score", 0, model.DifficultyHard, 0},
		{"perfect hard", 10, model.DifficultyHard, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reward.CalculateXP(tt.score, tt.difficulty))
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-3))
	assert.Equal(t, 10.0, ClampScore(42))
	assert.Equal(t, 7.25, ClampScore(7.25))
	assert.Equal(t, 0.0, ClampScore(0))
	assert.Equal(t, 10.0, ClampScore(10))
}
