package service

import (
	"math"

	"github.com/tuanvu/snapgrade/internal/model"
)

// MaxScore is the upper bound of the grading scale; the AI grades out of 10.
const MaxScore float64 = 10.0

type RewardService interface {
	CalculateXP(score float64, difficulty string) int
}

type rewardService struct{}

func NewRewardService() RewardService {
	return &rewardService{}
}

// CalculateXP maps a 0-10 score to experience points: floor(score*10) gives
// 0-100 base XP, scaled by the question difficulty and floored again.
func (s *rewardService) CalculateXP(score float64, difficulty string) int {
	baseXP := int(math.Floor(score * 10))

	var multiplier float64
	switch difficulty {
	case model.DifficultyEasy:
		multiplier = 1.0
	case model.DifficultyMedium:
		multiplier = 1.5
	case model.DifficultyHard:
		multiplier = 2.0
	default:
		multiplier = 1.0
	}

	return int(math.Floor(float64(baseXP) * multiplier))
}

// ClampScore bounds an AI-provided score to the grading scale before it flows
// into persistence and reward computation.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
