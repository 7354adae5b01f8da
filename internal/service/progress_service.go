package service

import (
	"errors"
	"fmt"

	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/repository"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetProgress(userID uint) (*dto.ProgressDTO, error)
	GetMistakes(userID uint) ([]dto.MistakeDTO, error)
}

type progressService struct {
	progressRepo   repository.UserProgressRepository
	submissionRepo repository.SubmissionRepository
	mistakeRepo    repository.MistakeRepository
}

func NewProgressService(
	progressRepo repository.UserProgressRepository,
	submissionRepo repository.SubmissionRepository,
	mistakeRepo repository.MistakeRepository,
) ProgressService {
	return &progressService{
		progressRepo:   progressRepo,
		submissionRepo: submissionRepo,
		mistakeRepo:    mistakeRepo,
	}
}

// GetProgress returns the gamification state plus accuracy counters. A user
// with no submissions yet gets an all-zero summary rather than an error.
func (s *progressService) GetProgress(userID uint) (*dto.ProgressDTO, error) {
	result := &dto.ProgressDTO{}

	progress, err := s.progressRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load progress for user %d: %w", userID, err)
	}
	if progress != nil {
		result.TotalXP = progress.TotalXP
		result.CurrentStreak = progress.CurrentStreak
		result.LongestStreak = progress.LongestStreak
	}

	correct, err := s.submissionRepo.CountByUserAndCorrect(userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count correct submissions for user %d: %w", userID, err)
	}
	incorrect, err := s.submissionRepo.CountByUserAndCorrect(userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to count incorrect submissions for user %d: %w", userID, err)
	}

	total := correct + incorrect
	result.TotalSubmissions = int(total)
	result.CorrectSubmissions = int(correct)
	if total > 0 {
		result.Accuracy = float64(correct) * 100.0 / float64(total)
	}
	return result, nil
}

// GetMistakes lists the user's unreviewed mistake-notebook entries, newest
// first.
func (s *progressService) GetMistakes(userID uint) ([]dto.MistakeDTO, error) {
	entries, err := s.mistakeRepo.FindByUserAndReviewed(userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list mistakes for user %d: %w", userID, err)
	}

	mistakes := make([]dto.MistakeDTO, len(entries))
	for i, entry := range entries {
		mistakes[i] = dto.MistakeDTO{
			ID:           entry.ID,
			SubmissionID: entry.SubmissionID,
			QuestionText: entry.Submission.Question.QuestionText,
			Topic:        entry.Submission.Question.Topic,
			Reviewed:     entry.Reviewed,
			CreatedAt:    entry.CreatedAt,
		}
	}
	return mistakes, nil
}
