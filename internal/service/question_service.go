package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/model"
	"github.com/tuanvu/snapgrade/internal/repository"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDTO, error)
	GetDailyQuestions(userID uint) ([]dto.QuestionDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, userRepo repository.UserRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, userRepo: userRepo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDTO, error) {
	question := model.Question{
		Subject:       req.Subject,
		Topic:         req.Topic,
		GradeLevel:    req.GradeLevel,
		QuestionText:  req.QuestionText,
		CorrectAnswer: req.CorrectAnswer,
		SolutionSteps: req.SolutionSteps,
		Difficulty:    req.Difficulty,
	}
	if question.Subject == "" {
		question.Subject = "MATH"
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("CreateQuestion: failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	var resp dto.QuestionDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

// GetDailyQuestions returns the question bank for the user's grade level.
// No adaptive selection here; the feed is intentionally unfiltered.
func (s *questionService) GetDailyQuestions(userID uint) ([]dto.QuestionDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User", "id", userID)
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	questions, err := s.questionRepo.FindByGradeLevel(user.GradeLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for grade %d: %w", user.GradeLevel, err)
	}

	dtos := make([]dto.QuestionDTO, len(questions))
	for i := range questions {
		if err := copier.Copy(&dtos[i], &questions[i]); err != nil {
			return nil, fmt.Errorf("error preparing question list: %w", err)
		}
	}
	return dtos, nil
}
