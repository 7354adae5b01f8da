package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/model"
	"github.com/tuanvu/snapgrade/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmissionService runs the grading pipeline: upload the work image, grade
// it, persist the submission and fold the result into the user's progress.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, userID, questionID uint, image []byte, filename, contentType string) (*dto.SubmissionResponse, error)
	ListSubmissions(userID uint) ([]dto.SubmissionSummaryDTO, error)
	GetSubmission(submissionID, userID uint) (*dto.SubmissionSummaryDTO, error)
}

type submissionService struct {
	userRepo       repository.UserRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	grader         GraderService
	storage        StorageService
	reward         RewardService
	db             *gorm.DB
	now            func() time.Time
}

func NewSubmissionService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	grader GraderService,
	storage StorageService,
	reward RewardService,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		userRepo:       userRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		grader:         grader,
		storage:        storage,
		reward:         reward,
		db:             db,
		now:            time.Now,
	}
}

// CreateSubmission executes one end-to-end grading run. Upload and grading
// happen before any database write, so their failures leave no partial state.
// The submission insert, progress update and mistake entry then commit as a
// single transaction.
func (s *submissionService) CreateSubmission(ctx context.Context, userID, questionID uint, image []byte, filename, contentType string) (*dto.SubmissionResponse, error) {
	if len(image) == 0 {
		return nil, apperror.NewValidation("image file is required")
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User", "id", userID)
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Question", "id", questionID)
		}
		return nil, fmt.Errorf("failed to load question %d: %w", questionID, err)
	}

	imageURL, err := s.storage.Upload(ctx, image, contentType, "submissions", filename)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateSubmission: image upload failed")
		return nil, apperror.NewStorage("failed to store submission image", err)
	}
	log.Debug().Str("imageURL", imageURL).Msg("CreateSubmission: image uploaded")

	start := time.Now()
	raw, err := s.grader.Grade(ctx, imageURL, question.QuestionText, question.CorrectAnswer, question.GradeLevel)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("CreateSubmission: AI grading call failed")
		return nil, apperror.NewAIGrading("failed to grade submission", "", err)
	}

	result, err := ParseGradingResponse(raw)
	if err != nil {
		var gradingErr *apperror.AIGradingError
		if errors.As(err, &gradingErr) {
			log.Error().Err(err).Str("rawResponse", gradingErr.Raw).Msg("CreateSubmission: unparseable grading response")
		}
		return nil, err
	}
	result.ProcessingTimeMs = int(time.Since(start).Milliseconds())
	result.AIProvider = s.grader.Provider()

	score := ClampScore(result.Score)
	xpEarned := s.reward.CalculateXP(score, question.Difficulty)
	log.Debug().Int("xp", xpEarned).Float64("score", score).Str("difficulty", question.Difficulty).Msg("CreateSubmission: XP calculated")

	submission := model.Submission{
		UserID:           userID,
		QuestionID:       questionID,
		OriginalImageURL: imageURL,
		AIScore:          score,
		IsCorrect:        result.Correct,
		AIFeedback:       result.Feedback,
		CorrectSteps:     result.CorrectSteps,
		TopicTags:        result.TopicTags,
		ProcessingTimeMs: result.ProcessingTimeMs,
		AIProvider:       result.AIProvider,
	}

	var progress model.UserProgress
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return fmt.Errorf("failed to create submission record: %w", err)
		}

		// Make sure the row exists, then lock it so two submissions by the
		// same user cannot interleave their progress updates. sqlite (tests)
		// serializes writers on its own and rejects FOR UPDATE syntax.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.UserProgress{UserID: userID}).Error; err != nil {
			return fmt.Errorf("failed to ensure progress record: %w", err)
		}
		q := tx.Where("user_id = ?", userID)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&progress).Error; err != nil {
			return fmt.Errorf("failed to load progress record: %w", err)
		}

		progress.TotalXP += xpEarned
		AdvanceStreak(&progress, s.now())
		if err := tx.Save(&progress).Error; err != nil {
			return fmt.Errorf("failed to update progress record: %w", err)
		}

		if !result.Correct {
			mistake := model.MistakeEntry{
				UserID:       userID,
				SubmissionID: submission.ID,
				Reviewed:     false,
			}
			if err := tx.Create(&mistake).Error; err != nil {
				return fmt.Errorf("failed to create mistake entry: %w", err)
			}
			log.Debug().Uint("submissionID", submission.ID).Msg("CreateSubmission: added to mistake notebook")
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateSubmission: transaction failed, rolled back")
		return nil, err
	}

	log.Info().
		Uint("submissionID", submission.ID).
		Int("xpEarned", xpEarned).
		Int("totalXP", progress.TotalXP).
		Int("currentStreak", progress.CurrentStreak).
		Msg("Submission graded")

	return &dto.SubmissionResponse{
		SubmissionID:     submission.ID,
		Score:            submission.AIScore,
		Correct:          submission.IsCorrect,
		Feedback:         submission.AIFeedback,
		CorrectSteps:     result.CorrectSteps,
		TopicTags:        result.TopicTags,
		XPEarned:         xpEarned,
		TotalXP:          progress.TotalXP,
		CurrentStreak:    progress.CurrentStreak,
		ProcessingTimeMs: submission.ProcessingTimeMs,
	}, nil
}

func (s *submissionService) ListSubmissions(userID uint) ([]dto.SubmissionSummaryDTO, error) {
	submissions, err := s.submissionRepo.FindByUserNewestFirst(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions for user %d: %w", userID, err)
	}

	summaries := make([]dto.SubmissionSummaryDTO, len(submissions))
	for i := range submissions {
		summaries[i] = toSubmissionSummary(&submissions[i])
	}
	return summaries, nil
}

func (s *submissionService) GetSubmission(submissionID, userID uint) (*dto.SubmissionSummaryDTO, error) {
	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Submission", "id", submissionID)
		}
		return nil, fmt.Errorf("failed to load submission %d: %w", submissionID, err)
	}

	if submission.UserID != userID {
		log.Warn().Uint("submissionID", submissionID).Uint("userID", userID).Msg("Unauthorized submission access attempt")
		return nil, apperror.NewAuthorization("you don't have permission to access this submission")
	}

	summary := toSubmissionSummary(submission)
	return &summary, nil
}

func toSubmissionSummary(submission *model.Submission) dto.SubmissionSummaryDTO {
	return dto.SubmissionSummaryDTO{
		ID:               submission.ID,
		QuestionID:       submission.QuestionID,
		QuestionText:     submission.Question.QuestionText,
		OriginalImageURL: submission.OriginalImageURL,
		Score:            submission.AIScore,
		Correct:          submission.IsCorrect,
		Feedback:         submission.AIFeedback,
		CorrectSteps:     submission.CorrectSteps,
		TopicTags:        submission.TopicTags,
		CreatedAt:        submission.CreatedAt,
	}
}
