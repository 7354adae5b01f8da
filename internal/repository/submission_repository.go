package repository

import (
	"github.com/tuanvu/snapgrade/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	FindByID(id uint) (*model.Submission, error)
	FindByUserNewestFirst(userID uint) ([]model.Submission, error)
	CountByUserAndCorrect(userID uint, correct bool) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.Preload("Question").First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByUserNewestFirst(userID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) CountByUserAndCorrect(userID uint, correct bool) (int64, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).
		Where("user_id = ? AND is_correct = ?", userID, correct).
		Count(&count).Error
	return count, err
}
