package repository

import (
	"github.com/tuanvu/snapgrade/internal/model"
	"gorm.io/gorm"
)

type MistakeRepository interface {
	FindByUserAndReviewed(userID uint, reviewed bool) ([]model.MistakeEntry, error)
}

type mistakeRepository struct {
	db *gorm.DB
}

func NewMistakeRepository(db *gorm.DB) MistakeRepository {
	return &mistakeRepository{db: db}
}

func (r *mistakeRepository) FindByUserAndReviewed(userID uint, reviewed bool) ([]model.MistakeEntry, error) {
	var entries []model.MistakeEntry
	err := r.db.Preload("Submission.Question").
		Where("user_id = ? AND reviewed = ?", userID, reviewed).
		Order("created_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
