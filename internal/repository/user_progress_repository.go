package repository

import (
	"github.com/tuanvu/snapgrade/internal/model"
	"gorm.io/gorm"
)

type UserProgressRepository interface {
	FindByUserID(userID uint) (*model.UserProgress, error)
}

type userProgressRepository struct {
	db *gorm.DB
}

func NewUserProgressRepository(db *gorm.DB) UserProgressRepository {
	return &userProgressRepository{db: db}
}

func (r *userProgressRepository) FindByUserID(userID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	if err := r.db.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
