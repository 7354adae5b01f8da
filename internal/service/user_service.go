package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/model"
	"github.com/tuanvu/snapgrade/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	Register(req dto.RegisterUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	db       *gorm.DB
}

func NewUserService(userRepo repository.UserRepository, db *gorm.DB) UserService {
	return &userService{userRepo: userRepo, db: db}
}

// Register creates a student profile together with its empty progress row,
// in one transaction.
func (s *userService) Register(req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email %s: %w", req.Email, err)
	}
	if exists {
		return nil, apperror.NewValidation("email already registered: " + req.Email)
	}

	user := model.User{
		Email:      req.Email,
		FullName:   req.FullName,
		GradeLevel: req.GradeLevel,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		progress := model.UserProgress{UserID: user.ID}
		if err := tx.Create(&progress).Error; err != nil {
			return fmt.Errorf("failed to initialize user progress: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: transaction failed")
		return nil, err
	}
	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("User registered")

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("error preparing registration response: %w", err)
	}
	return &resp, nil
}
