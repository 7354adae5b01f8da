package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/model"
	"github.com/tuanvu/snapgrade/internal/repository"
)

func TestRegisterCreatesUserWithProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db), db)

	resp, err := svc.Register(dto.RegisterUserRequest{
		Email:      "linh.vo@example.com",
		FullName:   "Linh Vo",
		GradeLevel: 6,
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "linh.vo@example.com", resp.Email)
	assert.Equal(t, 6, resp.GradeLevel)

	var progress model.UserProgress
	require.NoError(t, db.First(&progress, "user_id = ?", resp.ID).Error)
	assert.Equal(t, 0, progress.TotalXP)
	assert.Nil(t, progress.LastActivityDate)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db), db)
	req := dto.RegisterUserRequest{Email: "linh.vo@example.com", FullName: "Linh Vo", GradeLevel: 6}

	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "linh.vo@example.com")
}
