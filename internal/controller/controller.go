package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/dto"
)

// userIDFromQuery reads the explicit user_id parameter. Temporary, until an
// auth layer supplies the identity.
func userIDFromQuery(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "user_id query parameter is required"})
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format"})
		return 0, false
	}
	return uint(val), true
}

// respondError maps the service error taxonomy to HTTP statuses. External
// failure details are logged, not echoed to clients.
func respondError(ctx *gin.Context, err error) {
	var (
		validationErr    *apperror.ValidationError
		notFoundErr      *apperror.NotFoundError
		authorizationErr *apperror.AuthorizationError
		storageErr       *apperror.StorageError
		gradingErr       *apperror.AIGradingError
	)

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validationErr.Message})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: notFoundErr.Error()})
	case errors.As(err, &authorizationErr):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: authorizationErr.Message})
	case errors.As(err, &storageErr):
		log.Error().Err(storageErr.Err).Msg("Storage failure")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Failed to store the uploaded image, please try again"})
	case errors.As(err, &gradingErr):
		log.Error().Err(gradingErr.Err).Str("raw", gradingErr.Raw).Msg("AI grading failure")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "AI grading is currently unavailable, please try again"})
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
