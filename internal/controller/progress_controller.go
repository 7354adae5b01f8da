package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuanvu/snapgrade/internal/service"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProgress godoc
// @Summary Get a user's learning progress
// @Description Returns total XP, streaks and submission accuracy.
// @Tags Progress
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ProgressDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	progress, err := c.progressService.GetProgress(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetMistakes godoc
// @Summary List unreviewed mistake-notebook entries
// @Description Returns the user's incorrectly answered submissions awaiting review.
// @Tags Progress
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.MistakeDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /progress/mistakes [get]
func (c *ProgressController) GetMistakes(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	mistakes, err := c.progressService.GetMistakes(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mistakes)
}
