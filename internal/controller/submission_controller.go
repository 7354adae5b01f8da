package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/service"
)

// maxImageSize caps uploaded work photos at 10MB.
const maxImageSize = 10 << 20

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// CreateSubmission godoc
// @Summary Upload and grade a photographed answer
// @Description Uploads the student's work image, grades it with AI, and updates XP/streak/mistake notebook in one run.
// @Tags Submissions
// @Accept mpfd
// @Produce json
// @Param user_id query int true "User ID (temporary, will come from auth)"
// @Param question_id formData int true "Question being answered"
// @Param image formData file true "Photographed work"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing image or invalid input"
// @Failure 404 {object} dto.ErrorResponse "User or question not found"
// @Failure 502 {object} dto.ErrorResponse "Storage or AI grading failure"
// @Router /submissions [post]
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	questionIDStr := ctx.PostForm("question_id")
	questionID, err := strconv.ParseUint(questionIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question_id format"})
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "image file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to read uploaded image"})
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to read uploaded image"})
		return
	}

	log.Info().Uint("userID", userID).Uint64("questionID", questionID).Int("imageBytes", len(image)).Msg("Received submission upload")

	resp, err := c.submissionService.CreateSubmission(
		ctx.Request.Context(), userID, uint(questionID),
		image, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSubmissions godoc
// @Summary List a user's submission history
// @Description Returns the user's graded submissions, newest first.
// @Tags Submissions
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	submissions, err := c.submissionService.ListSubmissions(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetSubmission godoc
// @Summary Get one submission
// @Description Returns a single graded submission. Only the owner may read it.
// @Tags Submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.SubmissionSummaryDTO
// @Failure 403 {object} dto.ErrorResponse "Submission owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	userID, ok := userIDFromQuery(ctx)
	if !ok {
		return
	}

	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission ID format"})
		return
	}

	submission, err := c.submissionService.GetSubmission(uint(id), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submission)
}
