package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/internal/dto"
	"github.com/tuanvu/snapgrade/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register godoc
// @Summary Register a student profile
// @Description Creates the user and an empty progress record.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "Profile data"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or email already registered"
// @Router /users [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Health godoc
// @Summary Service health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"service":   "SnapGrade API",
		"timestamp": time.Now().UTC(),
	})
}
