package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tuanvu/snapgrade/config"
	"github.com/tuanvu/snapgrade/database"
	_ "github.com/tuanvu/snapgrade/docs" // Swagger docs - auto-generated
	"github.com/tuanvu/snapgrade/internal/controller"
	"github.com/tuanvu/snapgrade/internal/logger"
	"github.com/tuanvu/snapgrade/internal/model"
	"github.com/tuanvu/snapgrade/internal/repository"
	"github.com/tuanvu/snapgrade/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SnapGrade API
// @version 1.0
// @description Learning-progress backend: students upload photographed math work, an AI grader scores it, and the result drives XP, streaks and the mistake notebook.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewUserProgressRepository,
			repository.NewMistakeRepository,
		),

		// Services
		fx.Provide(
			service.NewStorageService,
			service.NewGraderService,
			service.NewRewardService,
			service.NewSubmissionService,
			service.NewProgressService,
			service.NewQuestionService,
			service.NewUserService,
		),

		// Controllers
		fx.Provide(
			controller.NewSubmissionController,
			controller.NewProgressController,
			controller.NewQuestionController,
			controller.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	submissionCtrl *controller.SubmissionController,
	progressCtrl *controller.ProgressController,
	questionCtrl *controller.QuestionController,
	userCtrl *controller.UserController,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/health", controller.Health)
		api.POST("/users", userCtrl.Register)

		api.GET("/questions/daily", questionCtrl.GetDailyQuestions)

		api.POST("/submissions", submissionCtrl.CreateSubmission)
		api.GET("/submissions", submissionCtrl.ListSubmissions)
		api.GET("/submissions/:id", submissionCtrl.GetSubmission)

		api.GET("/progress", progressCtrl.GetProgress)
		api.GET("/progress/mistakes", progressCtrl.GetMistakes)
	}

	admin := router.Group("/api/v1/admin")
	{
		admin.POST("/questions", questionCtrl.CreateQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SnapGrade API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Submission{},
		&model.UserProgress{},
		&model.MistakeEntry{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
