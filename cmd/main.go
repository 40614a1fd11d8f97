package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mhngo/quiznest/config"
	"github.com/mhngo/quiznest/database"
	_ "github.com/mhngo/quiznest/docs" // Swagger docs - auto-generated
	"github.com/mhngo/quiznest/internal/controller/api"
	"github.com/mhngo/quiznest/internal/controller/pages"
	"github.com/mhngo/quiznest/internal/logger"
	"github.com/mhngo/quiznest/internal/model"
	"github.com/mhngo/quiznest/internal/repository"
	"github.com/mhngo/quiznest/internal/service"
	"github.com/mhngo/quiznest/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiznest API
// @version 1.0
// @description Anonymous multiple-choice quiz service: browse topics, take a quiz, track your best scores.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewSessionManager,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoringService,
			service.NewQuizService,
			service.NewResultService,
			service.NewSubmissionService,
		),

		// Controllers Layer
		fx.Provide(
			pages.NewPageController,
			api.NewQuizAPIController,
			api.NewResultAPIController,
		),

		// Invokers - executed in order by Fx
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDatabase),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's access log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("web/templates/*.html")

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewSessionManager(cfg *config.Config) *session.Manager {
	return session.NewManager(cfg.Session.CookieMaxAge)
}

// RegisterRoutesAndStartServer configures routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	pageCtrl *pages.PageController,
	quizAPICtrl *api.QuizAPIController,
	resultAPICtrl *api.ResultAPIController,
) {
	// Visitor-facing pages
	router.GET("/", pageCtrl.Index)
	router.GET("/quiz", pageCtrl.Quiz)
	router.POST("/submit", pageCtrl.Submit)
	router.GET("/results", pageCtrl.Results)

	// JSON API (prefixed with /api/v1)
	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/topics", quizAPICtrl.GetTopics)
		apiGroup.GET("/questions", quizAPICtrl.GetQuestions)
		apiGroup.POST("/attempts", resultAPICtrl.SubmitAttempt)
		apiGroup.GET("/results/summary", resultAPICtrl.GetSummary)
		apiGroup.GET("/results", resultAPICtrl.GetHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiznest server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Question{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedDatabase(questionRepo repository.QuestionRepository) error {
	return database.SeedQuestions(questionRepo)
}
