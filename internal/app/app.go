package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/controller"
	"satisfaction_survey_backend/internal/middleware"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/pkg/database"
	"satisfaction_survey_backend/pkg/logger"
	"satisfaction_survey_backend/pkg/monitoring"
	"satisfaction_survey_backend/pkg/security"
	"satisfaction_survey_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	department *repository.DepartmentRepository
	question   *repository.QuestionRepository
	response   *repository.ResponseRepository
	comment    *repository.CommentRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	department *service.DepartmentService
	question   *service.QuestionService
	submission *service.SubmissionService
	summary    *service.SummaryService
	analytics  *service.AnalyticsService
	sentiment  *service.SentimentService
	action     *service.ActionService
	export     *service.ExportService
	user       *service.UserService
}

type controllers struct {
	auth       *controller.AuthController
	survey     *controller.SurveyController
	department *controller.DepartmentController
	comment    *controller.CommentController
	exec       *controller.ExecController
	question   *controller.QuestionController
	user       *controller.UserController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		department: repository.NewDepartmentRepository(db),
		question:   repository.NewQuestionRepository(db),
		response:   repository.NewResponseRepository(db),
		comment:    repository.NewCommentRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, rdb, cfg)
	s.department = service.NewDepartmentService(repos.department, storage, cfg)
	s.question = service.NewQuestionService(repos.question)
	s.submission = service.NewSubmissionService(repos.department, db)
	s.summary = service.NewSummaryService(repos.department, repos.response, repos.analytics)
	s.analytics = service.NewAnalyticsService(repos.analytics)
	s.sentiment = service.NewSentimentService(repos.comment)
	s.action = service.NewActionService(repos.comment, repos.department)
	s.export = service.NewExportService(s.summary, s.sentiment, cfg)
	s.user = service.NewUserService(repos.user)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, cfg *config.Config) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, cfg),
		survey:     controller.NewSurveyController(s.submission, s.question, s.department, cfg),
		department: controller.NewDepartmentController(s.department, s.summary, s.export, cfg),
		comment:    controller.NewCommentController(s.sentiment, s.action, cfg),
		exec:       controller.NewExecController(s.analytics, cfg),
		question:   controller.NewQuestionController(s.question, cfg),
		user:       controller.NewUserController(s.user),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	// Schema changes run automatically outside release mode; production
	// opts in explicitly with -migrate.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("migration failed", zap.Error(err))
		}
	}
	if err := database.Seed(db); err != nil {
		logger.Log.Fatal("seeding failed", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Revocation checks degrade to no-ops without redis; login and
		// verification stay fully functional.
		logger.Log.Warn("redis unavailable, token revocation disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{Config: cfg, DB: db, Redis: rdb}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("failed to initialize services", zap.Error(err))
	}
	ctrls := app.initControllers(services, db, cfg)

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("satisfaction-survey", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, cfg, rdb)

	if cfg.Storage.Type == "local" {
		qr := router.Group("/qrcode", func(c *gin.Context) {
			c.Header("Cache-Control", "public, max-age=3600")
		})
		qr.Static("/", cfg.Storage.LocalPath)
	}

	if err := services.department.EnsureCentralQR(context.Background()); err != nil {
		logger.Log.Error("failed to generate central QR", zap.Error(err))
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Log.Info("server exited")
}
