package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/repository/rediscache"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/token"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Role-based job board backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (advisory; the API works without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable; identity cache disabled", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	inviteRepo := postgres.NewInterviewInvitationRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)

	identityCache := rediscache.NewIdentityCache(time.Duration(cfg.IdentityCacheTTLHours) * time.Hour)

	// 6. Setup Notifications
	var notifier domain.Notifier
	mailer := email.NewMailer(cfg)
	if mailer.IsConfigured() {
		notifier = mailer
	} else {
		logger.Log.Warn("SMTP not fully configured; email notifications disabled")
		notifier = domain.NopNotifier{}
	}

	// 7. Setup File Storage
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to initialize file storage", "error", err)
		os.Exit(1)
	}

	// 8. Setup UseCases
	tokens := token.NewManager(cfg.JWTSecret)
	authUC := usecase.NewAuthUsecase(userRepo, companyRepo, identityCache, tokens)
	userUC := usecase.NewUserUsecase(userRepo, companyRepo, identityCache, store)
	companyUC := usecase.NewCompanyProfileUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, inviteRepo, notifier)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, userRepo)

	// 9. Seed the bootstrap admin
	if err := authUC.EnsureAdminExists(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Log.Error("Failed to ensure admin account", "error", err)
		os.Exit(1)
	}

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		FeedbackUC:    feedbackUC,
		Tokens:        tokens,
		Store:         store,
		UploadDir:     cfg.UploadDir,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
