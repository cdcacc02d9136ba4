package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"recruitai-backend/config"
	_ "recruitai-backend/docs" // Important for Swagger
	v1 "recruitai-backend/internal/delivery/http/v1"
	"recruitai-backend/internal/repository/postgres"
	"recruitai-backend/internal/usecase"
	"recruitai-backend/pkg/auth"
	"recruitai-backend/pkg/database"
	"recruitai-backend/pkg/logger"
	redisclient "recruitai-backend/pkg/redis"
	"recruitai-backend/pkg/screening"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// @title           RecruitAI API
// @version         1.0
// @description     Recruitment backend: job postings, applications and candidate screening.
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
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting recruitai backend", "port", cfg.Port)

	// 3. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.Options{
		MaxConns:       cfg.DBMaxConns,
		SimpleProtocol: cfg.DBSimpleProtocol,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(ctx, dbPool); err != nil {
		logger.Log.Error("Failed to prepare schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redisclient.New(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redisclient.ErrNotConfigured):
		redisClient = nil
	case err != nil:
		logger.Log.Warn("Redis unavailable - using in-memory rate limiting", "error", err)
		redisClient = nil
	default:
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup UseCases
	if cfg.GoogleAPIKey == "" {
		logger.Log.Info("GOOGLE_API_KEY not set - screening uses the static scorer")
	}
	authUC := usecase.NewAuthUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo)
	screeningUC := usecase.NewScreeningUsecase(applicationRepo, screening.NewStaticScreener())

	checks := map[string]usecase.Pinger{"database": dbPool.Ping, "redis": nil}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	healthUC := usecase.NewHealthUsecase(checks)

	// 7. Setup Session Tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ScreeningUC:   screeningUC,
		HealthUC:      healthUC,
		Tokens:        tokens,
		Redis:         redisClient,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
