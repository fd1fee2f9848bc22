package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rideathon.backend/internal/config"
	"rideathon.backend/internal/infrastructure/jobs"
	"rideathon.backend/internal/infrastructure/repositories"
	"rideathon.backend/internal/interfaces/http/handlers"
	"rideathon.backend/internal/interfaces/http/middleware"
	"rideathon.backend/internal/usecases"
	"rideathon.backend/pkg/jwt"
	"rideathon.backend/pkg/logger"
	"rideathon.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	teamRepo := repositories.NewTeamRepository(db)
	challengeRepo := repositories.NewChallengeRepository(db)
	modifierRepo := repositories.NewModifierRepository(db)
	offsetRepo := repositories.NewOffsetRepository(db)
	gpxRepo := repositories.NewGpxRepository(db)
	scorecardRepo := repositories.NewScorecardRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Redis-backed scoreboard plumbing
	notifier := redis.NewNotifier()
	leaderboardCache := redis.NewLeaderboardCache(cfg.Scoring.LeaderboardCacheTTL)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(teamRepo, jwtService)
	ledgerUsecase := usecases.NewLedgerUsecase(modifierRepo, offsetRepo)
	scorecardUsecase := usecases.NewScorecardUsecase(scorecardRepo, challengeRepo, gpxRepo, teamRepo, ledgerUsecase, notifier, leaderboardCache)
	trackUsecase := usecases.NewTrackUsecase(gpxRepo, modifierRepo, uow, scorecardUsecase, cfg.Scoring.MaxPlausibleSpeedKmh)
	challengeUsecase := usecases.NewChallengeUsecase(challengeRepo, modifierRepo, ledgerUsecase, uow, scorecardUsecase, cfg.Scoring.ForfeitPenaltyKm)
	adminUsecase := usecases.NewAdminUsecase(teamRepo, challengeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	teamHandler := handlers.NewTeamHandler(teamRepo)
	challengeHandler := handlers.NewChallengeHandler(challengeUsecase)
	uploadHandler := handlers.NewUploadHandler(trackUsecase)
	scoreboardHandler := handlers.NewScoreboardHandler(scorecardUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, ledgerUsecase, scorecardUsecase)

	// Middleware guarding protected and operator routes
	authMiddleware := middleware.AuthMiddleware(jwtService)
	adminMiddleware := middleware.AdminMiddleware(cfg.Admin.Secret)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshJob := jobs.NewScorecardRefreshJob(teamRepo, scorecardUsecase, cfg.Scoring.RefreshInterval)
	go refreshJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		teamHandler:       teamHandler,
		challengeHandler:  challengeHandler,
		uploadHandler:     uploadHandler,
		scoreboardHandler: scoreboardHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
		adminMiddleware:   adminMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		refreshJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Rideathon Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
