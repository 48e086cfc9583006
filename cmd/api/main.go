package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/config"
	"github.com/App-Genius/topline-platform/internal/database"
	"github.com/App-Genius/topline-platform/internal/game"
	"github.com/App-Genius/topline-platform/internal/handler"
	"github.com/App-Genius/topline-platform/internal/middleware"
	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/repository"
	"github.com/App-Genius/topline-platform/internal/router"
	"github.com/App-Genius/topline-platform/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Behavior{},
		&models.BehaviorLog{},
		&models.DailyEntry{},
		&models.Benchmark{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	behaviorLogRepo := repository.NewBehaviorLogRepository(db)
	dailyEntryRepo := repository.NewDailyEntryRepository(db)
	benchmarkRepo := repository.NewBenchmarkRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	thresholds := game.Thresholds{Winning: cfg.WinningThreshold, Losing: cfg.LosingThreshold}

	auditService := service.NewAuditService(auditLogRepo, logger)
	dashboardService := service.NewDashboardService(dailyEntryRepo, benchmarkRepo, redisClient, cfg.DashboardCacheTTL, thresholds, logger)
	leaderboardService := service.NewLeaderboardService(behaviorLogRepo, redisClient, cfg.CacheTTL, logger)
	statsService := service.NewStatsService(behaviorLogRepo, logger)
	behaviorLogService := service.NewBehaviorLogService(behaviorLogRepo, auditService, validate, logger)
	revenueService := service.NewRevenueService(dailyEntryRepo, benchmarkRepo, validate, logger)
	userService := service.NewUserService(userRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		DashboardHandler:   handler.NewDashboardHandler(dashboardService, logger),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService, logger),
		StatsHandler:       handler.NewStatsHandler(statsService, logger),
		BehaviorLogHandler: handler.NewBehaviorLogHandler(behaviorLogService, logger),
		RevenueHandler:     handler.NewRevenueHandler(revenueService, logger),
		UserHandler:        handler.NewUserHandler(userService, logger),
		AuditHandler:       handler.NewAuditHandler(auditService, logger),
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
