package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/App-Genius/topline-platform/internal/config"
	"github.com/App-Genius/topline-platform/internal/handler"
	"github.com/App-Genius/topline-platform/internal/middleware"
	"github.com/App-Genius/topline-platform/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DashboardHandler   *handler.DashboardHandler
	LeaderboardHandler *handler.LeaderboardHandler
	StatsHandler       *handler.StatsHandler
	BehaviorLogHandler *handler.BehaviorLogHandler
	RevenueHandler     *handler.RevenueHandler
	UserHandler        *handler.UserHandler
	AuditHandler       *handler.AuditHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.DashboardHandler != nil {
		game := api.Group("/game", jwtMiddleware)
		deps.DashboardHandler.Register(game)
	}

	if deps.LeaderboardHandler != nil {
		leaderboard := api.Group("/leaderboard", jwtMiddleware)
		deps.LeaderboardHandler.Register(leaderboard)
	}

	if deps.StatsHandler != nil {
		stats := api.Group("/stats", jwtMiddleware, middleware.RequireFeature("analytics"))
		deps.StatsHandler.Register(stats)
	}

	if deps.BehaviorLogHandler != nil {
		logs := api.Group("/behavior-logs", jwtMiddleware, middleware.RateLimit("behavior-logs", 30, time.Minute))
		deps.BehaviorLogHandler.Register(logs)
	}

	if deps.RevenueHandler != nil {
		revenue := api.Group("/revenue", jwtMiddleware, middleware.RequireManager())
		deps.RevenueHandler.Register(revenue)
	}

	if deps.UserHandler != nil {
		users := api.Group("/users", jwtMiddleware)
		deps.UserHandler.Register(users)
	}

	if deps.AuditHandler != nil {
		audit := api.Group("/audit", jwtMiddleware, middleware.RequireAdmin())
		deps.AuditHandler.Register(audit)
	}
}
