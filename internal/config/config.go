package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	DashboardCacheTTL time.Duration
	CacheTTL          time.Duration
	WinningThreshold  float64
	LosingThreshold   float64
	LeaderboardWindow int
	StatsWindow       int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TOPLINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Topline API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("dashboard.cache_ttl", "5m")
	v.SetDefault("cache.ttl", "60s")
	v.SetDefault("game.winning_threshold", 1.05)
	v.SetDefault("game.losing_threshold", 0.95)
	v.SetDefault("leaderboard.window_days", 30)
	v.SetDefault("stats.window_days", 30)

	dashboardTTL, err := parseTTL(v.GetString("dashboard.cache_ttl"), "5m")
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cacheTTL, err := parseTTL(v.GetString("cache.ttl"), "60s")
	if err != nil {
		return Config{}, fmt.Errorf("invalid cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		DashboardCacheTTL: dashboardTTL,
		CacheTTL:          cacheTTL,
		WinningThreshold:  v.GetFloat64("game.winning_threshold"),
		LosingThreshold:   v.GetFloat64("game.losing_threshold"),
		LeaderboardWindow: v.GetInt("leaderboard.window_days"),
		StatsWindow:       v.GetInt("stats.window_days"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.WinningThreshold <= cfg.LosingThreshold {
		return Config{}, fmt.Errorf("winning threshold must exceed losing threshold")
	}

	if cfg.LeaderboardWindow <= 0 {
		cfg.LeaderboardWindow = 30
	}

	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 30
	}

	return cfg, nil
}

func parseTTL(value, fallback string) (time.Duration, error) {
	if value == "" {
		value = fallback
	}
	return time.ParseDuration(value)
}
