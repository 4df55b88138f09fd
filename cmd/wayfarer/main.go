package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/wayfarer-app/wayfarer/common/environment"
	"github.com/wayfarer-app/wayfarer/common/version"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/app"
)

func main() {
	fmt.Printf("Wayfarer Trip Planner\n")
	fmt.Printf("Version: %s\n", version.Version)
	fmt.Printf("Commit: %s\n", version.GitCommit)
	fmt.Printf("Build Time: %s\n", version.BuildTime)
	fmt.Println()

	logger := newLogger()
	slog.SetDefault(logger)

	cfg := loadConfig()

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize Wayfarer: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running Wayfarer: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration from environment variables
func loadConfig() app.Config {
	return app.Config{
		DatabasePath:   environment.StringOr("WAYFARER_DATABASE_PATH", "./wayfarer.db"),
		HTTPAddr:       environment.StringOr("WAYFARER_HTTP_ADDR", ":8080"),
		AllowedOrigins: environment.StringSliceOr("WAYFARER_ALLOWED_ORIGINS", nil),
		ContextTTL:     environment.DurationOr("WAYFARER_CONTEXT_TTL", 0),
		ChatRateLimit:  environment.IntOr("WAYFARER_CHAT_RATE_LIMIT", 0),
		WeatherSeed:    environment.Int64Or("WAYFARER_WEATHER_SEED", 0),
	}
}

// newLogger builds the process-wide structured logger. WAYFARER_LOG_LEVEL
// accepts debug, info, warn, or error; WAYFARER_LOG_FORMAT=json switches to
// JSON output.
func newLogger() *slog.Logger {
	var level slog.Level
	switch environment.StringOr("WAYFARER_LOG_LEVEL", "info") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if environment.StringOr("WAYFARER_LOG_FORMAT", "text") == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
