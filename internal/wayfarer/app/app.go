// Package app assembles the backend: storage, knowledge tables, the weather
// oracle, the assistant, the HTTP server, and the background context sweep.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wayfarer-app/wayfarer/common/retry"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/api"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/assistant"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/knowledge"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/store"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/weather"
)

// contextSweepSchedule is how often idle conversation contexts are evicted.
const contextSweepSchedule = "@every 1m"

// Config carries everything the app needs to start, typically assembled from
// the environment by the entrypoint.
type Config struct {
	// DatabasePath is the sqlite file path.
	DatabasePath string
	// HTTPAddr is the API listen address.
	HTTPAddr string
	// AllowedOrigins is the CORS allowlist.
	AllowedOrigins []string
	// ContextTTL bounds idle conversation lifetime. Zero means the
	// assistant's default.
	ContextTTL time.Duration
	// ChatRateLimit caps assistant turns per conversation per minute.
	ChatRateLimit int
	// WeatherSeed seeds the synthetic weather oracle. Zero seeds from the
	// clock.
	WeatherSeed int64
}

// App owns the wired components and their lifecycle.
type App struct {
	cfg       Config
	store     *store.Store
	assistant *assistant.Assistant
	server    *api.Server
	scheduler *cron.Cron
	logger    *slog.Logger
}

// New wires the application. The store open is retried with backoff so a
// slow volume mount at boot does not kill the process.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var st *store.Store
	err := retry.Do(ctx, retry.DefaultConfig, func() error {
		var err error
		st, err = store.New(cfg.DatabasePath)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("app: open store: %w", err)
	}

	tables, err := knowledge.Load()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("app: load knowledge tables: %w", err)
	}

	as := assistant.New(tables, weather.New(cfg.WeatherSeed), assistant.Config{
		ContextTTL: cfg.ContextTTL,
		Seed:       cfg.WeatherSeed,
	}, logger)

	srv := api.New(st, as, api.Config{
		Addr:           cfg.HTTPAddr,
		AllowedOrigins: cfg.AllowedOrigins,
		ChatRateLimit:  cfg.ChatRateLimit,
	}, logger)

	a := &App{
		cfg:       cfg,
		store:     st,
		assistant: as,
		server:    srv,
		scheduler: cron.New(),
		logger:    logger,
	}

	if _, err := a.scheduler.AddFunc(contextSweepSchedule, a.sweepContexts); err != nil {
		st.Close()
		return nil, fmt.Errorf("app: schedule context sweep: %w", err)
	}

	return a, nil
}

// Run starts the server and the background scheduler, then blocks until the
// context is cancelled or a termination signal arrives.
func (a *App) Run(ctx context.Context) error {
	if err := a.server.Start(); err != nil {
		return fmt.Errorf("app: start server: %w", err)
	}
	a.scheduler.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		a.logger.Info("app: shutdown signal", "signal", s.String())
	case <-ctx.Done():
		a.logger.Info("app: context cancelled")
	}

	return a.Stop()
}

// Stop shuts everything down in reverse start order: scheduler, HTTP server,
// then the store.
func (a *App) Stop() error {
	cronCtx := a.scheduler.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("app: server shutdown", "err", err)
	}

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("app: close store: %w", err)
	}

	a.logger.Info("app: stopped")
	return nil
}

// sweepContexts evicts idle conversation contexts. Runs on the cron schedule.
func (a *App) sweepContexts() {
	if n := a.assistant.EvictStaleContexts(time.Now()); n > 0 {
		a.logger.Info("app: evicted stale conversations", "count", n)
	}
}
