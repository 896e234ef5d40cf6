package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/itemcatalog/docs/swagger"
	"github.com/ghuser/itemcatalog/pkg/app"
	"github.com/ghuser/itemcatalog/pkg/cache"
	"github.com/ghuser/itemcatalog/pkg/config"
	"github.com/ghuser/itemcatalog/pkg/database"
	"github.com/ghuser/itemcatalog/pkg/events"
	"github.com/ghuser/itemcatalog/pkg/httpx"
	"github.com/ghuser/itemcatalog/pkg/logger"
	"github.com/ghuser/itemcatalog/pkg/telemetry"
	itemApi "github.com/ghuser/itemcatalog/services/item/application/api"
)

// @title			Item Catalog API
// @version		1.0
// @description	Classified-ad item catalog: create items, look them up by id or seller, read engagement statistics.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api/1
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig, closeInfra, err := connect(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect infrastructure", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer closeInfra()

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(healthChecks(appConfig)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api/1", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// connect opens the infrastructure selected by cfg.StorageDriver. With the
// memory driver nothing is dialled and the returned Application only carries
// config and logger. The returned func releases everything that was opened.
func connect(ctx context.Context, cfg *config.Config, log logger.Logger) (*app.Application, func(), error) {
	a := &app.Application{Config: cfg, Logger: log}
	if cfg.UsesMemoryStorage() {
		log.Warn("using in-memory storage; items are lost on restart")
		return a, func() {}, nil
	}

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	closers = append(closers, pool.Close)
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(pool.DB(), cfg, log)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("event bus: %w", err)
	}
	closers = append(closers, func() { _ = eventBus.Close() })

	if err := eventBus.StartForwarder(ctx); err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("event forwarder: %w", err)
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	closers = append(closers, func() { _ = redisClient.Close() })
	log.Info("redis connected")

	a.Db = pool
	a.EventBus = eventBus
	a.Redis = redisClient
	return a, closeAll, nil
}

// healthChecks leaves checkers nil for infrastructure that is not in use so
// the health endpoint reports them as disabled.
func healthChecks(a *app.Application) httpx.HealthChecks {
	var checks httpx.HealthChecks
	if a.Db != nil {
		checks.Database = a.Db
	}
	if a.Redis != nil {
		checks.Redis = a.Redis
	}
	if a.EventBus != nil {
		checks.EventBus = a.EventBus
	}
	return checks
}

// registerRoutes mounts all service routes under /api/1.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	itemApi.ItemRoutes(r, a)
}
