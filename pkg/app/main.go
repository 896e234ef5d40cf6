package app

import (
	"github.com/ghuser/itemcatalog/pkg/cache"
	"github.com/ghuser/itemcatalog/pkg/config"
	"github.com/ghuser/itemcatalog/pkg/database"
	"github.com/ghuser/itemcatalog/pkg/events"
	"github.com/ghuser/itemcatalog/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// With STORAGE_DRIVER=memory, Db, EventBus and Redis are nil and services fall
// back to in-process implementations.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}

// IsProduction reports whether the application runs with ENVIRONMENT=production.
func (a *Application) IsProduction() bool {
	return a.Config != nil && a.Config.Environment == config.EnvProduction
}
