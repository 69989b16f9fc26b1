package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/shopcatalog/pkg/cache"
	"github.com/ghuser/shopcatalog/pkg/config"
	"github.com/ghuser/shopcatalog/pkg/database"
	"github.com/ghuser/shopcatalog/pkg/events"
	"github.com/ghuser/shopcatalog/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every service's route registration during server initialization.
//
// Logging: Logger is backed by a trace-aware handler — prefer slog's context
// methods so trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "replacing images", "product_id", id)
//
// Use Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}
