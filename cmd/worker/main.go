package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/shopcatalog/pkg/app"
	"github.com/ghuser/shopcatalog/pkg/cache"
	"github.com/ghuser/shopcatalog/pkg/config"
	"github.com/ghuser/shopcatalog/pkg/database"
	"github.com/ghuser/shopcatalog/pkg/events"
	"github.com/ghuser/shopcatalog/pkg/logger"
	"github.com/ghuser/shopcatalog/pkg/telemetry"
	catalogEvents "github.com/ghuser/shopcatalog/services/catalog/domain/events"
	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
	"github.com/ghuser/shopcatalog/services/catalog/infrastructure/persistence/postgres"
)

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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.CatalogDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{catalogEvents.TopicProductCreated, catalogEvents.TopicCatalogReseeded}

	createdErrCh, err := a.EventBus.Subscribe(ctx, catalogEvents.TopicProductCreated, handleProductCreated(a))
	if err != nil {
		return err
	}
	drainErrors(ctx, a, catalogEvents.TopicProductCreated, createdErrCh)

	reseededErrCh, err := a.EventBus.Subscribe(ctx, catalogEvents.TopicCatalogReseeded, handleCatalogReseeded(a))
	if err != nil {
		return err
	}
	drainErrors(ctx, a, catalogEvents.TopicCatalogReseeded, reseededErrCh)

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// drainErrors consumes subscriber errors in background so the channel never blocks.
func drainErrors(ctx context.Context, a *app.Application, topic string, errCh <-chan error) {
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", topic,
				"error", err,
			)
		}
	}()
}

// handleProductCreated returns a handler for product.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent id lookups are served from cache.
// The event payload is a notification, not the full view, so the product is
// re-read from the store before caching.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		product, err := repo.GetByID(ctx, evt.ProductID)
		if err != nil {
			// Product may already be gone (reseed wipe); nothing to warm.
			a.Logger.WarnContext(ctx, "skipping cache warm, product not readable",
				"product_id", evt.ProductID, "error", err)
			return nil
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ID:          product.ID,
			Title:       product.Title,
			Slug:        string(product.Slug),
			Description: product.Description,
			Price:       product.Price,
			Stock:       product.Stock,
			Sizes:       product.Sizes,
			Gender:      product.Gender,
			Tags:        product.Tags,
			Images:      models.FlattenImages(product.Images),
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"product_id", evt.ProductID, "slug", evt.Slug)
		}

		return nil
	}
}

// handleCatalogReseeded logs the outcome of a bulk reseed. The API process
// flushes cached views itself, so the worker only records the settlement.
func handleCatalogReseeded(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.CatalogReseededEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "catalog reseeded",
			"wiped", evt.Wiped,
			"created", evt.Created,
			"failed", evt.Failed,
		)
		return nil
	}
}
