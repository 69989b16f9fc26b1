package services

import (
	"github.com/ghuser/shopcatalog/pkg/app"
	"github.com/ghuser/shopcatalog/pkg/cache"
	"github.com/ghuser/shopcatalog/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	seedWidth := 0
	if a.Config != nil {
		seedWidth = a.Config.SeedConcurrency
	}
	return &Services{
		Catalog: NewCatalogService(repo, productCache, a.EventBus, a.Logger, seedWidth),
	}
}
