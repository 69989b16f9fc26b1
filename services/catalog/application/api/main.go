package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shopcatalog/pkg/app"
	"github.com/ghuser/shopcatalog/pkg/auth"
	"github.com/ghuser/shopcatalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/shopcatalog/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
// Reads are public; create/update/remove/reseed sit behind the session gate.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
		r.Get("/{term}", handlers.NewGetProductHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Patch("/{id}", handlers.NewPatchProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Post("/seed", handlers.NewPostSeedHandler(svcs).Execute)
	})
}
