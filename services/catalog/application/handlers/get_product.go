package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shopcatalog/pkg/errhttp"
	"github.com/ghuser/shopcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/shopcatalog/services/catalog/application/services"
)

// GetProductHandler handles GET /products/{term} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute looks a product up by opaque id, slug, or title and returns the
// flattened view.
//
//	@Summary		Get product
//	@Description	Finds one product by id, slug, or title (exact match)
//	@Tags			products
//	@Produce		json
//	@Param			term	path		string	true	"Product id, slug, or title"
//	@Success		200		{object}	services.ProductView
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{term} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")

	view, err := h.svc.Catalog.FindOnePlain(r.Context(), term)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
