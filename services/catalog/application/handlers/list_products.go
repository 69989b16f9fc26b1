package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/shopcatalog/pkg/errhttp"
	"github.com/ghuser/shopcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/shopcatalog/services/catalog/application/services"
)

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute returns a page of flattened product views.
//
//	@Summary		List products
//	@Description	Paginated product listing with images eagerly included
//	@Tags			products
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 10)"
//	@Param			offset	query		int	false	"Records to skip (default 0)"
//	@Success		200		{array}		services.ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	views, err := h.svc.Catalog.FindAll(r.Context(), limit, offset)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, views)
}

// queryInt parses an optional non-negative integer query parameter; zero
// means unset. Writes a 400 and returns false on malformed input.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		httpx.JSONError(w, http.StatusBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}
