package handlers

import (
	"net/http"

	"github.com/ghuser/shopcatalog/pkg/errhttp"
	"github.com/ghuser/shopcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/shopcatalog/services/catalog/application/services"
	"github.com/ghuser/shopcatalog/services/catalog/seed"
)

// SeedResponse is returned when the reseed settles without failures.
type SeedResponse struct {
	Message string `json:"message" example:"seed executed"`
} // @name SeedResponse

// PostSeedHandler handles POST /seed requests.
type PostSeedHandler struct {
	svc *appsvcs.Services
}

// NewPostSeedHandler returns a PostSeedHandler backed by the given services.
func NewPostSeedHandler(svc *appsvcs.Services) *PostSeedHandler {
	return &PostSeedHandler{svc: svc}
}

// Execute wipes the catalog and re-creates the embedded dataset. Every entry
// settles before this returns; entries that failed are reported, entries that
// succeeded stay.
//
//	@Summary		Reseed catalog
//	@Description	Wipes the catalog and re-creates it from the embedded dataset
//	@Tags			seed
//	@Produce		json
//	@Success		200	{object}	SeedResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/seed [post]
func (h *PostSeedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Catalog.Reseed(r.Context(), seed.Dataset()); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SeedResponse{Message: "seed executed"})
}
