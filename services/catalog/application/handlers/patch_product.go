package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shopcatalog/pkg/errhttp"
	"github.com/ghuser/shopcatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/shopcatalog/pkg/validator"
	appsvcs "github.com/ghuser/shopcatalog/services/catalog/application/services"
	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
)

// UpdateProductRequest is the request body for PATCH /products/{id}.
// Absent fields are left untouched; a present images list replaces the whole
// media collection.
type UpdateProductRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Slug        *string   `json:"slug" validate:"omitempty,max=255"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       *[]string `json:"sizes" validate:"omitempty,dive,required"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,required"`
	Images      *[]string `json:"images" validate:"omitempty,dive,required"`
} // @name UpdateProductRequest

// PatchProductHandler handles PATCH /products/{id} requests.
type PatchProductHandler struct {
	svc *appsvcs.Services
}

// NewPatchProductHandler returns a PatchProductHandler backed by the given services.
func NewPatchProductHandler(svc *appsvcs.Services) *PatchProductHandler {
	return &PatchProductHandler{svc: svc}
}

// Execute applies a partial update; when a new images list is supplied the
// replacement happens atomically with the attribute changes.
//
//	@Summary		Update product
//	@Description	Partial update; a supplied images list replaces the collection atomically
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product id (UUID)"
//	@Param			request	body		UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	services.ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products/{id} [patch]
func (h *PatchProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Catalog.Update(r.Context(), id, models.ProductChanges{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		ImageURLs:   req.Images,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
