package handlers

import (
	"net/http"

	"github.com/ghuser/shopcatalog/pkg/errhttp"
	"github.com/ghuser/shopcatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/shopcatalog/pkg/validator"
	appsvcs "github.com/ghuser/shopcatalog/services/catalog/application/services"
	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255" example:"Red Shoe"`
	Slug        string   `json:"slug" validate:"omitempty,max=255" example:"red-shoe"`
	Description string   `json:"description" validate:"omitempty"`
	Price       float64  `json:"price" validate:"omitempty,gte=0" example:"129.99"`
	Stock       int      `json:"stock" validate:"omitempty,gte=0" example:"12"`
	Sizes       []string `json:"sizes" validate:"omitempty,dive,required"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex" example:"men"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
} // @name CreateProductRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product together with its media references.
//
//	@Summary		Create product
//	@Description	Creates a product and its image references as one consistent unit
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	services.ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Catalog.Create(r.Context(), models.ProductAttrs{
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

	httpx.JSON(w, http.StatusCreated, view)
}
