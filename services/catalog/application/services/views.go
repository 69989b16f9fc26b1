package services

import (
	"github.com/google/uuid"

	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
)

// ProductView is the external representation of a product: the media
// references are flattened to their URL strings. It is the only shape that
// leaves the catalog core.
type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	Gender      string    `json:"gender"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
}

// NewProductView flattens a product aggregate into its external shape.
func NewProductView(p *models.Product) *ProductView {
	return &ProductView{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug.String(),
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      p.ImageURLs(),
	}
}
