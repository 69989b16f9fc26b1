package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the parent aggregate of the catalog bounded context. It
// exclusively owns its Images: the aggregate is created, replaced, and
// deleted as one consistency unit.
type Product struct {
	ID          uuid.UUID
	Title       string
	Slug        Slug
	Description string
	Price       float64
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []ProductImage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductAttrs are the business attributes supplied on creation. The catalog
// core persists them as-is beyond slug normalization.
type ProductAttrs struct {
	Title       string
	Slug        string // optional; derived from Title when empty
	Description string
	Price       float64
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	ImageURLs   []string
}

// ProductChanges carries a partial update. Nil fields are left untouched;
// a non-nil ImageURLs replaces the entire image collection.
type ProductChanges struct {
	Title       *string
	Slug        *string
	Description *string
	Price       *float64
	Stock       *int
	Sizes       *[]string
	Gender      *string
	Tags        *[]string
	ImageURLs   *[]string
}

// NewProduct constructs a Product aggregate with a generated ID, normalized
// slug, and its image entities attached but not yet persisted.
func NewProduct(attrs ProductAttrs) (*Product, error) {
	slug, err := NewSlug(attrs.Slug, attrs.Title)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	now := time.Now().UTC()
	return &Product{
		ID:          id,
		Title:       attrs.Title,
		Slug:        slug,
		Description: attrs.Description,
		Price:       attrs.Price,
		Stock:       attrs.Stock,
		Sizes:       attrs.Sizes,
		Gender:      attrs.Gender,
		Tags:        attrs.Tags,
		Images:      NewProductImages(id, attrs.ImageURLs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply merges non-nil changes onto p without touching the store. The image
// list is not applied here: image replacement happens inside the update
// transaction, never as part of attribute staging.
func (p *Product) Apply(changes ProductChanges) error {
	if changes.Title != nil {
		p.Title = *changes.Title
	}
	if changes.Slug != nil {
		slug, err := NewSlug(*changes.Slug, p.Title)
		if err != nil {
			return err
		}
		p.Slug = slug
	}
	if changes.Description != nil {
		p.Description = *changes.Description
	}
	if changes.Price != nil {
		p.Price = *changes.Price
	}
	if changes.Stock != nil {
		p.Stock = *changes.Stock
	}
	if changes.Sizes != nil {
		p.Sizes = *changes.Sizes
	}
	if changes.Gender != nil {
		p.Gender = *changes.Gender
	}
	if changes.Tags != nil {
		p.Tags = *changes.Tags
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// ImageURLs returns the flattened view of the owned image collection.
func (p *Product) ImageURLs() []string {
	return FlattenImages(p.Images)
}
