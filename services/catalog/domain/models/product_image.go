package models

import "github.com/google/uuid"

// ProductImage is a media reference owned by exactly one Product. It never
// outlives its parent and is never looked up on its own: outside the catalog
// core only the flattened URL strings are visible.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	URL       string
	Position  int // ordering within the owning product's image list
}

// NewProductImages builds ordered, not-yet-persisted image entities for the
// given owner. URLs are treated as fungible entries: replacing a product's
// images is always delete-then-reinsert, so fresh IDs are assigned here.
func NewProductImages(ownerID uuid.UUID, urls []string) []ProductImage {
	images := make([]ProductImage, len(urls))
	for i, u := range urls {
		images[i] = ProductImage{
			ID:        uuid.New(),
			ProductID: ownerID,
			URL:       u,
			Position:  i,
		}
	}
	return images
}

// FlattenImages reduces image entities to their URL strings, preserving order.
func FlattenImages(images []ProductImage) []string {
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return urls
}
