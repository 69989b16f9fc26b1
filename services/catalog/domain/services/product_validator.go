// Package services contains stateless domain services for the catalog bounded
// context. They enforce business rules that operate purely on domain types and
// have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
)

// ValidateProductForPersist checks a fully-constructed Product aggregate before
// it is handed to the repository. It assumes the product was built via
// models.NewProduct or staged via Preload, and adds cross-field checks the
// constructors cannot see.
func ValidateProductForPersist(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product cannot be nil")
	}
	if p.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	for _, img := range p.Images {
		if img.ProductID != p.ID {
			return fmt.Errorf("image %s is not owned by product %s", img.ID, p.ID)
		}
		if strings.TrimSpace(img.URL) == "" {
			return fmt.Errorf("image url must not be blank")
		}
	}
	return nil
}
