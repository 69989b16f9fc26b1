package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ProductRepository is the persistence contract for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Media references have no independent contract: they are written and removed
// only through their owning product, and replacement is always
// delete-then-reinsert within the operation's transaction.
type ProductRepository interface {
	// Insert persists a new product together with its attached images in one
	// transaction. Returns ErrDuplicateSlug on a slug collision.
	Insert(ctx context.Context, product *models.Product) error

	// GetByID retrieves a product with its images eagerly loaded.
	// Returns ErrProductNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// GetBySlugOrTitle retrieves the first product whose slug equals the
	// lowered term or whose title matches case-insensitively, images included.
	GetBySlugOrTitle(ctx context.Context, term string) (*models.Product, error)

	// FindMany retrieves a page of products with images eagerly loaded,
	// ordered by creation time.
	FindMany(ctx context.Context, opts QueryOpts) ([]*models.Product, error)

	// Preload reads the product and merges the partial changes onto it
	// without writing. Used to validate-and-stage an update before the
	// transaction opens. Returns ErrProductNotFound when absent.
	Preload(ctx context.Context, id uuid.UUID, changes models.ProductChanges) (*models.Product, error)

	// Update persists the staged product inside one transaction. When
	// replaceImages is true the existing image rows are deleted and the
	// staged product's images inserted in their place; otherwise the image
	// collection is left untouched. Any in-transaction failure rolls back
	// and surfaces wrapped in ErrTxAborted.
	Update(ctx context.Context, product *models.Product, replaceImages bool) error

	// Delete removes the product and all its images (explicit two-step
	// cascade inside one transaction).
	Delete(ctx context.Context, product *models.Product) error

	// DeleteAll wipes every product and image row, returning the number of
	// products removed.
	DeleteAll(ctx context.Context) (int64, error)
}
