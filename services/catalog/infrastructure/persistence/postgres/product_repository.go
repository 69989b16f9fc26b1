package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shopcatalog/pkg/database"
	"github.com/ghuser/shopcatalog/pkg/events"
	catalogdomain "github.com/ghuser/shopcatalog/services/catalog/domain"
	domainevents "github.com/ghuser/shopcatalog/services/catalog/domain/events"
	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
	"github.com/ghuser/shopcatalog/services/catalog/domain/repositories"
)

const pgUniqueViolation = "23505"

const productColumns = `id, title, slug, description, price, stock, sizes, gender, tags, created_at, updated_at`

// ProductRepository implements repositories.ProductRepository against
// PostgreSQL. Product and image rows are always written inside one
// transaction so the aggregate is never persisted half-way.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given
// connection pool and event bus. The bus is used for transactional outbox
// publishing of ProductCreatedEvents; pass nil to disable publishing.
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Insert persists a new product and its images in one transaction and
// publishes a ProductCreatedEvent within the same transaction.
// Returns ErrDuplicateSlug on unique constraint violations.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertProductRow(ctx, tx, product); err != nil {
			return err
		}
		if err := insertImageRows(ctx, tx, product.ID, product.Images); err != nil {
			return err
		}
		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
	if err != nil && !isClassified(err) {
		return fmt.Errorf("%w: %w", catalogdomain.ErrTxAborted, err)
	}
	return err
}

// GetByID retrieves a product with its images eagerly loaded.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return r.scanWithImages(ctx, row)
}

// GetBySlugOrTitle retrieves the first product matching the term: slug
// matching is lowered-exact, title matching is case-insensitive. The
// classification of the term happened before this call; no id lookup is
// attempted here.
func (r *ProductRepository) GetBySlugOrTitle(ctx context.Context, term string) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE UPPER(title) = UPPER($1) OR slug = LOWER($1)
		 LIMIT 1`, term)
	return r.scanWithImages(ctx, row)
}

// FindMany retrieves a page of products, images included, in creation order.
func (r *ProductRepository) FindMany(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at, id
		 LIMIT $1 OFFSET $2`, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	ids := make([]uuid.UUID, 0, opts.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	if len(products) == 0 {
		return products, nil
	}

	images, err := r.imagesForOwners(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		p.Images = images[p.ID]
	}
	return products, nil
}

// Preload reads the persisted product, merges the partial changes onto it,
// and returns the staged aggregate without writing. Callers use this to
// validate existence before opening the update transaction.
func (r *ProductRepository) Preload(ctx context.Context, id uuid.UUID, changes models.ProductChanges) (*models.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Apply(changes); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	return product, nil
}

// Update persists the staged product inside one transaction. With
// replaceImages set, the existing image rows are deleted first and the staged
// images inserted in their place; otherwise the image collection is left
// untouched. Attribute-only updates still run inside the transactional
// envelope for uniform failure handling. Any in-transaction failure rolls
// back and surfaces wrapped in ErrTxAborted unless it already carries a
// domain classification.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product, replaceImages bool) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE products
			 SET title = $2, slug = $3, description = $4, price = $5, stock = $6,
			     sizes = $7, gender = $8, tags = $9, updated_at = $10
			 WHERE id = $1`,
			product.ID, product.Title, product.Slug.String(), product.Description,
			product.Price, product.Stock, jsonStrings(product.Sizes),
			product.Gender, jsonStrings(product.Tags), product.UpdatedAt)
		if err != nil {
			return mapPgError(err, "update product")
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if affected == 0 {
			// Row vanished between preload and transaction open.
			return catalogdomain.ErrProductNotFound
		}

		if replaceImages {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM product_images WHERE product_id = $1`, product.ID); err != nil {
				return fmt.Errorf("delete images: %w", err)
			}
			if err := insertImageRows(ctx, tx, product.ID, product.Images); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !isClassified(err) {
		return fmt.Errorf("%w: %w", catalogdomain.ErrTxAborted, err)
	}
	return err
}

// Delete removes the product and all its images. The cascade is an explicit
// two-step delete inside one transaction rather than a reliance on the FK
// cascade, so the behavior holds on stores without that feature.
func (r *ProductRepository) Delete(ctx context.Context, product *models.Product) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM product_images WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("delete images: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM products WHERE id = $1`, product.ID); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		return nil
	})
	if err != nil && !isClassified(err) {
		return fmt.Errorf("%w: %w", catalogdomain.ErrTxAborted, err)
	}
	return err
}

// DeleteAll wipes both tables and reports how many products were removed.
func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	var affected int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_images`); err != nil {
			return fmt.Errorf("delete all images: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM products`)
		if err != nil {
			return fmt.Errorf("delete all products: %w", err)
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete all products: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  product.ID,
		Slug:       product.Slug.String(),
		Title:      product.Title,
		Images:     product.ImageURLs(),
		OccurredAt: product.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicProductCreated, msg)
}

// scanWithImages finishes a single-product query by attaching the owned images.
func (r *ProductRepository) scanWithImages(ctx context.Context, row *sql.Row) (*models.Product, error) {
	product, err := scanProduct(row)
	if err != nil {
		return nil, err
	}
	images, err := r.imagesForOwners(ctx, []uuid.UUID{product.ID})
	if err != nil {
		return nil, err
	}
	product.Images = images[product.ID]
	return product, nil
}

// imagesForOwners loads image rows for the given product ids, ordered by
// position, grouped by owner.
func (r *ProductRepository) imagesForOwners(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.ProductImage, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, product_id, url, position
		 FROM product_images
		 WHERE product_id = ANY($1)
		 ORDER BY product_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make(map[uuid.UUID][]models.ProductImage, len(ids))
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.Position); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		out[img.ProductID] = append(out[img.ProductID], img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate images: %w", err)
	}
	return out, nil
}

func insertProductRow(ctx context.Context, tx *sql.Tx, p *models.Product) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Title, p.Slug.String(), p.Description, p.Price, p.Stock,
		jsonStrings(p.Sizes), p.Gender, jsonStrings(p.Tags), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapPgError(err, "insert product")
	}
	return nil
}

func insertImageRows(ctx context.Context, tx *sql.Tx, ownerID uuid.UUID, images []models.ProductImage) error {
	for _, img := range images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product_images (id, product_id, url, position)
			 VALUES ($1, $2, $3, $4)`,
			img.ID, ownerID, img.URL, img.Position); err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
	}
	return nil
}

// scanProduct maps one row onto a Product. Works for both *sql.Row and
// *sql.Rows via the shared Scan signature.
func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	var (
		p     models.Product
		sizes []byte
		tags  []byte
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Price, &p.Stock,
		&sizes, &p.Gender, &tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
		return nil, fmt.Errorf("decode sizes: %w", err)
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

// jsonStrings encodes a string slice for a JSONB column, normalizing nil to [].
func jsonStrings(s []string) []byte {
	if s == nil {
		s = []string{}
	}
	b, _ := json.Marshal(s)
	return b
}

// mapPgError translates driver errors into domain sentinels; unique
// violations carry the constraint detail from Postgres.
func mapPgError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", catalogdomain.ErrDuplicateSlug, pgErr.Detail)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isClassified reports whether err already carries a domain classification.
func isClassified(err error) bool {
	return errors.Is(err, catalogdomain.ErrProductNotFound) ||
		errors.Is(err, catalogdomain.ErrDuplicateSlug) ||
		errors.Is(err, catalogdomain.ErrInvalidProduct)
}

var _ repositories.ProductRepository = (*ProductRepository)(nil)
