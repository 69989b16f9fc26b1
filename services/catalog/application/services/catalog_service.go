package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	pkgcache "github.com/ghuser/shopcatalog/pkg/cache"
	"github.com/ghuser/shopcatalog/pkg/events"
	"github.com/ghuser/shopcatalog/pkg/logger"
	catalogdomain "github.com/ghuser/shopcatalog/services/catalog/domain"
	domainevents "github.com/ghuser/shopcatalog/services/catalog/domain/events"
	"github.com/ghuser/shopcatalog/services/catalog/domain/models"
	"github.com/ghuser/shopcatalog/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/shopcatalog/services/catalog/domain/services"
)

const (
	defaultListLimit = 10

	// defaultSeedWidth bounds the reseed fan-out so a large dataset cannot
	// overwhelm the store with concurrent inserts.
	defaultSeedWidth = 8
)

// ErrInternal is what callers see for unclassified storage failures; the full
// detail is logged server-side and never leaves the core.
var ErrInternal = errors.New("unexpected error, check server logs")

// CatalogService orchestrates the product aggregate: create, lookup, paginated
// listing, transactional update, cascading remove, and bulk reseed. It is the
// only component the HTTP layer and the seed job invoke directly.
// Id-resolved reads are served from Redis cache when available.
type CatalogService struct {
	repo      repositories.ProductRepository
	cache     *pkgcache.ProductCache
	bus       *events.EventBus
	log       logger.Logger
	seedWidth int
}

// NewCatalogService wires the service with its repository and optional cache
// and event bus (both may be nil). seedWidth bounds the reseed fan-out;
// values < 1 fall back to the default.
func NewCatalogService(
	repo repositories.ProductRepository,
	productCache *pkgcache.ProductCache,
	bus *events.EventBus,
	log logger.Logger,
	seedWidth int,
) *CatalogService {
	if seedWidth < 1 {
		seedWidth = defaultSeedWidth
	}
	return &CatalogService{
		repo:      repo,
		cache:     productCache,
		bus:       bus,
		log:       log,
		seedWidth: seedWidth,
	}
}

// Create builds the product aggregate with its image entities attached and
// persists everything in one store call. A slug collision surfaces as
// ErrDuplicateSlug; any other store failure is logged and surfaced opaque.
func (s *CatalogService) Create(ctx context.Context, attrs models.ProductAttrs) (*ProductView, error) {
	product, err := models.NewProduct(attrs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	if err := domainsvcs.ValidateProductForPersist(product); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, s.classify(ctx, err)
	}
	return NewProductView(product), nil
}

// FindAll returns a page of flattened views. limit defaults to 10 and offset
// to 0 when unspecified; no upper bound is enforced here (caller policy).
func (s *CatalogService) FindAll(ctx context.Context, limit, offset int) ([]*ProductView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	products, err := s.repo.FindMany(ctx, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		return nil, s.classify(ctx, err)
	}
	views := make([]*ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views, nil
}

// FindOne resolves the term once — opaque id vs slug/title — and dispatches to
// the matching query strategy. Returns the raw aggregate for internal
// composition; external callers want FindOnePlain.
func (s *CatalogService) FindOne(ctx context.Context, term string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	switch t := catalogdomain.ResolveTerm(term); t.Kind {
	case catalogdomain.ByID:
		product, err = s.repo.GetByID(ctx, t.ID)
	default:
		product, err = s.repo.GetBySlugOrTitle(ctx, t.Text)
	}
	if err != nil {
		return nil, s.classify(ctx, err)
	}
	return product, nil
}

// FindOnePlain is FindOne with the media references flattened to URL strings,
// the only externally visible shape. Id-resolved lookups read through the
// cache; the cache is warmed asynchronously on miss.
func (s *CatalogService) FindOnePlain(ctx context.Context, term string) (*ProductView, error) {
	t := catalogdomain.ResolveTerm(term)
	if t.Kind == catalogdomain.ByID && s.cache != nil {
		if cached, err := s.cache.Get(ctx, t.ID); err == nil {
			return viewFromCache(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "product cache read failed", "error", err)
		}
	}

	product, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}
	view := NewProductView(product)
	s.warmCache(view)
	return view, nil
}

// Update stages the change set onto the persisted product (NotFound surfaces
// before any transaction opens), then runs the replacement transaction: when
// a new media list is present the old image rows are deleted and the new ones
// inserted, all-or-nothing. The returned view is re-read from committed
// state, never assembled from the staged aggregate.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, changes models.ProductChanges) (*ProductView, error) {
	staged, err := s.repo.Preload(ctx, id, changes)
	if err != nil {
		return nil, s.classify(ctx, err)
	}

	replaceImages := changes.ImageURLs != nil
	if replaceImages {
		staged.Images = models.NewProductImages(staged.ID, *changes.ImageURLs)
	}
	if err := domainsvcs.ValidateProductForPersist(staged); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Update(ctx, staged, replaceImages); err != nil {
		return nil, s.classify(ctx, err)
	}
	s.invalidate(ctx, id)
	return s.FindOnePlain(ctx, id.String())
}

// Remove looks the product up (NotFound check) and deletes the aggregate;
// the cascade to its media references is mandatory, not cleanup.
func (s *CatalogService) Remove(ctx context.Context, id uuid.UUID) error {
	product, err := s.FindOne(ctx, id.String())
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, product); err != nil {
		return s.classify(ctx, err)
	}
	s.invalidate(ctx, id)
	return nil
}

// DeleteAll wipes the catalog and reports how many products were removed.
func (s *CatalogService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, s.classify(ctx, err)
	}
	if s.cache != nil {
		if err := s.cache.Flush(ctx); err != nil {
			s.log.WarnContext(ctx, "product cache flush failed", "error", err)
		}
	}
	return count, nil
}

// Reseed wipes the store, then creates one product per dataset entry
// concurrently on a bounded fan-out and waits for every create to settle.
// Failed entries are reported joined; already-created entries are not
// compensated, so a partial failure leaves a visibly mixed state rather than
// a silent one.
func (s *CatalogService) Reseed(ctx context.Context, dataset []models.ProductAttrs) error {
	wiped, err := s.DeleteAll(ctx)
	if err != nil {
		return err
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	g := &errgroup.Group{}
	g.SetLimit(s.seedWidth)
	for _, attrs := range dataset {
		g.Go(func() error {
			if _, err := s.Create(ctx, attrs); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("seed %q: %w", attrs.Title, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() // every create settles; errors were collected above

	s.publishReseeded(ctx, wiped, len(dataset)-len(failures), len(failures))
	return errors.Join(failures...)
}

// classify translates store-level errors into the catalog taxonomy before
// they leave the core. Unclassified failures are logged with full detail and
// surfaced opaque.
func (s *CatalogService) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrDuplicateSlug),
		errors.Is(err, catalogdomain.ErrInvalidProduct):
		return err
	default:
		s.log.ErrorContext(ctx, "catalog store failure", "error", err)
		return ErrInternal
	}
}

// warmCache stores the flattened view asynchronously; warming is best-effort.
func (s *CatalogService) warmCache(view *ProductView) {
	if s.cache == nil {
		return
	}
	go func() {
		_ = s.cache.Set(context.Background(), cacheFromView(view))
	}()
}

func (s *CatalogService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "product cache invalidate failed", "product_id", id, "error", err)
	}
}

func (s *CatalogService) publishReseeded(ctx context.Context, wiped int64, created, failed int) {
	if s.bus == nil {
		return
	}
	event := domainevents.CatalogReseededEvent{
		EventID:    uuid.New(),
		Version:    1,
		Wiped:      wiped,
		Created:    created,
		Failed:     failed,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal reseed event", "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.bus.Publish(ctx, domainevents.TopicCatalogReseeded, msg); err != nil {
		s.log.WarnContext(ctx, "publish reseed event failed", "error", err)
	}
}

func viewFromCache(c *pkgcache.CachedProduct) *ProductView {
	return &ProductView{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		Price:       c.Price,
		Stock:       c.Stock,
		Sizes:       c.Sizes,
		Gender:      c.Gender,
		Tags:        c.Tags,
		Images:      c.Images,
	}
}

func cacheFromView(v *ProductView) *pkgcache.CachedProduct {
	return &pkgcache.CachedProduct{
		ID:          v.ID,
		Title:       v.Title,
		Slug:        v.Slug,
		Description: v.Description,
		Price:       v.Price,
		Stock:       v.Stock,
		Sizes:       v.Sizes,
		Gender:      v.Gender,
		Tags:        v.Tags,
		Images:      v.Images,
	}
}
