package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/storefront/core/cache"
	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/integration/fakestore"
)

// UnknownProduct is the title shown for cart entries that cannot be resolved.
const UnknownProduct = "Unknown Product"

// Source is the remote product API.
type Source interface {
	ListProducts(ctx context.Context, q fakestore.ProductQuery) ([]fakestore.Product, error)
	GetProduct(ctx context.Context, id int) (fakestore.Product, error)
}

type cached[T any] struct {
	value     T
	fetchedAt time.Time
}

// Catalog reads products through a stale-time cache.
type Catalog struct {
	src         Source
	staleTime   time.Duration
	concurrency int
	now         func() time.Time
	logger      *slog.Logger

	listings *cache.LRUCache[fakestore.ProductQuery, cached[[]fakestore.Product]]
	products *cache.LRUCache[int, cached[fakestore.Product]]
}

// Option configures a Catalog.
type Option func(*catalogOptions)

type catalogOptions struct {
	staleTime   time.Duration
	capacity    int
	concurrency int
	now         func() time.Time
	logger      *slog.Logger
}

// WithStaleTime sets how long fetched data is served without refetching.
// Zero disables caching.
func WithStaleTime(d time.Duration) Option {
	return func(o *catalogOptions) {
		if d >= 0 {
			o.staleTime = d
		}
	}
}

// WithCapacity sets the number of listings and products kept in memory.
func WithCapacity(n int) Option {
	return func(o *catalogOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithConcurrency limits parallel product fetches in PriceCart.
func WithConcurrency(n int) Option {
	return func(o *catalogOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *catalogOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the catalog's logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *catalogOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// New returns a catalog reading from src.
func New(src Source, opts ...Option) *Catalog {
	o := catalogOptions{
		staleTime:   5 * time.Minute,
		capacity:    128,
		concurrency: 8,
		now:         time.Now,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Catalog{
		src:         src,
		staleTime:   o.staleTime,
		concurrency: o.concurrency,
		now:         o.now,
		logger:      o.logger.With(logger.Component("catalog")),
		listings:    cache.NewLRUCache[fakestore.ProductQuery, cached[[]fakestore.Product]](o.capacity),
		products:    cache.NewLRUCache[int, cached[fakestore.Product]](o.capacity),
	}
}

// Products lists products for q and applies f locally. An empty sort
// defaults to ascending. Unknown categories are passed through to the API.
func (c *Catalog) Products(ctx context.Context, q fakestore.ProductQuery, f Filter) ([]fakestore.Product, error) {
	if q.Sort == "" {
		q.Sort = fakestore.SortAsc
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if hit, ok := c.listings.Get(q); ok && c.fresh(hit.fetchedAt) {
		return f.Apply(hit.value), nil
	}

	products, err := c.src.ListProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	c.listings.Put(q, cached[[]fakestore.Product]{value: products, fetchedAt: c.now()})
	for _, p := range products {
		c.products.Put(p.ID, cached[fakestore.Product]{value: p, fetchedAt: c.now()})
	}

	return f.Apply(products), nil
}

// Product returns a single product.
func (c *Catalog) Product(ctx context.Context, id int) (fakestore.Product, error) {
	if hit, ok := c.products.Get(id); ok && c.fresh(hit.fetchedAt) {
		return hit.value, nil
	}

	p, err := c.src.GetProduct(ctx, id)
	if err != nil {
		return fakestore.Product{}, err
	}
	c.products.Put(id, cached[fakestore.Product]{value: p, fetchedAt: c.now()})
	return p, nil
}

// Invalidate drops all cached data.
func (c *Catalog) Invalidate() {
	c.listings.Clear()
	c.products.Clear()
}

func (c *Catalog) fresh(fetchedAt time.Time) bool {
	return c.staleTime > 0 && c.now().Sub(fetchedAt) < c.staleTime
}

// Line is a priced cart entry.
type Line struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Known     bool    `json:"known"`
}

// Subtotal returns price times quantity, zero for unknown products.
func (l Line) Subtotal() float64 {
	if !l.Known {
		return 0
	}
	return l.Price * float64(l.Quantity)
}

// Receipt is a priced view of the cart.
type Receipt struct {
	Lines      []Line  `json:"lines"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// PriceCart resolves titles and prices for items. Unresolvable entries get
// the UnknownProduct title and are excluded from TotalPrice but still count
// toward TotalItems. An error is returned only when ctx is done.
func (c *Catalog) PriceCart(ctx context.Context, items cart.Items) (Receipt, error) {
	ids := items.IDs()
	lines := make([]Line, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			lines[i] = c.priceLine(gctx, id, items[id])
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Receipt{}, fmt.Errorf("catalog: price cart: %w", err)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lessID(lines[i].ProductID, lines[j].ProductID)
	})

	r := Receipt{Lines: lines}
	for _, l := range lines {
		r.TotalItems += l.Quantity
		r.TotalPrice += l.Subtotal()
	}
	r.TotalPrice = math.Round(r.TotalPrice*100) / 100
	return r, nil
}

func (c *Catalog) priceLine(ctx context.Context, id string, qty int) Line {
	line := Line{ProductID: id, Title: UnknownProduct, Quantity: qty}

	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return line
	}

	p, err := c.Product(ctx, n)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, fakestore.ErrNotFound) {
			level = slog.LevelDebug
		}
		c.logger.Log(ctx, level, "cart product unavailable",
			logger.ProductID(id), logger.Error(err))
		return line
	}

	line.Title = p.Title
	line.Price = p.Price
	line.Known = true
	return line
}

// lessID orders numeric ids numerically, before any non-numeric ids.
func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
