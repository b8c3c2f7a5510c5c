package cart

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
)

// Cart is the cart state machine. Safe for concurrent use; every operation
// runs to completion under the cart's lock.
type Cart struct {
	mu     sync.Mutex
	items  Items
	total  int
	record *kv.Record[Items]
	logger *slog.Logger
}

// Option configures a Cart.
type Option func(*Cart)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cart) {
		if log != nil {
			c.logger = log
		}
	}
}

// New returns an empty cart mirrored to store.
func New(store kv.Store, opts ...Option) *Cart {
	c := &Cart{
		items: make(Items),
		record: kv.NewRecord[Items](store, StorageKey,
			kv.WithValidator(Items.Validate),
			kv.WithDefault(func() Items { return make(Items) }),
		),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("cart"))
	return c
}

// Hydrate loads the persisted cart. Absent, malformed or unreadable records
// produce an empty cart. Hydration never writes back to the store.
func (c *Cart) Hydrate(ctx context.Context) State {
	items, status, err := c.record.Load(ctx)
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "cart record unavailable, starting empty",
			logger.StorageKey(StorageKey), logger.Error(err))
	case status == kv.StatusMalformed:
		c.logger.DebugContext(ctx, "cart record malformed, starting empty",
			logger.StorageKey(StorageKey))
	}
	return c.SetCart(items)
}

// SetCart replaces the items wholesale and recomputes the total.
// It does not persist.
func (c *Cart) SetCart(items Items) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items.Clone()
	c.total = c.items.Total()
	return c.snapshot()
}

// AddItem increments the quantity of id by one, creating the entry at 1.
// Blank ids are ignored.
func (c *Cart) AddItem(ctx context.Context, id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		return c.snapshot()
	}

	c.items[id]++
	c.total = c.items.Total()
	c.persist(ctx, "add_item")
	return c.snapshot()
}

// RemoveItem decrements the quantity of id by one and deletes the entry when
// it reaches zero. Absent ids are a no-op and do not touch the store.
func (c *Cart) RemoveItem(ctx context.Context, id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty, ok := c.items[id]
	if !ok || qty <= 0 {
		return c.snapshot()
	}

	if qty == 1 {
		delete(c.items, id)
	} else {
		c.items[id] = qty - 1
	}
	c.total = c.items.Total()
	c.persist(ctx, "remove_item")
	return c.snapshot()
}

// Checkout empties the cart and deletes the persisted record.
// It returns the items that were in the cart. No order is submitted anywhere.
func (c *Cart) Checkout(ctx context.Context) Items {
	return c.reset(ctx, "checkout")
}

// ClearCart empties the cart and deletes the persisted record.
// Same effect as Checkout; used on logout.
func (c *Cart) ClearCart(ctx context.Context) {
	c.reset(ctx, "clear")
}

// State returns a snapshot of the cart.
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// TotalItems returns the derived item count.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *Cart) reset(ctx context.Context, action string) Items {
	c.mu.Lock()
	defer c.mu.Unlock()

	consumed := c.items
	c.items = make(Items)
	c.total = 0

	if err := c.record.Delete(ctx); err != nil {
		c.logger.WarnContext(ctx, "cart record delete failed",
			logger.Action(action), logger.StorageKey(StorageKey), logger.Error(err))
	}
	return consumed
}

// persist must be called with c.mu held.
func (c *Cart) persist(ctx context.Context, action string) {
	if err := c.record.Save(ctx, c.items); err != nil {
		c.logger.WarnContext(ctx, "cart persistence failed, store may be stale",
			logger.Action(action), logger.StorageKey(StorageKey), logger.Error(err))
	}
}

// snapshot must be called with c.mu held.
func (c *Cart) snapshot() State {
	return State{Items: c.items.Clone(), TotalItems: c.total}
}
