package cart_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/kv"
)

// flakyStore fails writes while failing is set.
type flakyStore struct {
	*kv.MemoryStore
	mu      sync.Mutex
	failing bool
}

var errWrite = errors.New("quota exceeded")

func (s *flakyStore) setFailing(v bool) {
	s.mu.Lock()
	s.failing = v
	s.mu.Unlock()
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	failing := s.failing
	s.mu.Unlock()
	if failing {
		return errWrite
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func persisted(t *testing.T, store kv.Store) (cart.Items, bool) {
	t.Helper()

	raw, err := store.Get(context.Background(), cart.StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, false
	}
	require.NoError(t, err)

	rec := kv.NewRecord[cart.Items](kv.NewMemoryStore(), cart.StorageKey)
	items, err := rec.Decode(raw)
	require.NoError(t, err)
	return items, true
}

func TestCart_Scenario(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	c := cart.New(store)
	ctx := context.Background()

	state := c.State()
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)

	state = c.AddItem(ctx, "5")
	assert.Equal(t, cart.Items{"5": 1}, state.Items)
	assert.Equal(t, 1, state.TotalItems)

	state = c.AddItem(ctx, "5")
	assert.Equal(t, cart.Items{"5": 2}, state.Items)
	assert.Equal(t, 2, state.TotalItems)

	state = c.RemoveItem(ctx, "5")
	assert.Equal(t, cart.Items{"5": 1}, state.Items)
	assert.Equal(t, 1, state.TotalItems)

	state = c.RemoveItem(ctx, "5")
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)

	items, ok := persisted(t, store)
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestCart_InvariantsHoldForRandomSequences(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	ids := []string{"1", "2", "3", "17"}

	for run := range 50 {
		store := kv.NewMemoryStore()
		c := cart.New(store)
		ctx := context.Background()

		for step := range 100 {
			id := ids[rng.IntN(len(ids))]
			var state cart.State
			if rng.IntN(2) == 0 {
				state = c.AddItem(ctx, id)
			} else {
				state = c.RemoveItem(ctx, id)
			}

			sum := 0
			for key, qty := range state.Items {
				require.Positivef(t, qty, "run %d step %d: %q has zero or negative quantity", run, step, key)
				sum += qty
			}
			require.Equalf(t, sum, state.TotalItems, "run %d step %d", run, step)
			require.Equal(t, state.TotalItems, c.TotalItems())
		}

		items, ok := persisted(t, store)
		if ok {
			assert.Equal(t, c.State().Items, items, "run %d: persisted mirror diverged", run)
		}
	}
}

func TestCart_AddThenRemoveIsIdentity(t *testing.T) {
	t.Parallel()

	starts := []cart.Items{
		{},
		{"5": 1},
		{"5": 3, "9": 1},
		{"1": 1, "2": 2, "3": 3},
	}
	ids := []string{"5", "9", "new", "1"}

	for i, start := range starts {
		for _, id := range ids {
			t.Run(strconv.Itoa(i)+"/"+id, func(t *testing.T) {
				t.Parallel()

				c := cart.New(kv.NewMemoryStore())
				ctx := context.Background()
				before := c.SetCart(start)

				c.AddItem(ctx, id)
				after := c.RemoveItem(ctx, id)

				assert.Equal(t, before, after)
			})
		}
	}
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	c := cart.New(store)

	state := c.RemoveItem(context.Background(), "42")
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)

	_, ok := persisted(t, store)
	assert.False(t, ok, "removing an absent id must not write the store")
}

func TestCart_AddBlankIDIsIgnored(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	c := cart.New(store)

	state := c.AddItem(context.Background(), "  ")
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, store.Len())
}

func TestCart_CheckoutAndClear(t *testing.T) {
	t.Parallel()

	for _, op := range []string{"checkout", "clear"} {
		t.Run(op, func(t *testing.T) {
			t.Parallel()

			for _, start := range []cart.Items{{}, {"5": 2, "7": 1}} {
				store := kv.NewMemoryStore()
				c := cart.New(store)
				ctx := context.Background()

				c.SetCart(start)
				c.AddItem(ctx, "3")

				switch op {
				case "checkout":
					consumed := c.Checkout(ctx)
					want := start.Clone()
					want["3"]++
					assert.Equal(t, want, consumed)
				case "clear":
					c.ClearCart(ctx)
				}

				state := c.State()
				assert.Empty(t, state.Items)
				assert.Equal(t, 0, state.TotalItems)
				assert.True(t, state.IsEmpty())

				_, ok := persisted(t, store)
				assert.False(t, ok, "persisted cart record must be deleted")
			}
		})
	}
}

func TestCart_HydrateRoundTrip(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	ctx := context.Background()

	first := cart.New(store)
	first.AddItem(ctx, "1")
	first.AddItem(ctx, "1")
	first.AddItem(ctx, "20")

	second := cart.New(store)
	state := second.Hydrate(ctx)

	assert.Equal(t, cart.Items{"1": 2, "20": 1}, state.Items)
	assert.Equal(t, 3, state.TotalItems)
}

func TestCart_HydrateFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unparsable":         `{"5":`,
		"array":              `[1,2,3]`,
		"fractional qty":     `{"5":1.5}`,
		"zero qty":           `{"5":0}`,
		"negative qty":       `{"5":-2}`,
		"empty product id":   `{"":1}`,
		"string quantity":    `{"5":"2"}`,
		"plain string value": `"hello"`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := kv.NewMemoryStore()
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, cart.StorageKey, raw))

			c := cart.New(store)
			state := c.Hydrate(ctx)

			assert.Empty(t, state.Items)
			assert.Equal(t, 0, state.TotalItems)

			got, err := store.Get(ctx, cart.StorageKey)
			require.NoError(t, err)
			assert.Equal(t, raw, got, "hydration must not rewrite the store")
		})
	}
}

func TestCart_HydrateAbsent(t *testing.T) {
	t.Parallel()

	c := cart.New(kv.NewMemoryStore())
	state := c.Hydrate(context.Background())

	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
}

func TestCart_PersistenceFailureKeepsMemoryState(t *testing.T) {
	t.Parallel()

	store := &flakyStore{MemoryStore: kv.NewMemoryStore()}
	c := cart.New(store)
	ctx := context.Background()

	c.AddItem(ctx, "5")
	store.setFailing(true)

	state := c.AddItem(ctx, "5")
	assert.Equal(t, cart.Items{"5": 2}, state.Items)

	items, ok := persisted(t, store)
	require.True(t, ok)
	assert.Equal(t, cart.Items{"5": 1}, items, "mirror keeps the last successful write")

	store.setFailing(false)
	c.AddItem(ctx, "6")

	items, ok = persisted(t, store)
	require.True(t, ok)
	assert.Equal(t, cart.Items{"5": 2, "6": 1}, items, "next successful write resynchronises the mirror")
}

func TestCart_StateIsSnapshot(t *testing.T) {
	t.Parallel()

	c := cart.New(kv.NewMemoryStore())
	state := c.AddItem(context.Background(), "5")

	state.Items["5"] = 100
	assert.Equal(t, 1, c.State().Quantity("5"))
}

func TestCart_SetCartClonesInput(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	c := cart.New(store)
	input := cart.Items{"5": 2}

	state := c.SetCart(input)
	input["5"] = 10

	assert.Equal(t, 2, state.TotalItems)
	assert.Equal(t, 2, c.State().Quantity("5"))
	assert.Equal(t, 0, store.Len(), "SetCart must not persist")
}

func TestCart_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	c := cart.New(kv.NewMemoryStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddItem(ctx, "5")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.State().Quantity("5"))
	assert.Equal(t, 50, c.TotalItems())
}

func TestItems_Helpers(t *testing.T) {
	t.Parallel()

	items := cart.Items{"b": 2, "a": 1}
	assert.Equal(t, 3, items.Total())
	assert.Equal(t, []string{"a", "b"}, items.IDs())
	assert.NoError(t, items.Validate())

	assert.ErrorIs(t, cart.Items{"a": 0}.Validate(), cart.ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Items{" ": 1}.Validate(), cart.ErrEmptyProductID)

	var nilItems cart.Items
	assert.NotNil(t, nilItems.Clone())
}
