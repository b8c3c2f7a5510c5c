// Package kvtest provides a contract test suite for kv.Store implementations.
package kvtest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/kv"
)

// Run exercises the kv.Store contract against stores produced by factory.
// factory is called once per subtest and must return an empty store.
func Run(t *testing.T, factory func(t *testing.T) kv.Store) {
	t.Helper()

	t.Run("get missing key returns ErrNotFound", func(t *testing.T) {
		store := factory(t)

		_, err := store.Get(context.Background(), "missing")
		require.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set then get returns value", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "cartItems", `{"5":2}`))

		got, err := store.Get(ctx, "cartItems")
		require.NoError(t, err)
		assert.Equal(t, `{"5":2}`, got)
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "userSession", "first"))
		require.NoError(t, store.Set(ctx, "userSession", "second"))

		got, err := store.Get(ctx, "userSession")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("delete removes key", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "cartItems", "{}"))
		require.NoError(t, store.Delete(ctx, "cartItems"))

		_, err := store.Get(ctx, "cartItems")
		require.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("delete missing key is not an error", func(t *testing.T) {
		store := factory(t)

		require.NoError(t, store.Delete(context.Background(), "missing"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "userSession", "session"))
		require.NoError(t, store.Set(ctx, "cartItems", "cart"))
		require.NoError(t, store.Delete(ctx, "userSession"))

		got, err := store.Get(ctx, "cartItems")
		require.NoError(t, err)
		assert.Equal(t, "cart", got)
	})

	t.Run("concurrent writes to distinct keys", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("key-%d", i)
				assert.NoError(t, store.Set(ctx, key, key))
			}(i)
		}
		wg.Wait()

		for i := range 10 {
			key := fmt.Sprintf("key-%d", i)
			got, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, key, got)
		}
	})
}
