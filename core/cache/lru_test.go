package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/cache"
)

func TestLRUCache_Basic(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)

	assert.False(t, c.Put("a", 1))
	assert.False(t, c.Put("b", 2))

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// "b" is now least recently used.
	assert.True(t, c.Put("c", 3))
	assert.False(t, c.Contains("b"))
	assert.True(t, c.Contains("a"))
	assert.Equal(t, 2, c.Len())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	assert.False(t, c.Put("a", 10))

	c.Put("c", 3)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.False(t, c.Contains("b"))
}

func TestLRUCache_RemoveAndClear(t *testing.T) {
	t.Parallel()

	var evicted []string
	c := cache.NewLRUCache[string, int](3)
	c.SetEvictCallback(func(key string, _ int) {
		evicted = append(evicted, key)
	})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	v, ok := c.Remove("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = c.Remove("missing")
	assert.False(t, ok)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, []string{"b", "a", "c"}, evicted)
}

func TestLRUCache_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](16)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa((g*31 + i) % 40)
				c.Put(key, i)
				c.Get(key)
				if i%7 == 0 {
					c.Remove(key)
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}
