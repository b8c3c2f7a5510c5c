// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.NewLRUCache[string, []fakestore.Product](64)
//	c.Put("electronics:asc", products)
//
//	if products, ok := c.Get("electronics:asc"); ok {
//		// ...
//	}
//
// When the cache is full, Put evicts the least recently used entry. Get
// counts as a use. An optional eviction callback runs for entries dropped
// by capacity, Remove or Clear; it runs with the cache lock held and must
// not call back into the cache.
package cache
