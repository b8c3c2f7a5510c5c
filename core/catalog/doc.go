// Package catalog serves product listings and prices the local cart.
//
// Listings are fetched per (category, sort) pair and kept fresh for a
// configurable stale time in an LRU cache. Search and price filters are
// applied locally to the cached listing, so changing them never triggers a
// request.
//
//	cat := catalog.New(apiClient, catalog.WithStaleTime(5*time.Minute))
//	products, err := cat.Products(ctx,
//		fakestore.ProductQuery{Category: "jewelery", Sort: fakestore.SortAsc},
//		catalog.Filter{Search: "ring"},
//	)
//
// PriceCart resolves every cart entry concurrently. Entries whose product
// cannot be fetched are shown as "Unknown Product" and do not contribute to
// the total price.
package catalog
