package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/storefront/integration/fakestore"
)

// Categories lists the store's product categories in display order.
var Categories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// IsCategory reports whether name is a known category. The empty name
// selects all products and is accepted.
func IsCategory(name string) bool {
	if name == "" {
		return true
	}
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Filter narrows a listing locally.
type Filter struct {
	// Search is matched case-insensitively against product titles.
	Search string
	// MaxPrice keeps products priced at or below it when HasMaxPrice is set.
	MaxPrice    float64
	HasMaxPrice bool
}

// ParseMaxPrice parses a user-entered price limit. An empty string means no
// limit.
func ParseMaxPrice(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Filter{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Filter{}, ErrInvalidPrice
	}
	return Filter{MaxPrice: v, HasMaxPrice: true}, nil
}

// Match reports whether p passes the filter.
func (f Filter) Match(p fakestore.Product) bool {
	if f.HasMaxPrice && p.Price > f.MaxPrice {
		return false
	}
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search))
}

// Apply returns the products matching the filter, preserving order.
func (f Filter) Apply(products []fakestore.Product) []fakestore.Product {
	out := make([]fakestore.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
