package cart

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// StorageKey is the persisted record key of the cart.
const StorageKey = "cartItems"

var (
	// ErrEmptyProductID marks a persisted entry keyed by an empty product id.
	ErrEmptyProductID = errors.New("cart: empty product id")
	// ErrInvalidQuantity marks a persisted entry whose quantity is not positive.
	ErrInvalidQuantity = errors.New("cart: quantity must be positive")
)

// Items maps product identifiers to quantities.
type Items map[string]int

// Total returns the sum of all quantities.
func (it Items) Total() int {
	total := 0
	for _, qty := range it {
		total += qty
	}
	return total
}

// Clone returns a copy that shares no memory with it. A nil map clones to an empty one.
func (it Items) Clone() Items {
	out := make(Items, len(it))
	maps.Copy(out, it)
	return out
}

// IDs returns product ids in ascending order.
func (it Items) IDs() []string {
	return slices.Sorted(maps.Keys(it))
}

// Validate reports the first entry that breaks the cart invariants:
// product ids are non-empty and quantities are positive.
func (it Items) Validate() error {
	for _, id := range it.IDs() {
		if strings.TrimSpace(id) == "" {
			return ErrEmptyProductID
		}
		if it[id] <= 0 {
			return fmt.Errorf("%w: %q has %d", ErrInvalidQuantity, id, it[id])
		}
	}
	return nil
}

// State is an immutable snapshot of the cart.
type State struct {
	Items      Items `json:"items"`
	TotalItems int   `json:"totalItems"`
}

// Quantity returns the quantity of id, or 0 when absent.
func (s State) Quantity(id string) int {
	return s.Items[id]
}

// IsEmpty reports whether the cart holds no items.
func (s State) IsEmpty() bool {
	return s.TotalItems == 0
}
