// Package orders reads a user's past carts from the remote API.
package orders

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/integration/fakestore"
)

// ErrOrderNotFound is returned by Details when the order does not belong to
// the user or does not exist.
var ErrOrderNotFound = errors.New("orders: order not found")

// Source is the remote API surface used for history.
type Source interface {
	ListCarts(ctx context.Context) ([]fakestore.Cart, error)
	GetProduct(ctx context.Context, id int) (fakestore.Product, error)
}

// Summary is one past order.
type Summary struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	TotalItems int    `json:"totalItems"`
}

// Item is a product line of an order.
type Item struct {
	Product  fakestore.Product `json:"product"`
	Quantity int               `json:"quantity"`
}

// Detail is an order with resolved products.
type Detail struct {
	Summary
	Items []Item `json:"items"`
}

// History lists orders per user.
type History struct {
	src    Source
	logger *slog.Logger
}

// New returns a History reading from src.
func New(src Source, log *slog.Logger) *History {
	if log == nil {
		log = logger.Nop()
	}
	return &History{src: src, logger: log.With(logger.Component("orders"))}
}

// ForUser returns the orders placed by userID, newest id first.
func (h *History) ForUser(ctx context.Context, userID int) ([]Summary, error) {
	if userID <= 0 {
		return nil, fakestore.ErrInvalidUserID
	}

	carts, err := h.userCarts(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(carts))
	for _, c := range carts {
		out = append(out, summarize(c))
	}
	return out, nil
}

// Details returns order orderID of userID with every product fetched
// concurrently. Any product failure fails the whole call.
func (h *History) Details(ctx context.Context, userID, orderID int) (Detail, error) {
	if userID <= 0 {
		return Detail{}, fakestore.ErrInvalidUserID
	}

	carts, err := h.userCarts(ctx, userID)
	if err != nil {
		return Detail{}, err
	}

	var order *fakestore.Cart
	for i := range carts {
		if carts[i].ID == orderID {
			order = &carts[i]
			break
		}
	}
	if order == nil {
		return Detail{}, ErrOrderNotFound
	}

	items := make([]Item, len(order.Products))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range order.Products {
		g.Go(func() error {
			p, err := h.src.GetProduct(gctx, line.ProductID)
			if err != nil {
				return err
			}
			items[i] = Item{Product: p, Quantity: line.Quantity}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.WarnContext(ctx, "order products unavailable",
			slog.Int("order_id", orderID), logger.Error(err))
		return Detail{}, err
	}

	return Detail{Summary: summarize(*order), Items: items}, nil
}

func (h *History) userCarts(ctx context.Context, userID int) ([]fakestore.Cart, error) {
	all, err := h.src.ListCarts(ctx)
	if err != nil {
		return nil, err
	}

	carts := make([]fakestore.Cart, 0)
	for _, c := range all {
		if c.UserID == userID {
			carts = append(carts, c)
		}
	}
	sort.SliceStable(carts, func(i, j int) bool { return carts[i].ID > carts[j].ID })
	return carts, nil
}

func summarize(c fakestore.Cart) Summary {
	return Summary{ID: c.ID, Date: c.Date, TotalItems: c.TotalQuantity()}
}
