package fakestore

import (
	"context"
	"net/http"
)

// ListCarts returns every cart known to the API.
func (c *Client) ListCarts(ctx context.Context) ([]Cart, error) {
	var carts []Cart
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/carts",
		retry:  true,
	}, &carts)
	if err != nil {
		return nil, err
	}
	return carts, nil
}
