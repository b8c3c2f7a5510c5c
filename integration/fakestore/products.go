package fakestore

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// ListProducts returns products, optionally restricted to a category and
// sorted by id.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	path := "/products"
	if q.Category != "" {
		path += "/category/" + q.Category
	}
	var query url.Values
	if q.Sort != "" {
		query = url.Values{"sort": []string{q.Sort}}
	}

	var products []Product
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   path,
		query:  query,
		retry:  true,
	}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product. The API answers unknown ids with an
// empty body; that case returns ErrNotFound.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}

	var p *Product
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + strconv.Itoa(id),
		retry:  true,
	}, &p)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return Product{}, errors.Join(ErrNotFound, err)
		}
		if errors.Is(err, ErrDecodeResponse) {
			return Product{}, errors.Join(ErrNotFound, err)
		}
		return Product{}, err
	}
	if p == nil || p.ID == 0 {
		return Product{}, ErrNotFound
	}
	return *p, nil
}

// ListCategories returns the product categories.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/categories",
		retry:  true,
	}, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}
