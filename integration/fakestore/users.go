package fakestore

import (
	"context"
	"net/http"
	"strconv"
)

// CreateUser registers a user and returns the API's echo with the assigned id.
func (c *Client) CreateUser(ctx context.Context, u User) (User, error) {
	u.ID = 0
	var created User
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/users",
		body:   u,
	}, &created)
	if err != nil {
		return User{}, err
	}
	return created, nil
}

// UpdateUser replaces the user with the given id.
func (c *Client) UpdateUser(ctx context.Context, id int, u User) (User, error) {
	if id <= 0 {
		return User{}, ErrInvalidUserID
	}
	u.ID = 0
	var updated User
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/users/" + strconv.Itoa(id),
		body:   u,
	}, &updated)
	if err != nil {
		return User{}, err
	}
	return updated, nil
}

// DeleteUser removes the user with the given id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/users/" + strconv.Itoa(id),
	}, nil)
}
