package fakestore

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an opaque token. Rejected credentials
// return ErrInvalidLogin. A 2xx response without a token returns an empty
// token and a nil error.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Username: username, Password: password},
	}, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
			return "", errors.Join(ErrInvalidLogin, err)
		}
		return "", err
	}
	return strings.TrimSpace(resp.Token), nil
}
