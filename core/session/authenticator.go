package session

import "context"

// Authenticator verifies credentials against the remote auth endpoint and
// returns the issued token. An empty token with a nil error is treated as a
// rejected login.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, username, password string) (string, error)

// Login implements Authenticator.
func (f AuthenticatorFunc) Login(ctx context.Context, username, password string) (string, error) {
	return f(ctx, username, password)
}

// CartResetter is cleared on logout.
type CartResetter interface {
	ClearCart(ctx context.Context)
}
