package session

import "errors"

var (
	// ErrInvalidCredentials is returned when username or password is blank.
	ErrInvalidCredentials = errors.New("username and password are required")
	// ErrMissingToken is returned when the auth response carries no token.
	ErrMissingToken = errors.New("invalid credentials")
	// ErrNotAuthenticated wraps authenticator failures.
	ErrNotAuthenticated = errors.New("authentication failed")
	// ErrSuperseded is returned when a newer Login or a Logout started while
	// this Login waited for the remote response.
	ErrSuperseded = errors.New("login superseded by a newer session change")
	// ErrSaveSession is returned when the session record cannot be written.
	ErrSaveSession = errors.New("failed to save session")
	// ErrInvalidSession marks a persisted session that breaks the token invariant.
	ErrInvalidSession = errors.New("logged-in session without token")
)
