package session

import "strings"

// StorageKey is the persisted record key of the session.
const StorageKey = "userSession"

// Session is the locally held authentication state.
type Session struct {
	Name       string `json:"name"`
	Username   string `json:"username,omitempty"`
	Token      string `json:"token"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// New returns a logged-in session for username holding token.
// The display name defaults to the username.
func New(username, token string) Session {
	return Session{
		Name:       username,
		Username:   username,
		Token:      token,
		IsLoggedIn: true,
	}
}

// IsAuthenticated reports whether the session is logged in with a token.
func (s Session) IsAuthenticated() bool {
	return s.IsLoggedIn && s.Token != ""
}

// Validate checks the token invariant: a logged-in session must carry a token.
func (s Session) Validate() error {
	if s.IsLoggedIn && strings.TrimSpace(s.Token) == "" {
		return ErrInvalidSession
	}
	return nil
}

// DisplayName returns the username when set, otherwise the name.
func (s Session) DisplayName() string {
	if s.Username != "" {
		return s.Username
	}
	return s.Name
}
