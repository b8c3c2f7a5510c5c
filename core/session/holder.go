package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
)

// Holder owns the current session. Safe for concurrent use.
type Holder struct {
	mu      sync.Mutex
	current Session
	gen     uint64

	store  kv.Store
	record *kv.Record[Session]
	auth   Authenticator
	cart   CartResetter
	logger *slog.Logger
}

// NewHolder returns a logged-out holder persisting to store and
// authenticating through auth.
func NewHolder(store kv.Store, auth Authenticator, opts ...Option) *Holder {
	if auth == nil {
		panic("session: authenticator is required")
	}

	h := &Holder{
		store:  store,
		record: kv.NewRecord[Session](store, StorageKey, kv.WithValidator(Session.Validate)),
		auth:   auth,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("session"))
	return h
}

// Hydrate loads the persisted session. Only a logged-in record with a token
// is adopted; anything else leaves the holder logged out.
func (h *Holder) Hydrate(ctx context.Context) Session {
	sess, status, err := h.record.Load(ctx)
	switch {
	case err != nil:
		h.logger.WarnContext(ctx, "session record unavailable",
			logger.StorageKey(StorageKey), logger.Error(err))
	case status == kv.StatusMalformed:
		h.logger.DebugContext(ctx, "session record malformed, ignoring",
			logger.StorageKey(StorageKey))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err == nil && status == kv.StatusPresent && sess.IsAuthenticated() {
		h.current = sess
	} else {
		h.current = Session{}
	}
	return h.current
}

// Login authenticates username and password, persists the resulting session
// and adopts it. On any failure the current session is left unchanged.
func (h *Holder) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	h.mu.Lock()
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	log := h.logger.With(logger.Username(username))

	token, err := h.auth.Login(ctx, username, password)
	if err != nil {
		log.InfoContext(ctx, "login rejected", logger.Error(err))
		return Session{}, errors.Join(ErrNotAuthenticated, err)
	}
	if strings.TrimSpace(token) == "" {
		log.InfoContext(ctx, "login response without token")
		return Session{}, ErrMissingToken
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.gen {
		log.InfoContext(ctx, "stale login response discarded")
		return Session{}, ErrSuperseded
	}

	sess := New(username, token)
	if err := h.record.Save(ctx, sess); err != nil {
		log.WarnContext(ctx, "session persistence failed", logger.Error(err))
		return Session{}, errors.Join(ErrSaveSession, err)
	}
	h.current = sess

	log.InfoContext(ctx, "user logged in")
	return sess, nil
}

// Logout deletes the session and cart records, resets the session and clears
// the cart. It is idempotent. The two deletes are not atomic: a failure
// between them can leave a cart record without a session.
func (h *Holder) Logout(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gen++

	if err := h.record.Delete(ctx); err != nil {
		h.logger.WarnContext(ctx, "session record delete failed",
			logger.StorageKey(StorageKey), logger.Error(err))
	}
	if err := h.store.Delete(ctx, cart.StorageKey); err != nil {
		h.logger.WarnContext(ctx, "cart record delete failed",
			logger.StorageKey(cart.StorageKey), logger.Error(err))
	}

	wasLoggedIn := h.current.IsAuthenticated()
	h.current = Session{}

	if h.cart != nil {
		h.cart.ClearCart(ctx)
	}
	if wasLoggedIn {
		h.logger.InfoContext(ctx, "user logged out")
	}
}

// Current returns a copy of the current session.
func (h *Holder) Current() Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// IsLoggedIn reports whether a session with a token is held.
func (h *Holder) IsLoggedIn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current.IsAuthenticated()
}
