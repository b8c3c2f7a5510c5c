package session

import (
	"log/slog"
)

// Option configures a Holder.
type Option func(*Holder)

// WithLogger sets the holder's logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Holder) {
		if log != nil {
			h.logger = log
		}
	}
}

// WithCart registers the cart cleared on logout.
func WithCart(c CartResetter) Option {
	return func(h *Holder) {
		h.cart = c
	}
}
