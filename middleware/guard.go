package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/storefront/core/guard"
	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/response"
	"github.com/dmitrymomot/storefront/core/session"
)

// decisionContextKey is used as a key for storing the guard decision in request context.
type decisionContextKey struct{}

// SessionSource reports the current session.
type SessionSource interface {
	Current() session.Session
}

// GuardConfig configures the route guard middleware.
type GuardConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Table classifies paths (required)
	Table *guard.Table
	// Sessions reports the session used for the decision (required)
	Sessions SessionSource
	// Logger receives a debug record per blocked request (default: slog.Default())
	Logger *slog.Logger
	// OnBlocked builds the response for denied and unknown routes.
	// Default: JSON {"view": ...} with 403 or 404.
	OnBlocked func(ctx handler.Context, d guard.Decision) handler.Response
}

// Guard creates a guard middleware for table and sessions.
func Guard[C handler.Context](table *guard.Table, sessions SessionSource) handler.Middleware[C] {
	return GuardWithConfig[C](GuardConfig{Table: table, Sessions: sessions})
}

// GuardWithConfig resolves every request path against the table and the
// current session. Allowed requests continue with the decision stored in
// the context.
func GuardWithConfig[C handler.Context](cfg GuardConfig) handler.Middleware[C] {
	if cfg.Table == nil || cfg.Sessions == nil {
		panic("guard middleware: table and session source are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.OnBlocked == nil {
		cfg.OnBlocked = blocked
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			req := ctx.Request()
			if req.Method == http.MethodOptions || (cfg.Skip != nil && cfg.Skip(ctx)) {
				return next(ctx)
			}

			d := cfg.Table.Resolve(req.URL.Path, cfg.Sessions.Current())
			if d.Outcome != guard.Allowed {
				cfg.Logger.DebugContext(ctx, "route blocked",
					logger.Component("guard"),
					logger.Path(req.URL.Path),
					logger.Result(d.Outcome.String()),
				)
				return cfg.OnBlocked(ctx, d)
			}

			ctx.SetValue(decisionContextKey{}, d)
			return next(ctx)
		}
	}
}

// GetDecision returns the guard decision of an allowed request.
func GetDecision(ctx context.Context) (guard.Decision, bool) {
	d, ok := ctx.Value(decisionContextKey{}).(guard.Decision)
	return d, ok
}

func blocked(_ handler.Context, d guard.Decision) handler.Response {
	status := http.StatusForbidden
	if d.Outcome == guard.NotFound {
		status = http.StatusNotFound
	}
	return response.JSONWithStatus(map[string]string{"view": d.View}, status)
}
