package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/response"
)

// Check verifies a single dependency.
type Check func(ctx context.Context) error

// Liveness reports that the process is running. It checks no dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.WithCache(response.String("ALIVE"), 0)
}

// Readiness runs every check in order and answers 503 on the first failure.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return response.WithCache(response.StringWithStatus("NOT READY", http.StatusServiceUnavailable), 0)
			}
		}
		return response.WithCache(response.String("READY"), 0)
	}
}
