package middleware

import (
	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/response"
)

// SecurityHeadersConfig configures the security headers middleware.
// Empty values are not sent.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	ContentTypeOptions      string
	FrameOptions            string
	ReferrerPolicy          string
	ContentSecurityPolicy   string
	CrossOriginOpenerPolicy string
}

// DefaultSecurityHeadersConfig returns headers suited to a JSON API.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		ContentTypeOptions:      "nosniff",
		FrameOptions:            "DENY",
		ReferrerPolicy:          "no-referrer",
		ContentSecurityPolicy:   "default-src 'none'; frame-ancestors 'none'",
		CrossOriginOpenerPolicy: "same-origin",
	}
}

// SecurityHeaders creates a security headers middleware with defaults.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](DefaultSecurityHeadersConfig())
}

// SecurityHeadersWithConfig sets the configured headers on every response.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	headers := map[string]string{
		"X-Content-Type-Options":     cfg.ContentTypeOptions,
		"X-Frame-Options":            cfg.FrameOptions,
		"Referrer-Policy":            cfg.ReferrerPolicy,
		"Content-Security-Policy":    cfg.ContentSecurityPolicy,
		"Cross-Origin-Opener-Policy": cfg.CrossOriginOpenerPolicy,
	}
	for k, v := range headers {
		if v == "" {
			delete(headers, k)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}
			return response.WithHeaders(next(ctx), headers)
		}
	}
}
