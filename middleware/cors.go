package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/dmitrymomot/storefront/core/handler"
)

// CORSConfig holds the allowed cross-origin callers.
type CORSConfig struct {
	// AllowOrigins lists origins allowed to call the API
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`

	// AllowCredentials permits cookies and auth headers on cross-origin calls
	AllowCredentials bool `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	// MaxAge is how long, in seconds, a preflight result may be cached
	MaxAge int `env:"CORS_MAX_AGE" envDefault:"300"`
}

// CORS answers preflight requests and sets the allow headers on the rest.
// A handled preflight never reaches the next handler.
func CORS[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			var (
				resp   handler.Response
				passed bool
			)
			c.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				passed = true
				resp = next(ctx)
			})).ServeHTTP(ctx.ResponseWriter(), ctx.Request())

			if !passed {
				return func(http.ResponseWriter, *http.Request) error { return nil }
			}
			return resp
		}
	}
}
