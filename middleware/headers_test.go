package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/response"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/middleware"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rec := serve(httptest.NewRequest(http.MethodGet, "/", nil), noContent, middleware.SecurityHeaders[*router.Context]())

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))

	cfg := middleware.DefaultSecurityHeadersConfig()
	cfg.FrameOptions = ""
	rec = serve(httptest.NewRequest(http.MethodGet, "/", nil), noContent, middleware.SecurityHeadersWithConfig[*router.Context](cfg))
	_, set := rec.Header()["X-Frame-Options"]
	assert.False(t, set)
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	limit := middleware.BodyLimitWithConfig[*router.Context](middleware.BodyLimitConfig{MaxSize: 8})
	echo := func(ctx *router.Context) handler.Response {
		body, err := io.ReadAll(ctx.Request().Body)
		if err != nil {
			return response.Error(response.ErrRequestEntityTooLarge.WithError(err))
		}
		return response.String(string(body))
	}

	t.Run("within limit", func(t *testing.T) {
		t.Parallel()

		rec := serve(httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{}")), echo, limit)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "{}", rec.Body.String())
	})

	t.Run("declared length over limit", func(t *testing.T) {
		t.Parallel()

		r := router.New(
			router.WithMiddleware(limit),
			router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
		)
		r.Post("/login", echo)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"x"}`)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"code":"request_entity_too_large","message":"request body too large","details":{"limit":8}}`, rec.Body.String())
	})

	t.Run("undeclared length is capped while reading", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"x"}`))
		req.ContentLength = -1
		rec := serve(req, echo, limit)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	cors := middleware.CORS[*router.Context](middleware.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}, MaxAge: 60})

	t.Run("preflight is answered without the handler", func(t *testing.T) {
		t.Parallel()

		called := false
		req := httptest.NewRequest(http.MethodOptions, "/cart", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := serve(req, func(ctx *router.Context) handler.Response {
			called = true
			return noContent(ctx)
		}, cors)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := serve(req, noContent, cors)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := serve(req, noContent, cors)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
