package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/handler"
)

type testContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(string) string                 { return "" }
func (c *testContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
	c.Context = c.r.Context()
}

func TestChain(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware[*testContext] {
		return func(next handler.HandlerFunc[*testContext]) handler.HandlerFunc[*testContext] {
			return func(ctx *testContext) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	endpoint := func(ctx *testContext) handler.Response {
		order = append(order, "endpoint")
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusAccepted)
			return nil
		}
	}

	t.Run("first middleware runs outermost", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		ctx := &testContext{Context: r.Context(), w: w, r: r}

		resp := handler.Chain(endpoint, mw("a"), mw("b"))(ctx)
		require.NotNil(t, resp)
		require.NoError(t, resp(w, r))

		assert.Equal(t, []string{"a", "b", "endpoint"}, order)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("no middleware returns the endpoint", func(t *testing.T) {
		order = nil
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := &testContext{Context: r.Context(), w: httptest.NewRecorder(), r: r}

		handler.Chain(endpoint)(ctx)
		assert.Equal(t, []string{"endpoint"}, order)
	})
}
