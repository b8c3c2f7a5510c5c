package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/response"
	"github.com/dmitrymomot/storefront/core/router"
)

type mw = handler.Middleware[*router.Context]

// serve routes every path through mws to h.
func serve(req *http.Request, h handler.HandlerFunc[*router.Context], mws ...mw) *httptest.ResponseRecorder {
	r := router.New(router.WithMiddleware(mws...))
	r.Handle("/", h)
	r.Handle("/*", h)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func noContent(*router.Context) handler.Response {
	return response.NoContent()
}
