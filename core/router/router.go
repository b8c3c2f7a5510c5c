package router

import (
	"net/http"

	"github.com/dmitrymomot/storefront/core/handler"
)

// Router registers typed handlers and serves them over HTTP.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])

	// Handle registers h for every method.
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	Use(middlewares ...handler.Middleware[C])
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Group registers routes that share extra middleware.
	Group(fn func(r Router[C])) Router[C]
	// Route registers routes under a common path prefix.
	Route(pattern string, fn func(r Router[C])) Router[C]
}

// Routes lists registered routes.
type Routes interface {
	Routes() []Route
}

// Route is a registered method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
