// Package router dispatches HTTP requests to typed handlers.
//
// Handlers receive a request context of type C and return a handler.Response.
// Middleware is chained when a route is registered, so Use must be called
// before the first route. Path matching is delegated to go-chi's radix tree;
// the router adds typed contexts, panic recovery and a single error handler
// for failed responses, unknown paths and unsupported methods.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Get("/products/{id}", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"id": ctx.Param("id")})
//	})
//
// Custom context types need WithContextFactory.
package router
