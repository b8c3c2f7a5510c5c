// Package handler defines the function types shared by the router, the
// response helpers and the middleware.
//
// A handler receives a typed request context and returns a Response, a
// deferred writer that the router runs after the middleware chain:
//
//	func products(ctx *router.Context) handler.Response {
//		return response.JSON(list)
//	}
//
// Middleware wraps a HandlerFunc and may decorate the Response it returns,
// so headers and status capture happen when the response is actually written.
package handler
