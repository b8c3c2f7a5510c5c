// Package middleware provides handler.Middleware for the storefront HTTP
// surface. Every constructor is generic over the handler context, so the
// middleware plugs into any router.Router[C].
//
// All middleware follow the same pattern:
//   - a Config struct with a Skip hook
//   - a default constructor and a WithConfig constructor
//   - context helpers for values they store
//
// Headers are applied by decorating the handler.Response, so they are set
// just before the response is written.
//
// # Request IDs
//
//	r.Use(middleware.RequestID[*router.Context]())
//
//	if id, ok := middleware.GetRequestID(ctx); ok {
//		...
//	}
//
// RequestIDExtractor plugs into logger.WithContextExtractor so every log
// record written with a request context carries the request_id attribute.
//
// # Route guard
//
// Guard classifies every request path with a guard.Table and the current
// session. Denied requests get 403 {"view":"access-denied"}, unknown paths
// get 404 {"view":"not-found"}. The guard is advisory and never validates the
// token with the remote API.
//
//	r.Use(middleware.Guard[*router.Context](guard.DefaultTable(), holder))
//
// # Language
//
// Language resolves the response language from the lang query parameter, the
// Accept-Language header or a fallback, and stores an i18n.Translator in the
// request context.
//
//	r.Use(middleware.Language[*router.Context](translations, preference.Get))
//	t, _ := middleware.GetTranslator(ctx)
package middleware
