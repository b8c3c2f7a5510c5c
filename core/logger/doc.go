// Package logger provides structured logging helpers built on log/slog.
//
// New builds a logger from functional options:
//
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel("debug")),
//		logger.WithFormat("json"),
//		logger.WithAttr(slog.String("service", "storefront")),
//	)
//
// Attribute helpers keep call sites short and nil-safe:
//
//	log.Warn("cart persistence failed",
//		logger.Component("cart"),
//		logger.StorageKey("cartItems"),
//		logger.Error(err),
//	)
//
// WithContextExtractor injects request-scoped attributes (such as the request
// ID set by the HTTP middleware) into every *Context log call.
package logger
