// Package storefront wires the storefront together: configuration, the
// key-value backend, the cart and session holders, the catalog, order
// history, translations and the HTTP surface.
//
// A process owns exactly one App. Its cart and session holder are the single
// source of truth; every consumer (HTTP handlers, CLI commands) goes through
// the App methods, which consult the route guard before acting.
//
//	app, err := storefront.NewFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	app.Bootstrap(ctx)
//	return app.Serve(ctx)
package storefront
