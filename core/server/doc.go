// Package server runs the storefront HTTP handler and stops it gracefully
// when the run context ends.
//
//	srv, err := server.New(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return srv.Run(ctx, handler)
//
// Addr reports the bound port after Ready is closed, which is how tests use
// an ":0" address.
package server
