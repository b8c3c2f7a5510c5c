// Package health provides liveness and readiness handlers for the router.
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log, store.Ping))
package health
