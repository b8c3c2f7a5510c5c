// Package guard decides whether a navigation target may be shown.
//
// A Table maps route paths to views and an access level. Resolve classifies a
// path against the table and the current session:
//
//	d := guard.DefaultTable().Resolve("/cart", holder.Current())
//	switch d.Outcome {
//	case guard.Allowed:   // render d.View
//	case guard.Denied:    // render guard.ViewAccessDenied
//	case guard.NotFound:  // render guard.ViewNotFound
//	}
//
// Public routes are always allowed. RequiresAuth routes are allowed only
// while the session is logged in. Decisions are recomputed on every call.
//
// Gating is advisory: it decides what the client shows and does not protect
// any remote resource.
package guard
