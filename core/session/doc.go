// Package session holds the storefront's authenticated identity.
//
// A Session is the locally stored record of who is logged in: display name,
// username, the opaque token returned by the remote auth endpoint and a
// logged-in flag. The token is trusted as-is; it is never validated against
// the server.
//
// Holder owns the current Session. It hydrates from the "userSession" record
// on startup, replaces it on a successful Login and resets it on Logout:
//
//	holder := session.NewHolder(store, apiClient,
//		session.WithCart(shoppingCart),
//		session.WithLogger(log),
//	)
//	holder.Hydrate(ctx)
//
//	sess, err := holder.Login(ctx, "mor_2314", "83r5^_")
//	if err != nil {
//		// errors.Is(err, session.ErrMissingToken), remote error, ...
//	}
//
//	holder.Logout(ctx) // deletes userSession and cartItems, clears the cart
//
// # Invariant
//
// IsLoggedIn is true only when Token is non-empty and the "userSession" record
// with isLoggedIn=true has been written. Login persists before adopting; a
// failed write leaves the holder logged out.
//
// # Superseded logins
//
// Every Login and Logout advances a generation counter. A Login whose remote
// call returns after a newer Login or a Logout started is discarded with
// ErrSuperseded, so a slow response can never resurrect a session the user
// already left.
package session
