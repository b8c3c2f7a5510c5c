// Package cart implements the client-side shopping cart.
//
// The cart maps product identifiers to quantities and keeps a derived total
// item count. Every mutation except hydration is mirrored to a kv.Store under
// the "cartItems" key in the same step, so the cart survives restarts.
//
// All operations are total: they never return errors. A failed persistence
// write is logged and the in-memory state stays authoritative until the next
// successful write.
//
//	c := cart.New(store, cart.WithLogger(log))
//	c.Hydrate(ctx)
//
//	c.AddItem(ctx, "5")      // {"5":1}, total 1
//	c.AddItem(ctx, "5")      // {"5":2}, total 2
//	c.RemoveItem(ctx, "5")   // {"5":1}, total 1
//	items := c.Checkout(ctx) // {}, total 0, returns {"5":1}
package cart
