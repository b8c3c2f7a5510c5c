// Package kv provides the persistent key-value mirror used by the storefront to
// keep session and cart state across restarts.
//
// A Store is a flat string-to-string map with three operations: Get, Set and
// Delete. There are no transactions across keys; callers that write several
// records update them independently.
//
// Two Store implementations live here:
//
//   - MemoryStore keeps records in process memory. Useful for tests and for
//     ephemeral servers.
//   - FileStore keeps all records in a single JSON document on disk, the same
//     shape a browser's local storage would have. Writes replace the file
//     atomically.
//
// Redis, SQLite, PostgreSQL and MongoDB backends are provided by the
// integration/database packages.
//
// # Typed records
//
// Record wraps a Store key with a JSON codec and a validation step, so that
// absent or malformed data maps deterministically to a default value:
//
//	items := kv.NewRecord[map[string]int](store, "cartItems",
//		kv.WithValidator(validateItems),
//	)
//
//	value, status, err := items.Load(ctx)
//	switch status {
//	case kv.StatusPresent:   // value decoded and valid
//	case kv.StatusAbsent:    // key not set, value is the default
//	case kv.StatusMalformed: // stored text unparsable or invalid, value is the default
//	}
//
// err is only non-nil when the backend itself failed; value is still the
// default in that case.
package kv
