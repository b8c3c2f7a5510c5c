// Package sqlite provides a kv.Store backed by a local SQLite database
// (modernc.org/sqlite, no cgo). The schema is managed with goose
// migrations embedded in the package and applied by Open.
//
//	store, err := sqlite.Open(ctx, "/home/me/.config/storefront/storefront.db")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
// Use ":memory:" for an ephemeral database.
package sqlite
