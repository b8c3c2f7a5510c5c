// Package pg connects to PostgreSQL with pgx and provides a kv.Store backed
// by the kv_records table.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool); err != nil {
//		return err
//	}
//	store := pg.NewStore(pool)
//
// Migrations are embedded goose SQL files applied through a database/sql
// handle opened on the same pool.
//
// Store operations run inside a transaction when the context carries one
// (see WithTx), so callers can group writes to several keys.
package pg
