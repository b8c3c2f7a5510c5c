// Package mongo connects to MongoDB and provides a kv.Store backed by a
// single collection, one document per key.
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
//	store := mongo.NewStore(client.Database(cfg.Database))
//
// Connect retries the initial ping, which covers Atlas cold starts.
//
// Configuration:
//
//	MONGODB_URL                 (required when the backend is selected)
//	MONGODB_DATABASE            (default: storefront)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
package mongo
