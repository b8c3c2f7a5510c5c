// Package redis connects to Redis and provides a kv.Store backed by it.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client, redis.WithKeyPrefix("storefront:"))
//
// Connect parses REDIS_URL (redis:// or rediss://), retries the initial ping
// with a linear backoff and fails with ErrNotReady when the server never
// answers. Healthcheck returns a probe usable with the health package.
//
// Records are plain string keys without expiry: a session lives until
// logout deletes it.
package redis
