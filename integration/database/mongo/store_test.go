package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/kv/kvtest"
	"github.com/dmitrymomot/storefront/integration/database/mongo"
)

func TestStore(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, mongo.Config{
		ConnectionURL:  url,
		ConnectTimeout: 5 * time.Second,
		RetryAttempts:  2,
		RetryInterval:  100 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("storefront_test")
	kvtest.Run(t, func(t *testing.T) kv.Store {
		name := "kv_" + uuid.NewString()
		t.Cleanup(func() { _ = db.Collection(name).Drop(context.Background()) })
		return mongo.NewStore(db, mongo.WithCollection(name))
	})

	t.Run("healthcheck", func(t *testing.T) {
		assert.NoError(t, mongo.Healthcheck(client)(ctx))
	})
}

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}
