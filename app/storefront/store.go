package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/storefront/core/health"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/integration/database/mongo"
	"github.com/dmitrymomot/storefront/integration/database/pg"
	"github.com/dmitrymomot/storefront/integration/database/redis"
	"github.com/dmitrymomot/storefront/integration/database/sqlite"
)

// backend is an opened kv.Store with its readiness probe and cleanup.
type backend struct {
	store kv.Store
	check health.Check
	close func() error
}

func noopClose() error { return nil }

func noopCheck(context.Context) error { return nil }

// DefaultFilePath is the file store location when STOREFRONT_FILE is unset.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "storefront", "storage.json")
}

// openBackend opens the store named by cfg.Store.
func openBackend(ctx context.Context, cfg Config, log *slog.Logger) (backend, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Store))
	log = log.With(logger.Component("store"), slog.String("backend", name))

	switch name {
	case StoreMemory:
		return backend{store: kv.NewMemoryStore(), check: noopCheck, close: noopClose}, nil

	case StoreFile, "":
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath()
		}
		fs, err := kv.NewFileStore(path)
		if err != nil {
			return backend{}, err
		}
		log.DebugContext(ctx, "file store opened", slog.String("path", fs.Path()))
		return backend{store: fs, check: noopCheck, close: noopClose}, nil

	case StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return backend{}, err
		}
		return backend{
			store: redis.NewStore(client, redis.WithKeyPrefix(cfg.Redis.KeyPrefix)),
			check: redis.Healthcheck(client),
			close: client.Close,
		}, nil

	case StoreSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return backend{}, err
		}
		return backend{store: s, check: s.Ping, close: s.Close}, nil

	case StorePostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return backend{}, err
		}
		if err := pg.Migrate(ctx, pool); err != nil {
			pool.Close()
			return backend{}, err
		}
		return backend{
			store: pg.NewStore(pool),
			check: pg.Healthcheck(pool),
			close: func() error { pool.Close(); return nil },
		}, nil

	case StoreMongo:
		client, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return backend{}, err
		}
		return backend{
			store: mongo.NewStore(client.Database(cfg.Mongo.Database)),
			check: mongo.Healthcheck(client),
			close: func() error { return client.Disconnect(context.Background()) },
		}, nil

	default:
		return backend{}, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}
