package storefront

import (
	"time"

	"github.com/dmitrymomot/storefront/core/server"
	"github.com/dmitrymomot/storefront/integration/database/mongo"
	"github.com/dmitrymomot/storefront/integration/database/pg"
	"github.com/dmitrymomot/storefront/integration/database/redis"
	"github.com/dmitrymomot/storefront/integration/fakestore"
	"github.com/dmitrymomot/storefront/middleware"
)

// Store backends accepted by STOREFRONT_STORE.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Fakestore fakestore.Config
	Server    server.Config
	CORS      middleware.CORSConfig
	Redis     redis.Config
	Postgres  pg.Config
	Mongo     mongo.Config

	Store      string `env:"STOREFRONT_STORE" envDefault:"file"`
	FilePath   string `env:"STOREFRONT_FILE"`
	SQLitePath string `env:"STOREFRONT_SQLITE_PATH" envDefault:"storefront.db"`

	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"text"`
	DefaultLanguage  string        `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	CatalogStaleTime time.Duration `env:"CATALOG_STALE_TIME" envDefault:"5m"`
}

// DefaultConfig mirrors the envDefault values with an in-memory store.
func DefaultConfig() Config {
	return Config{
		Fakestore:        fakestore.DefaultConfig(),
		Server:           server.DefaultConfig(),
		Store:            StoreMemory,
		SQLitePath:       "storefront.db",
		LogLevel:         "info",
		LogFormat:        "text",
		DefaultLanguage:  "en",
		CatalogStaleTime: 5 * time.Minute,
	}
}
