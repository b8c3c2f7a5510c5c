// Package storefront is a client for the Fake Store REST API that keeps a
// shopping cart and a login session on local storage, gates navigation on the
// session, and serves the same operations over HTTP and a command line.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/storefront/core/cart
//	go doc -all github.com/dmitrymomot/storefront/app/storefront
//
// # State Core
//
// The cart, the session and the route guard are plain values with mutex
// guarded state, persisted through a key-value mirror:
//
//	github.com/dmitrymomot/storefront/core/kv        - Key-value mirror, typed records, memory and JSON file stores
//	github.com/dmitrymomot/storefront/core/cart      - Cart state machine (add, remove, checkout, hydrate)
//	github.com/dmitrymomot/storefront/core/session   - Session holder (login, logout, hydrate, stale login guard)
//	github.com/dmitrymomot/storefront/core/guard     - Route table and access decisions
//
// # Supporting Packages
//
//	github.com/dmitrymomot/storefront/core/binder    - JSON, query and path request binding
//	github.com/dmitrymomot/storefront/core/cache     - Generic LRU cache
//	github.com/dmitrymomot/storefront/core/catalog   - Product listing, filtering and cart pricing
//	github.com/dmitrymomot/storefront/core/config    - Environment loading with .env support
//	github.com/dmitrymomot/storefront/core/health    - Liveness and readiness handlers
//	github.com/dmitrymomot/storefront/core/i18n      - Translations, plural forms and language preference
//	github.com/dmitrymomot/storefront/core/logger    - slog construction and attribute helpers
//	github.com/dmitrymomot/storefront/core/orders    - Past carts of a user
//	github.com/dmitrymomot/storefront/core/sanitizer - Struct tag input normalization
//	github.com/dmitrymomot/storefront/core/server    - HTTP server with graceful shutdown
//	github.com/dmitrymomot/storefront/core/validator - Struct tag validation with translatable errors
//
// # HTTP Layer
//
// Handlers are generic over the request context and return a Response that
// renders itself:
//
//	github.com/dmitrymomot/storefront/core/handler   - Handler, Response, ErrorHandler and Middleware types
//	github.com/dmitrymomot/storefront/core/router    - Generic router with middleware chains, groups and typed errors
//	github.com/dmitrymomot/storefront/core/response  - JSON, text and error responses, HTTP errors, decorators
//	github.com/dmitrymomot/storefront/middleware     - Request IDs, logging, CORS, body limit, security headers, language, route guard
//
// # Integrations
//
//	github.com/dmitrymomot/storefront/integration/fakestore        - Fake Store REST client with read retries
//	github.com/dmitrymomot/storefront/integration/database/redis   - Redis key-value store
//	github.com/dmitrymomot/storefront/integration/database/sqlite  - SQLite key-value store with migrations
//	github.com/dmitrymomot/storefront/integration/database/pg      - PostgreSQL key-value store with migrations
//	github.com/dmitrymomot/storefront/integration/database/mongo   - MongoDB key-value store
//
// # Application
//
//	github.com/dmitrymomot/storefront/app/storefront - Wiring, HTTP routes and use cases
//	github.com/dmitrymomot/storefront/cmd/storefront - Command line entry point
package storefront
