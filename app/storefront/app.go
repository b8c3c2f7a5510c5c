package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/catalog"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/guard"
	"github.com/dmitrymomot/storefront/core/health"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/orders"
	"github.com/dmitrymomot/storefront/core/server"
	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/integration/fakestore"
	"github.com/dmitrymomot/storefront/middleware"
)

// App owns the process-wide state holders and their collaborators.
type App struct {
	config Config
	logger *slog.Logger

	api     *fakestore.Client
	store   kv.Store
	cart    *cart.Cart
	session *session.Holder
	catalog *catalog.Catalog
	orders  *orders.History
	i18n    *i18n.I18n
	lang    *i18n.Preference
	table   *guard.Table

	httpClient *http.Client
	checks     []health.Check
	closers    []func() error
}

// Option configures an App.
type Option func(*App) error

// WithLogger replaces the logger built from LOG_LEVEL and LOG_FORMAT.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithStore uses store instead of opening the configured backend.
func WithStore(store kv.Store) Option {
	return func(a *App) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		a.store = store
		return nil
	}
}

// WithHTTPClient sets the client used for the remote API.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		a.httpClient = hc
		return nil
	}
}

// WithTable replaces guard.DefaultTable.
func WithTable(t *guard.Table) Option {
	return func(a *App) error {
		if t == nil {
			return errors.New("route table cannot be nil")
		}
		a.table = t
		return nil
	}
}

// NewFromEnv loads Config from the environment and builds an App.
func NewFromEnv(ctx context.Context, opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

// New builds an App. The store backend is opened unless WithStore is given.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	a := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.logger == nil {
		a.logger = logger.New(
			logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
			logger.WithFormat(cfg.LogFormat),
			logger.WithContextExtractor(middleware.RequestIDExtractor),
		)
	}
	if a.table == nil {
		a.table = guard.DefaultTable()
	}

	if a.store == nil {
		b, err := openBackend(ctx, cfg, a.logger)
		if err != nil {
			return nil, err
		}
		a.store = b.store
		a.checks = append(a.checks, b.check)
		a.closers = append(a.closers, b.close)
	}

	apiOpts := []fakestore.Option{fakestore.WithLogger(a.logger)}
	if a.httpClient != nil {
		apiOpts = append(apiOpts, fakestore.WithHTTPClient(a.httpClient))
	}
	api, err := fakestore.New(cfg.Fakestore, apiOpts...)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.api = api

	var i18nOpts []i18n.Option
	if cfg.DefaultLanguage != "" {
		i18nOpts = append(i18nOpts, i18n.WithDefaultLanguage(cfg.DefaultLanguage))
	}
	translations, err := i18n.Default(i18nOpts...)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.i18n = translations
	a.lang = i18n.NewPreference(a.store, translations)

	a.cart = cart.New(a.store, cart.WithLogger(a.logger))
	a.session = session.NewHolder(a.store, api,
		session.WithLogger(a.logger),
		session.WithCart(a.cart),
	)
	a.catalog = catalog.New(api,
		catalog.WithStaleTime(cfg.CatalogStaleTime),
		catalog.WithLogger(a.logger),
	)
	a.orders = orders.New(api, a.logger)

	return a, nil
}

// Bootstrap hydrates the session and the cart from the store. A cart may
// outlive any session since browsing and filling it are public.
func (a *App) Bootstrap(ctx context.Context) (session.Session, cart.State) {
	sess := a.session.Hydrate(ctx)
	state := a.cart.Hydrate(ctx)

	a.logger.DebugContext(ctx, "state hydrated",
		logger.Component("storefront"),
		logger.StorageKey(cart.StorageKey),
		logger.Count("total_items", state.TotalItems),
		slog.Bool("authenticated", sess.IsAuthenticated()),
	)
	return sess, state
}

// Authorize resolves route against the current session.
func (a *App) Authorize(route string) (guard.Decision, error) {
	d := a.table.Resolve(route, a.session.Current())
	switch d.Outcome {
	case guard.Denied:
		return d, ErrAccessDenied
	case guard.NotFound:
		return d, ErrRouteNotFound
	default:
		return d, nil
	}
}

// Serve runs the HTTP surface until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv, err := server.New(a.config.Server, server.WithLogger(a.logger))
	if err != nil {
		return err
	}
	return srv.Run(ctx, a.Handler())
}

// Close releases the store backend.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Table returns the route table.
func (a *App) Table() *guard.Table { return a.table }

// I18n returns the translation set.
func (a *App) I18n() *i18n.I18n { return a.i18n }
