package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/storefront/core/handler"
)

var methods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
}

type mux[C handler.Context] struct {
	tree         chi.Router
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	parent       *mux[C]
	prefix       string
	inline       bool
	hasRoutes    bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		tree:         chi.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.tree.NotFound(func(w http.ResponseWriter, r *http.Request) {
		m.fail(w, r, ErrNotFound)
	})
	m.tree.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		m.fail(w, r, ErrMethodNotAllowed)
	})

	return m
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.tree.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methodNames ...string) {
	if len(methodNames) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methodNames))
	for _, name := range methodNames {
		method := strings.ToUpper(name)
		if _, ok := methods[method]; !ok {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, name))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware. It panics once routes were registered through m.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.hasRoutes {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		tree:         m.tree,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
		parent:       m,
		prefix:       m.prefix,
		inline:       true,
	}
}

func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

func (m *mux[C]) Route(pattern string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, pattern))
	}
	validatePattern(pattern)

	im := m.With().(*mux[C])
	im.prefix = joinPattern(m.prefix, pattern)
	fn(im)
	return im
}

// Routes lists registered routes in tree order.
func (m *mux[C]) Routes() []Route {
	var routes []Route
	_ = chi.Walk(m.tree, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{Method: method, Pattern: pattern})
		return nil
	})
	return routes
}

// handle chains the middleware of m and its parents around h and registers
// the result. An empty method registers h for every method.
func (m *mux[C]) handle(method, pattern string, h handler.HandlerFunc[C]) {
	validatePattern(pattern)
	for cur := m; cur != nil; cur = cur.parent {
		cur.hasRoutes = true
	}

	var chain []handler.Middleware[C]
	for cur := m; cur != nil; cur = cur.parent {
		chain = append(append([]handler.Middleware[C]{}, cur.middlewares...), chain...)
	}
	fn := handler.Chain(h, chain...)

	endpoint := func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, urlParams(r), fn)
	}

	full := joinPattern(m.prefix, pattern)
	if method == "" {
		m.tree.HandleFunc(full, endpoint)
		return
	}
	m.tree.MethodFunc(method, full, endpoint)
}

func (m *mux[C]) serve(w http.ResponseWriter, r *http.Request, params map[string]string, fn handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r, params)

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", perr.value,
					"stack", string(perr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, perr)
		}
	}()

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, ctx.Request()); err != nil {
		if ww.Written() {
			m.logger.Error("response failed after write",
				"error", err.Error(),
				"path", r.URL.Path,
				"method", r.Method,
				"status", ww.Status(),
			)
			return
		}
		m.errorHandler(ctx, err)
	}
}

func (m *mux[C]) fail(w http.ResponseWriter, r *http.Request, err error) {
	m.errorHandler(m.newContext(newResponseWriter(w), r, nil), err)
}

func urlParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}

func validatePattern(pattern string) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
}

func joinPattern(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return pattern
	}
	if pattern == "/" {
		return prefix
	}
	return prefix + pattern
}
