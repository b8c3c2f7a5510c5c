package storefront

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/storefront/core/binder"
	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/catalog"
	"github.com/dmitrymomot/storefront/core/guard"
	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/health"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/response"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/core/validator"
	"github.com/dmitrymomot/storefront/middleware"
)

// Context is the request context of the HTTP surface.
type Context = router.Context

func isHealthCheck(ctx handler.Context) bool {
	return strings.HasPrefix(ctx.Request().URL.Path, "/health/")
}

// unguarded reports requests that bypass the route guard. Logging out is
// idempotent, so it is answered whether or not a session exists.
func unguarded(ctx handler.Context) bool {
	r := ctx.Request()
	return isHealthCheck(ctx) || (r.Method == http.MethodPost && r.URL.Path == RouteLogout)
}

// Handler returns the HTTP surface.
func (a *App) Handler() http.Handler {
	r := router.New(
		router.WithErrorHandler(a.ErrorHandler),
		router.WithLogger[*Context](a.logger),
	)

	r.Use(
		middleware.RequestID[*Context](),
		middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{Logger: a.logger, Skip: isHealthCheck}),
		middleware.SecurityHeaders[*Context](),
		middleware.CORS[*Context](a.config.CORS),
		middleware.BodyLimit[*Context](),
		middleware.Language[*Context](a.i18n, a.lang.Get),
		middleware.GuardWithConfig[*Context](middleware.GuardConfig{
			Table:    a.table,
			Sessions: a.session,
			Logger:   a.logger,
			Skip:     unguarded,
		}),
	)

	r.Get("/health/live", health.Liveness[*Context])
	r.Get("/health/ready", health.Readiness[*Context](a.logger, a.checks...))

	r.Get("/", a.handleProducts)
	r.Route(RouteHome, func(r router.Router[*Context]) {
		r.Get("/", a.handleProducts)
		r.Post("/cart/items/{id}", a.handleAddToCart)
		r.Delete("/cart/items/{id}", a.handleRemoveFromCart)
	})

	r.Get(RouteLogin, a.handleWhoami)
	r.Post(RouteLogin, a.handleLogin)
	r.Post(RouteLogout, a.handleLogout)

	r.Post(RouteCreateUser, a.handleCreateUser)
	r.Put(RouteUpdateUser+"/{id}", a.handleUpdateUser)
	r.Delete(RouteDeleteUser+"/{id}", a.handleDeleteUser)

	r.Get(RouteLanguage, a.handleGetLanguage)
	r.Put(RouteLanguage, a.handleSetLanguage)

	r.Get(RouteHistory+"/{userID}", a.handleHistory)
	r.Get(RouteHistory+"/{userID}/{orderID}", a.handleOrder)

	r.Route(RouteCart, func(r router.Router[*Context]) {
		r.Get("/", a.handleCart)
		r.Post("/checkout", a.handleCheckout)
	})

	// Preflight requests need a route to reach the CORS middleware.
	seen := make(map[string]bool)
	for _, rt := range r.Routes() {
		if !seen[rt.Pattern] {
			seen[rt.Pattern] = true
			r.Method(rt.Pattern, noContent, http.MethodOptions)
		}
	}

	return r
}

func noContent(*Context) handler.Response {
	return response.NoContent()
}

func (a *App) translator(ctx *Context) *i18n.Translator {
	if t, ok := middleware.GetTranslator(ctx); ok {
		return t
	}
	return i18n.NewTranslator(a.i18n, a.lang.Get(ctx))
}

type errorResponse struct {
	Error  string            `json:"error"`
	View   string            `json:"view,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorHandler renders errors raised by the router: unknown paths,
// unsupported methods, panics and failed responses.
func (a *App) ErrorHandler(ctx *Context, err error) {
	response.Render(ctx, a.fail(ctx, err))
}

// fail translates err into a JSON error response.
func (a *App) fail(ctx *Context, err error) handler.Response {
	if errors.Is(err, router.ErrNotFound) {
		return response.JSONWithStatus(map[string]string{"view": guard.ViewNotFound}, http.StatusNotFound)
	}

	t := a.translator(ctx)
	status := StatusCode(err)
	resp := errorResponse{Error: Message(t, err)}

	switch Classify(err) {
	case KindDenied:
		resp.View = guard.ViewAccessDenied
	case KindInternal:
		if httpErr := response.AsHTTPError(err); httpErr.Status != http.StatusInternalServerError {
			status = httpErr.Status
			resp.Error = httpErr.Message
			break
		}
		a.logger.ErrorContext(ctx, "request failed", logger.Path(ctx.Request().URL.Path), logger.Error(err))
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = make(map[string]string, len(verrs))
		for _, ve := range verrs {
			if _, ok := resp.Fields[ve.Field]; !ok {
				resp.Fields[ve.Field] = t.T(ve.TranslationKey, i18n.M(ve.TranslationValues))
			}
		}
	}

	return response.JSONWithStatus(resp, status)
}

func bind(ctx *Context, v any, binders ...binder.Binder) error {
	if err := binder.Bind(ctx.Request(), v, binders...); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}

func pathParams(ctx *Context) binder.Binder {
	return binder.Path(func(_ *http.Request, name string) string {
		return ctx.Param(name)
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

type sessionResponse struct {
	Session session.Session `json:"session"`
	Message string          `json:"message"`
}

func (a *App) handleWhoami(ctx *Context) handler.Response {
	t := a.translator(ctx)
	sess := a.Whoami()
	msg := t.T("whoami.anonymous")
	if sess.IsAuthenticated() {
		msg = t.T("whoami.user", i18n.M{"name": sess.DisplayName()})
	}
	return response.JSON(sessionResponse{Session: sess, Message: msg})
}

func (a *App) handleLogin(ctx *Context) handler.Response {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := bind(ctx, &body, binder.JSON()); err != nil {
		return a.fail(ctx, err)
	}

	sess, err := a.Login(ctx, body.Username, body.Password)
	if err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(sessionResponse{
		Session: sess,
		Message: a.translator(ctx).T("login.success", i18n.M{"name": sess.DisplayName()}),
	})
}

func (a *App) handleLogout(ctx *Context) handler.Response {
	key := "logout.success"
	if !a.Logout(ctx) {
		key = "logout.already"
	}
	return response.JSON(messageResponse{Message: a.translator(ctx).T(key)})
}

func (a *App) handleProducts(ctx *Context) handler.Response {
	var req ProductsRequest
	if err := bind(ctx, &req, binder.Query()); err != nil {
		return a.fail(ctx, err)
	}
	products, err := a.Products(ctx, req)
	if err != nil {
		return a.fail(ctx, err)
	}

	resp := map[string]any{
		"products":   products,
		"count":      len(products),
		"categories": catalog.Categories,
	}
	if len(products) == 0 {
		resp["message"] = a.translator(ctx).T("products.none")
	}
	return response.JSON(resp)
}

type receiptResponse struct {
	catalog.Receipt
	TotalPriceFormatted string `json:"totalPriceFormatted"`
	Message             string `json:"message,omitempty"`
}

func (a *App) receipt(ctx *Context, rc catalog.Receipt, message string) receiptResponse {
	t := a.translator(ctx)
	if message == "" && rc.TotalItems == 0 {
		message = t.T("cart.empty")
	}
	return receiptResponse{
		Receipt:             rc,
		TotalPriceFormatted: t.FormatPrice(rc.TotalPrice),
		Message:             message,
	}
}

func (a *App) handleCart(ctx *Context) handler.Response {
	rc, err := a.Cart(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(a.receipt(ctx, rc, ""))
}

type cartStateResponse struct {
	cart.State
	Message string `json:"message"`
}

func (a *App) handleAddToCart(ctx *Context) handler.Response {
	id := ctx.Param("id")
	state, err := a.AddToCart(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(cartStateResponse{
		State:   state,
		Message: a.translator(ctx).T("cart.added", i18n.M{"id": id}),
	})
}

func (a *App) handleRemoveFromCart(ctx *Context) handler.Response {
	id := ctx.Param("id")
	state, err := a.RemoveFromCart(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(cartStateResponse{
		State:   state,
		Message: a.translator(ctx).T("cart.removed", i18n.M{"id": id}),
	})
}

func (a *App) handleCheckout(ctx *Context) handler.Response {
	rc, err := a.Checkout(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(a.receipt(ctx, rc, a.translator(ctx).T("cart.checkout")))
}

func (a *App) handleCreateUser(ctx *Context) handler.Response {
	var form CreateUserForm
	if err := bind(ctx, &form, binder.JSON()); err != nil {
		return a.fail(ctx, err)
	}
	user, err := a.CreateUser(ctx, form)
	if err != nil {
		return a.fail(ctx, err)
	}
	user.Password = ""
	return response.JSONWithStatus(map[string]any{
		"user":    user,
		"message": a.translator(ctx).T("user.created", i18n.M{"id": user.ID}),
	}, http.StatusCreated)
}

func (a *App) handleUpdateUser(ctx *Context) handler.Response {
	var form UpdateUserForm
	if err := bind(ctx, &form, binder.JSON()); err != nil {
		return a.fail(ctx, err)
	}
	user, err := a.UpdateUser(ctx, ctx.Param("id"), form)
	if err != nil {
		return a.fail(ctx, err)
	}
	user.Password = ""
	return response.JSON(map[string]any{
		"user":    user,
		"message": a.translator(ctx).T("user.updated"),
	})
}

func (a *App) handleDeleteUser(ctx *Context) handler.Response {
	if err := a.DeleteUser(ctx, ctx.Param("id")); err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(messageResponse{Message: a.translator(ctx).T("user.deleted")})
}

func (a *App) handleHistory(ctx *Context) handler.Response {
	list, err := a.History(ctx, ctx.Param("userID"))
	if err != nil {
		return a.fail(ctx, err)
	}
	resp := map[string]any{"orders": list}
	if len(list) == 0 {
		resp["message"] = a.translator(ctx).T("history.none")
	}
	return response.JSON(resp)
}

func (a *App) handleOrder(ctx *Context) handler.Response {
	var req struct {
		UserID  string `path:"userID"`
		OrderID string `path:"orderID"`
	}
	if err := bind(ctx, &req, pathParams(ctx)); err != nil {
		return a.fail(ctx, err)
	}
	detail, err := a.Order(ctx, req.UserID, req.OrderID)
	if err != nil {
		return a.fail(ctx, err)
	}
	return response.JSON(detail)
}

func (a *App) handleGetLanguage(ctx *Context) handler.Response {
	return response.JSON(map[string]any{
		"language":  a.Language(ctx),
		"available": a.i18n.Languages(),
	})
}

func (a *App) handleSetLanguage(ctx *Context) handler.Response {
	var body struct {
		Language string `json:"language"`
	}
	if err := bind(ctx, &body, binder.JSON()); err != nil {
		return a.fail(ctx, err)
	}
	if err := a.SetLanguage(ctx, body.Language); err != nil {
		return a.fail(ctx, err)
	}
	t := i18n.NewTranslator(a.i18n, body.Language)
	return response.JSON(messageResponse{Message: t.T("language.changed", i18n.M{"lang": t.Language()})})
}
