package storefront

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/catalog"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/orders"
	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/integration/fakestore"
)

// Routes the App operations are gated by.
const (
	RouteHome       = "/home"
	RouteLogin      = "/login"
	RouteCreateUser = "/create-user"
	RouteLanguage   = "/language"
	RouteUpdateUser = "/update-user"
	RouteDeleteUser = "/delete-user"
	RouteHistory    = "/cart-history"
	RouteCart       = "/cart"
	RouteLogout     = "/logout"

	// RouteCartItems sits under the public catalog so anyone can fill a cart.
	RouteCartItems = RouteHome + "/cart/items"
)

// Login authenticates against the remote API and adopts the session.
func (a *App) Login(ctx context.Context, username, password string) (session.Session, error) {
	if _, err := a.Authorize(RouteLogin); err != nil {
		return session.Session{}, err
	}
	return a.session.Login(ctx, username, password)
}

// Logout clears the session and the cart. It reports false and leaves the
// cart alone when nobody is logged in.
func (a *App) Logout(ctx context.Context) bool {
	if !a.session.Current().IsAuthenticated() {
		return false
	}
	a.session.Logout(ctx)
	return true
}

// Whoami returns the current session.
func (a *App) Whoami() session.Session {
	return a.session.Current()
}

// ProductsRequest holds the user-entered catalog filters.
type ProductsRequest struct {
	Category string `query:"category"`
	Sort     string `query:"sort"`
	Search   string `query:"search"`
	MaxPrice string `query:"max_price"`
}

// Products lists the catalog with the request's filters applied.
func (a *App) Products(ctx context.Context, req ProductsRequest) ([]fakestore.Product, error) {
	if _, err := a.Authorize(RouteHome); err != nil {
		return nil, err
	}
	filter, err := catalog.ParseMaxPrice(req.MaxPrice)
	if err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(req.Search)

	q := fakestore.ProductQuery{
		Category: strings.TrimSpace(req.Category),
		Sort:     strings.ToLower(strings.TrimSpace(req.Sort)),
	}
	return a.catalog.Products(ctx, q, filter)
}

// Cart returns the priced cart.
func (a *App) Cart(ctx context.Context) (catalog.Receipt, error) {
	if _, err := a.Authorize(RouteCart); err != nil {
		return catalog.Receipt{}, err
	}
	return a.catalog.PriceCart(ctx, a.cart.State().Items)
}

// AddToCart adds one unit of product id.
func (a *App) AddToCart(ctx context.Context, id string) (cart.State, error) {
	if _, err := a.Authorize(RouteCartItems); err != nil {
		return cart.State{}, err
	}
	id, err := productID(id)
	if err != nil {
		return cart.State{}, err
	}
	return a.cart.AddItem(ctx, id), nil
}

// RemoveFromCart removes one unit of product id. Absent products are a no-op.
func (a *App) RemoveFromCart(ctx context.Context, id string) (cart.State, error) {
	if _, err := a.Authorize(RouteCartItems); err != nil {
		return cart.State{}, err
	}
	id, err := productID(id)
	if err != nil {
		return cart.State{}, err
	}
	return a.cart.RemoveItem(ctx, id), nil
}

// Checkout empties the cart and prices the items it held. No order is sent
// to the remote API. Items added while pricing runs stay in the new cart.
func (a *App) Checkout(ctx context.Context) (catalog.Receipt, error) {
	if _, err := a.Authorize(RouteCart); err != nil {
		return catalog.Receipt{}, err
	}
	return a.catalog.PriceCart(ctx, a.cart.Checkout(ctx))
}

// History lists the orders of userID.
func (a *App) History(ctx context.Context, userID string) ([]orders.Summary, error) {
	if _, err := a.Authorize(RouteHistory); err != nil {
		return nil, err
	}
	id, err := fakestore.ParseUserID(userID)
	if err != nil {
		return nil, err
	}
	return a.orders.ForUser(ctx, id)
}

// Order returns one order of userID with its products.
func (a *App) Order(ctx context.Context, userID, orderID string) (orders.Detail, error) {
	if _, err := a.Authorize(RouteHistory); err != nil {
		return orders.Detail{}, err
	}
	uid, err := fakestore.ParseUserID(userID)
	if err != nil {
		return orders.Detail{}, err
	}
	oid, err := strconv.Atoi(strings.TrimSpace(orderID))
	if err != nil || oid <= 0 {
		return orders.Detail{}, orders.ErrOrderNotFound
	}
	return a.orders.Details(ctx, uid, oid)
}

// Language returns the persisted language preference.
func (a *App) Language(ctx context.Context) string {
	return a.lang.Get(ctx)
}

// SetLanguage persists lang as the preferred language.
func (a *App) SetLanguage(ctx context.Context, lang string) error {
	if _, err := a.Authorize(RouteLanguage); err != nil {
		return err
	}
	lang = strings.TrimSpace(lang)
	if !a.i18n.Supports(lang) {
		return UnsupportedLanguageError{Lang: lang}
	}
	return a.lang.Set(ctx, lang)
}

// Translator returns a translator for lang, or for the persisted preference
// when lang is empty.
func (a *App) Translator(ctx context.Context, lang string) *i18n.Translator {
	if lang == "" {
		lang = a.lang.Get(ctx)
	}
	return i18n.NewTranslator(a.i18n, lang)
}

func productID(raw string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return "", ErrInvalidProductID
	}
	return strconv.Itoa(n), nil
}
