package storefront

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/storefront/core/catalog"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/orders"
	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/core/validator"
	"github.com/dmitrymomot/storefront/integration/fakestore"
)

var (
	ErrAccessDenied     = errors.New("storefront: access denied")
	ErrRouteNotFound    = errors.New("storefront: route not found")
	ErrUnknownStore     = errors.New("storefront: unknown store backend")
	ErrInvalidProductID = errors.New("storefront: product id must be a positive integer")
	ErrInvalidBody      = errors.New("storefront: malformed request body")
)

// UnsupportedLanguageError names a rejected language.
type UnsupportedLanguageError struct {
	Lang string
}

func (e UnsupportedLanguageError) Error() string {
	return "storefront: unsupported language " + e.Lang
}

func (e UnsupportedLanguageError) Unwrap() error {
	return i18n.ErrUnsupportedLanguage
}

// Kind is the user-facing class of an error.
type Kind int

const (
	KindInternal Kind = iota
	KindNetwork
	KindValidation
	KindAuth
	KindConflict
	KindDenied
	KindNotFound
)

// Classify maps err onto a Kind. Auth and not-found checks run before the
// network check because the client joins them with ErrRequestFailed.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case validator.IsValidationError(err),
		errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, fakestore.ErrInvalidUserID),
		errors.Is(err, fakestore.ErrInvalidSort),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, i18n.ErrUnsupportedLanguage),
		errors.Is(err, ErrInvalidProductID),
		errors.Is(err, ErrInvalidBody):
		return KindValidation
	case errors.Is(err, fakestore.ErrInvalidLogin),
		errors.Is(err, session.ErrMissingToken):
		return KindAuth
	case errors.Is(err, session.ErrSuperseded):
		return KindConflict
	case errors.Is(err, ErrAccessDenied):
		return KindDenied
	case errors.Is(err, ErrRouteNotFound),
		errors.Is(err, fakestore.ErrNotFound),
		errors.Is(err, orders.ErrOrderNotFound):
		return KindNotFound
	case errors.Is(err, fakestore.ErrRequestFailed),
		errors.Is(err, fakestore.ErrDecodeResponse):
		return KindNetwork
	default:
		return KindInternal
	}
}

// StatusCode returns the HTTP status for err.
func StatusCode(err error) int {
	switch Classify(err) {
	case KindNetwork:
		return http.StatusBadGateway
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuth:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message translates err for the user.
func Message(t *i18n.Translator, err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, ve := range verrs {
			details = append(details, t.T(ve.TranslationKey, i18n.M(ve.TranslationValues)))
		}
		return t.T("errors.validation", i18n.M{"details": strings.Join(details, "; ")})
	}

	var langErr UnsupportedLanguageError
	if errors.As(err, &langErr) {
		return t.T("language.unsupported", i18n.M{"lang": langErr.Lang})
	}

	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return t.T("login.required")
	case errors.Is(err, fakestore.ErrInvalidLogin), errors.Is(err, session.ErrMissingToken):
		return t.T("login.invalid")
	case errors.Is(err, session.ErrSuperseded):
		return t.T("login.superseded")
	case errors.Is(err, fakestore.ErrInvalidUserID):
		return t.T("errors.invalid_user_id")
	case errors.Is(err, catalog.ErrInvalidPrice):
		return t.T("errors.invalid_price")
	case errors.Is(err, fakestore.ErrInvalidSort):
		return t.T("errors.invalid_sort")
	}

	switch Classify(err) {
	case KindValidation:
		return t.T("errors.validation", i18n.M{"details": err.Error()})
	case KindDenied:
		return t.T("errors.access_denied")
	case KindNotFound:
		return t.T("errors.not_found")
	case KindNetwork:
		return t.T("errors.network")
	default:
		return t.T("errors.internal")
	}
}
