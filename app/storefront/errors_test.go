package storefront_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/app/storefront"
	"github.com/dmitrymomot/storefront/core/catalog"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/orders"
	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/integration/fakestore"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	translations, err := i18n.Default()
	require.NoError(t, err)
	en := i18n.NewTranslator(translations, "en")

	tests := []struct {
		name    string
		err     error
		kind    storefront.Kind
		status  int
		message string
	}{
		{
			name:    "network",
			err:     errors.Join(fakestore.ErrRequestFailed, context.DeadlineExceeded),
			kind:    storefront.KindNetwork,
			status:  http.StatusBadGateway,
			message: "No response from the server. Please try again.",
		},
		{
			name:    "rejected login wins over request failure",
			err:     errors.Join(session.ErrNotAuthenticated, fakestore.ErrInvalidLogin, fakestore.ErrRequestFailed),
			kind:    storefront.KindAuth,
			status:  http.StatusUnauthorized,
			message: "Username or password is incorrect",
		},
		{
			name:    "missing token",
			err:     session.ErrMissingToken,
			kind:    storefront.KindAuth,
			status:  http.StatusUnauthorized,
			message: "Username or password is incorrect",
		},
		{
			name:    "blank credentials",
			err:     session.ErrInvalidCredentials,
			kind:    storefront.KindValidation,
			status:  http.StatusUnprocessableEntity,
			message: "Username and password are required",
		},
		{
			name:    "superseded login",
			err:     session.ErrSuperseded,
			kind:    storefront.KindConflict,
			status:  http.StatusConflict,
			message: "A newer login or logout replaced this one",
		},
		{
			name:    "invalid price",
			err:     catalog.ErrInvalidPrice,
			kind:    storefront.KindValidation,
			status:  http.StatusUnprocessableEntity,
			message: "Please enter a valid maximum price",
		},
		{
			name:    "unsupported language",
			err:     storefront.UnsupportedLanguageError{Lang: "de"},
			kind:    storefront.KindValidation,
			status:  http.StatusUnprocessableEntity,
			message: "Unsupported language: de",
		},
		{
			name:    "access denied",
			err:     storefront.ErrAccessDenied,
			kind:    storefront.KindDenied,
			status:  http.StatusForbidden,
			message: "You must be logged in to view this page",
		},
		{
			name:    "missing product wins over request failure",
			err:     errors.Join(fakestore.ErrNotFound, fakestore.ErrRequestFailed),
			kind:    storefront.KindNotFound,
			status:  http.StatusNotFound,
			message: "Page not found",
		},
		{
			name:    "order not found",
			err:     fmt.Errorf("details: %w", orders.ErrOrderNotFound),
			kind:    storefront.KindNotFound,
			status:  http.StatusNotFound,
			message: "Page not found",
		},
		{
			name:    "unknown",
			err:     errors.New("boom"),
			kind:    storefront.KindInternal,
			status:  http.StatusInternalServerError,
			message: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.kind, storefront.Classify(tt.err))
			assert.Equal(t, tt.status, storefront.StatusCode(tt.err))
			assert.Equal(t, tt.message, storefront.Message(en, tt.err))
		})
	}
}
