package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/middleware"
)

func TestLanguage(t *testing.T) {
	t.Parallel()

	translations, err := i18n.Default()
	require.NoError(t, err)

	tests := []struct {
		name     string
		target   string
		header   string
		fallback string
		want     string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "query wins", target: "/?lang=fr", header: "en-US", want: "fr"},
		{name: "unsupported query ignored", target: "/?lang=de", header: "fr-CA,fr;q=0.9", want: "fr"},
		{name: "accept language", target: "/", header: "fr-FR,fr;q=0.9,en;q=0.5", want: "fr"},
		{name: "fallback when no header", target: "/", fallback: "fr", want: "fr"},
		{name: "header beats fallback", target: "/", header: "en", fallback: "fr", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fallback func(context.Context) string
			if tt.fallback != "" {
				fallback = func(context.Context) string { return tt.fallback }
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}

			var got string
			rec := serve(req, func(ctx *router.Context) handler.Response {
				tr, ok := middleware.GetTranslator(ctx)
				require.True(t, ok)
				got = tr.Language()
				return noContent(ctx)
			}, middleware.Language[*router.Context](translations, fallback))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get("Content-Language"))
		})
	}
}

func TestLanguage_RequiresI18n(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { middleware.Language[*router.Context](nil, nil) })
}
