package middleware

import (
	"context"

	"github.com/dmitrymomot/storefront/core/handler"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/response"
)

// translatorContextKey is used as a key for storing the translator in request context.
type translatorContextKey struct{}

// LanguageConfig configures the language middleware.
type LanguageConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// I18n holds the translations (required)
	I18n *i18n.I18n
	// QueryParam overrides the language for one request (default: "lang")
	QueryParam string
	// Fallback supplies the language when the request names none
	// (default: the i18n default language)
	Fallback func(ctx context.Context) string
}

// Language creates a language middleware falling back to fallback.
func Language[C handler.Context](translations *i18n.I18n, fallback func(ctx context.Context) string) handler.Middleware[C] {
	return LanguageWithConfig[C](LanguageConfig{I18n: translations, Fallback: fallback})
}

// LanguageWithConfig picks the request language from the query parameter,
// then Accept-Language, then the fallback, and stores a translator in the
// request context.
func LanguageWithConfig[C handler.Context](cfg LanguageConfig) handler.Middleware[C] {
	if cfg.I18n == nil {
		panic("language middleware: i18n instance is required")
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.Fallback == nil {
		cfg.Fallback = func(context.Context) string { return cfg.I18n.DefaultLanguage() }
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			lang := req.URL.Query().Get(cfg.QueryParam)
			if !cfg.I18n.Supports(lang) {
				if header := req.Header.Get("Accept-Language"); header != "" {
					lang = cfg.I18n.Match(header)
				} else {
					lang = cfg.Fallback(ctx)
				}
			}

			t := i18n.NewTranslator(cfg.I18n, lang)
			ctx.SetValue(translatorContextKey{}, t)
			return response.WithHeaders(next(ctx), map[string]string{"Content-Language": t.Language()})
		}
	}
}

// WithTranslator returns a copy of ctx carrying t.
func WithTranslator(ctx context.Context, t *i18n.Translator) context.Context {
	return context.WithValue(ctx, translatorContextKey{}, t)
}

// GetTranslator retrieves the request translator from the context.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	t, ok := ctx.Value(translatorContextKey{}).(*i18n.Translator)
	return t, ok
}
