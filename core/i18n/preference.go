package i18n

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/storefront/core/kv"
)

// PreferenceKey is the persisted record key of the chosen language.
const PreferenceKey = "language"

// Preference persists the user's language choice.
type Preference struct {
	i18n   *I18n
	record *kv.Record[string]
}

// NewPreference returns a preference stored in store.
func NewPreference(store kv.Store, i *I18n) *Preference {
	return &Preference{
		i18n: i,
		record: kv.NewRecord[string](store, PreferenceKey,
			kv.WithValidator(func(lang string) error {
				if !i.Supports(lang) {
					return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
				}
				return nil
			}),
			kv.WithDefault(i.DefaultLanguage),
		),
	}
}

// Get returns the stored language or the default one.
func (p *Preference) Get(ctx context.Context) string {
	lang, _, _ := p.record.Load(ctx)
	return lang
}

// Set stores lang. Unsupported languages are rejected.
func (p *Preference) Set(ctx context.Context, lang string) error {
	lang = normalize(lang)
	if !p.i18n.Supports(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return p.record.Save(ctx, lang)
}
