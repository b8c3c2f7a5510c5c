// Package i18n translates storefront messages.
//
// Translations are flat or nested maps keyed by language; nested keys are
// addressed with dots. The bundled English and French locales live in
// locales/*.yaml and are loaded by Default:
//
//	tr, err := i18n.Default()
//	if err != nil {
//		return err
//	}
//
//	tr.T("fr", "login.success", i18n.M{"name": "mor_2314"})
//	// Connecté en tant que mor_2314
//
//	tr.Tn("en", "history.order", 3, i18n.M{"id": 1, "date": "2020-03-02"})
//	// Order #1 from 2020-03-02: 3 items
//
// Lookups fall back to the default language and finally to the key itself.
// Placeholders use the %{name} syntax.
//
// Match negotiates an Accept-Language header against the configured
// languages using golang.org/x/text/language. Preference stores the user's
// explicit choice under the "language" key of a kv.Store.
package i18n
