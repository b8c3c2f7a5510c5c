package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Translator binds an I18n to a single language.
type Translator struct {
	i18n    *I18n
	lang    string
	printer *message.Printer
}

// NewTranslator returns a translator for lang. Unsupported or empty
// languages fall back to the default language.
func NewTranslator(i *I18n, lang string) *Translator {
	if i == nil {
		panic("i18n: translator requires an I18n instance")
	}
	lang = normalize(lang)
	if !i.Supports(lang) {
		lang = i.DefaultLanguage()
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Translator{
		i18n:    i,
		lang:    lang,
		printer: message.NewPrinter(tag),
	}
}

// T translates key.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.lang, key, placeholders...)
}

// Tn translates a pluralized key.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.lang, key, n, placeholders...)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.lang
}

// FormatPrice formats a dollar amount with two decimals using the
// language's digit grouping.
func (t *Translator) FormatPrice(amount float64) string {
	digits := t.printer.Sprint(number.Decimal(amount, number.Scale(2)))
	if t.lang == "fr" {
		return digits + " $"
	}
	return "$" + digits
}
