package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is the fallback language when none is configured.
const DefaultLang = "en"

// M holds placeholder values.
type M map[string]any

var (
	ErrEmptyLanguage       = errors.New("i18n: language cannot be empty")
	ErrInvalidLocale       = errors.New("i18n: invalid locale file")
	ErrUnsupportedLanguage = errors.New("i18n: unsupported language")
)

//go:embed locales/*.yaml
var locales embed.FS

// I18n holds translations for several languages. It is immutable after
// construction and safe for concurrent use.
type I18n struct {
	// Key format: "lang:dotted.key"
	translations map[string]string

	defaultLang string
	languages   []string
	matcher     language.Matcher

	missingKeyHandler func(lang, key string)
}

// Option configures an I18n during construction.
type Option func(*I18n) error

// New returns an I18n configured by opts.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("i18n: apply option: %w", err)
		}
	}

	i.languages = i.collectLanguages()
	tags := make([]language.Tag, 0, len(i.languages))
	for _, l := range i.languages {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse language %q: %w", l, err)
		}
		tags = append(tags, tag)
	}
	i.matcher = language.NewMatcher(tags)
	return i, nil
}

// Default returns an I18n loaded with the bundled locales.
func Default(opts ...Option) (*I18n, error) {
	return New(append([]Option{WithFS(locales, "locales")}, opts...)...)
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		lang = normalize(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations adds translations for lang. Nested maps are flattened
// into dot-separated keys.
func WithTranslations(lang string, translations map[string]any) Option {
	return func(i *I18n) error {
		lang = normalize(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		for key, value := range flatten(translations, "") {
			i.translations[lang+":"+key] = value
		}
		return nil
	}
}

// WithYAML adds translations for lang from a YAML document.
func WithYAML(lang string, data []byte) Option {
	return func(i *I18n) error {
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return errors.Join(ErrInvalidLocale, err)
		}
		return WithTranslations(lang, tree)(i)
	}
}

// WithFS loads every dir/<lang>.yaml file from fsys.
func WithFS(fsys fs.FS, dir string) Option {
	return func(i *I18n) error {
		files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
		if err != nil {
			return err
		}
		for _, name := range files {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return err
			}
			lang := strings.TrimSuffix(path.Base(name), ".yaml")
			if err := WithYAML(lang, data)(i); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return nil
	}
}

// WithMissingKeyHandler registers fn to be called when a key is missing in
// both the requested and the default language.
func WithMissingKeyHandler(fn func(lang, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = fn
		return nil
	}
}

// T translates key into lang, falling back to the default language and then
// to the key itself.
func (i *I18n) T(lang, key string, placeholders ...M) string {
	tmpl, ok := i.lookup(normalize(lang), key)
	if !ok {
		return key
	}
	return ReplacePlaceholders(tmpl, merge(nil, placeholders))
}

// Tn translates a pluralized key. The "one" or "other" form is chosen from
// n and n is available as the %{count} placeholder.
func (i *I18n) Tn(lang, key string, n int, placeholders ...M) string {
	lang = normalize(lang)
	form := pluralForm(lang, n)

	tmpl, ok := i.lookup(lang, key+"."+form)
	if !ok && form != "other" {
		tmpl, ok = i.lookup(lang, key+".other")
	}
	if !ok {
		return key
	}
	return ReplacePlaceholders(tmpl, merge(M{"count": n}, placeholders))
}

// Languages returns the configured languages, default first.
func (i *I18n) Languages() []string {
	return append([]string(nil), i.languages...)
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Supports reports whether lang has translations or is the default.
func (i *I18n) Supports(lang string) bool {
	lang = normalize(lang)
	for _, l := range i.languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Match picks the best configured language for an Accept-Language header.
// Unparsable or unmatched headers select the default language.
func (i *I18n) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return i.defaultLang
	}
	_, idx, conf := i.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(i.languages) {
		return i.defaultLang
	}
	return i.languages[idx]
}

func (i *I18n) lookup(lang, key string) (string, bool) {
	if tmpl, ok := i.translations[lang+":"+key]; ok {
		return tmpl, true
	}
	if lang != i.defaultLang {
		if tmpl, ok := i.translations[i.defaultLang+":"+key]; ok {
			return tmpl, true
		}
	}
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, key)
	}
	return "", false
}

func (i *I18n) collectLanguages() []string {
	set := map[string]struct{}{}
	for k := range i.translations {
		lang, _, _ := strings.Cut(k, ":")
		set[lang] = struct{}{}
	}
	delete(set, i.defaultLang)

	others := make([]string, 0, len(set))
	for l := range set {
		others = append(others, l)
	}
	sort.Strings(others)
	return append([]string{i.defaultLang}, others...)
}

// ReplacePlaceholders substitutes %{name} placeholders. Unknown placeholders
// are left as-is.
func ReplacePlaceholders(tmpl string, values M) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "%{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// pluralForm implements the CLDR cardinal rules of the bundled languages.
func pluralForm(lang string, n int) string {
	base, _, _ := strings.Cut(lang, "-")
	switch base {
	case "fr":
		if n == 0 || n == 1 {
			return "one"
		}
	default:
		if n == 1 {
			return "one"
		}
	}
	return "other"
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for sub, s := range v {
				out[full+"."+sub] = s
			}
		case nil:
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return out
}

func merge(base M, extra []M) M {
	if base == nil {
		base = M{}
	}
	for _, m := range extra {
		maps.Copy(base, m)
	}
	return base
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
