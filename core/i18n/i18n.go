package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when WithDefaultLanguage is not given.
const DefaultLang = "en"

var (
	// ErrEmptyLanguage is returned for an empty language code.
	ErrEmptyLanguage = errors.New("language cannot be empty")
	// ErrEmptyNamespace is returned for an empty namespace.
	ErrEmptyNamespace = errors.New("namespace cannot be empty")
	// ErrInvalidLanguage is returned for a code that is not a BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// M carries placeholder values for T.
type M map[string]any

// I18n is an immutable set of catalogs.
type I18n struct {
	// key format: "lang:namespace:dotted.key"
	translations      map[string]string
	defaultLang       string
	languages         []string
	matcher           language.Matcher
	missingKeyHandler func(lang, namespace, key string)
}

// Option configures New.
type Option func(*I18n) error

// New builds an I18n from options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	var others []string
	seen := map[string]bool{i.defaultLang: true}
	for k := range i.translations {
		lang := k[:strings.IndexByte(k, ':')]
		if !seen[lang] {
			seen[lang] = true
			others = append(others, lang)
		}
	}
	slices.Sort(others)
	// The default language goes first so the matcher falls back to it.
	i.languages = append([]string{i.defaultLang}, others...)

	tags := make([]language.Tag, 0, len(i.languages))
	for _, lang := range i.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		tags = append(tags, tag)
	}
	i.matcher = language.NewMatcher(tags)

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations registers a catalog. Nested maps become dotted keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		for key, value := range flatten(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		return nil
	}
}

// WithMissingKeyHandler sets a callback for keys missing in every language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T returns the translation of key, falling back to the default language and
// then to key itself.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if s, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return replaceAll(s, placeholders...)
	}
	if lang != i.defaultLang {
		if s, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return replaceAll(s, placeholders...)
		}
	}
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Has reports whether key exists for lang without falling back.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.translations[buildKey(lang, namespace, key)]
	return ok
}

// Match picks the best supported language for an Accept-Language header.
// It returns the default language when nothing matches or the header is malformed.
func (i *I18n) Match(acceptLanguage string) string {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return i.defaultLang
	}
	_, idx, conf := i.matcher.Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(i.languages) {
		return i.defaultLang
	}
	return i.languages[idx]
}

// Languages lists the known languages, default first, the rest sorted.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func replaceAll(s string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return s
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(s, merged)
}
