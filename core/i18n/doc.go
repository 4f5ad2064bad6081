// Package i18n holds message catalogs and picks a language for a request.
//
// Catalogs are registered per language and namespace at construction and are
// read-only afterwards, so an *I18n is safe for concurrent use:
//
//	tr, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "payment", map[string]any{
//			"iban": map[string]any{"required": "IBAN is required"},
//		}),
//		i18n.WithTranslations("sk", "payment", map[string]any{
//			"iban": map[string]any{"required": "IBAN je povinný"},
//		}),
//	)
//
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	msg := tr.T(lang, "payment", "iban.required")
//
// Nested maps are flattened into dot-separated keys. Lookups fall back to the
// default language, then to the key itself. Placeholders use the %{name} form
// and are filled from M values passed to T.
//
// Language negotiation uses golang.org/x/text/language, so regional variants
// and quality values in Accept-Language are honored.
package i18n
