package payment

import "github.com/dmitrymomot/paybysquare/core/i18n"

// Namespace is the i18n namespace of the validation catalogs.
const Namespace = "payment"

var catalogs = map[string]map[string]any{
	"en": {
		"iban":            map[string]any{"required": "IBAN is required"},
		"amount":          map[string]any{"positive": "amount must be greater than 0"},
		"note":            map[string]any{"max": "note must be at most %{max} characters"},
		"variable_symbol": map[string]any{"digits": "variable symbol must contain only digits", "max": "variable symbol must be at most %{max} digits"},
		"constant_symbol": map[string]any{"max": "constant symbol must be at most %{max} characters"},
	},
	"sk": {
		"iban":            map[string]any{"required": "IBAN je povinný"},
		"amount":          map[string]any{"positive": "Suma musí byť väčšia ako 0"},
		"note":            map[string]any{"max": "Poznámka môže mať maximálne %{max} znakov"},
		"variable_symbol": map[string]any{"digits": "Variabilný symbol môže obsahovať len číslice", "max": "Variabilný symbol môže mať maximálne %{max} číslic"},
		"constant_symbol": map[string]any{"max": "Konštantný symbol môže mať maximálne %{max} znaky"},
	},
}

// Translations returns i18n options registering the English and Slovak
// validation catalogs.
func Translations() []i18n.Option {
	opts := make([]i18n.Option, 0, len(catalogs))
	for lang, catalog := range catalogs {
		opts = append(opts, i18n.WithTranslations(lang, Namespace, catalog))
	}
	return opts
}

// NewCatalog builds an I18n holding only the validation catalogs, with English
// as the default language.
func NewCatalog() (*i18n.I18n, error) {
	return i18n.New(append(Translations(), i18n.WithDefaultLanguage("en"))...)
}
