// Package validator aggregates rule checks into a single error.
//
// A Rule pairs a predicate with the ValidationError reported when the
// predicate is false. Apply evaluates every rule in order and returns all
// failures together as ValidationErrors, or nil:
//
//	err := validator.Apply(
//		validator.Required("iban", iban),
//		validator.MaxLenString("note", note, 35),
//		validator.Digits("variable_symbol", vs),
//	)
//
// Each ValidationError carries a TranslationKey and TranslationValues so
// messages can be rendered in another language; see core/i18n.
package validator
