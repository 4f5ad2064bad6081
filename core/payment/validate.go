package payment

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/paybysquare/core/i18n"
	"github.com/dmitrymomot/paybysquare/core/validator"
)

// Field limits.
const (
	MaxNoteLength           = 35
	MaxVariableSymbolLength = 10
	MaxConstantSymbolLength = 4
)

// Translation keys in the Namespace catalog.
const (
	KeyIBANRequired         = "iban.required"
	KeyAmountPositive       = "amount.positive"
	KeyNoteMax              = "note.max"
	KeyVariableSymbolDigits = "variable_symbol.digits"
	KeyVariableSymbolMax    = "variable_symbol.max"
	KeyConstantSymbolMax    = "constant_symbol.max"
)

// ValidationError lists every rule an instruction violates.
type ValidationError struct {
	violations validator.ValidationErrors
}

// Error joins the messages with "; ".
func (e *ValidationError) Error() string {
	return e.violations.Error()
}

// Unwrap exposes ErrInvalidInstruction and the underlying validator.ValidationErrors.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidInstruction, e.violations}
}

// Messages returns the English messages in rule order.
func (e *ValidationError) Messages() []string {
	return e.violations.Messages()
}

// Violations returns the failed rules in order.
func (e *ValidationError) Violations() validator.ValidationErrors {
	return e.violations
}

// Localize renders the messages in lang. Keys missing from tr keep their
// English message.
func (e *ValidationError) Localize(tr *i18n.I18n, lang string) []string {
	msgs := make([]string, len(e.violations))
	for i, v := range e.violations {
		msg := tr.T(lang, Namespace, v.TranslationKey, i18n.M(v.TranslationValues))
		if msg == v.TranslationKey {
			msg = v.Message
		}
		msgs[i] = msg
	}
	return msgs
}

// Validate checks every field rule and returns a *ValidationError holding all
// violations, or nil.
func (in Instruction) Validate() error {
	err := validator.Apply(
		validator.Required("iban", in.iban).
			WithMessage(KeyIBANRequired, "IBAN is required"),
		validator.Positive("amount", in.amount).
			WithMessage(KeyAmountPositive, "amount must be greater than 0"),
		validator.MaxLenString("note", norm.NFC.String(in.note), MaxNoteLength).
			WithMessage(KeyNoteMax, fmt.Sprintf("note must be at most %d characters", MaxNoteLength)),
		validator.Digits("variable_symbol", in.variableSymbol).
			WithMessage(KeyVariableSymbolDigits, "variable symbol must contain only digits"),
		validator.MaxLenString("variable_symbol", in.variableSymbol, MaxVariableSymbolLength).
			WithMessage(KeyVariableSymbolMax, fmt.Sprintf("variable symbol must be at most %d digits", MaxVariableSymbolLength)),
		validator.MaxLenString("constant_symbol", in.constantSymbol, MaxConstantSymbolLength).
			WithMessage(KeyConstantSymbolMax, fmt.Sprintf("constant symbol must be at most %d characters", MaxConstantSymbolLength)),
	)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}
	return &ValidationError{violations: violations}
}

// IsValidationError reports whether err carries instruction violations.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInstruction)
}
