// Package payment defines the payment instruction encoded into a PAY by square code.
//
// An Instruction is an immutable value built in one step:
//
//	in := payment.New(
//		payment.WithIBAN("SK77 0000 0000 0000 0000 0000"),
//		payment.WithSWIFT("cekoskbx"),
//		payment.WithAmount(49.99),
//		payment.WithVariableSymbol("20240001"),
//		payment.WithNote("Faktura 2024/001"),
//	)
//	if err := in.Validate(); err != nil {
//		var verr *payment.ValidationError
//		errors.As(err, &verr) // verr.Messages() lists every violation
//	}
//
// Normalization happens in the options: IBAN is upper-cased with all whitespace
// removed, SWIFT and currency are trimmed and upper-cased, the amount is held
// as whole cents, and tabs or line breaks in free-text fields become spaces.
// The recipient name is kept for display but is not part of the encoded payload.
//
// Validation messages are available in English and Slovak via Translations and
// ValidationError.Localize.
package payment
