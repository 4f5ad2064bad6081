package payment

import (
	"strings"
	"time"

	"github.com/dmitrymomot/paybysquare/core/sanitizer"
)

// DefaultCurrency is used when no currency is given.
const DefaultCurrency = "EUR"

// Instruction is a single payment order. The zero value has currency "" and no
// IBAN; build instances with New.
type Instruction struct {
	iban           string
	swift          string
	amount         Amount
	currency       string
	dueDate        time.Time
	variableSymbol string
	constantSymbol string
	specificSymbol string
	note           string
	recipient      string
}

// Option sets one field of an Instruction.
type Option func(*Instruction)

// New builds an Instruction. It does not validate; call Validate.
func New(opts ...Option) Instruction {
	in := Instruction{currency: DefaultCurrency}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// With returns a copy of in with opts applied. in itself is unchanged.
func (in Instruction) With(opts ...Option) Instruction {
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// WithIBAN sets the beneficiary account, upper-cased with whitespace removed.
func WithIBAN(iban string) Option {
	return func(in *Instruction) {
		in.iban = sanitizer.RemoveWhitespace(sanitizer.TrimToUpper(iban))
	}
}

// WithSWIFT sets the BIC, trimmed and upper-cased.
func WithSWIFT(swift string) Option {
	return func(in *Instruction) {
		in.swift = sanitizer.TrimToUpper(sanitizer.FieldText(swift))
	}
}

// WithAmount sets the amount, rounded to two decimals.
func WithAmount(amount float64) Option {
	return func(in *Instruction) {
		in.amount = AmountFromFloat(amount)
	}
}

// WithAmountCents sets the amount in hundredths.
func WithAmountCents(cents int64) Option {
	return func(in *Instruction) {
		in.amount = Amount(cents)
	}
}

// WithCurrency sets the ISO 4217 code, trimmed and upper-cased.
// An empty value keeps DefaultCurrency.
func WithCurrency(currency string) Option {
	return func(in *Instruction) {
		if c := sanitizer.TrimToUpper(sanitizer.FieldText(currency)); c != "" {
			in.currency = c
		}
	}
}

// WithDueDate sets the due date. Only the calendar date is used.
func WithDueDate(date time.Time) Option {
	return func(in *Instruction) {
		in.dueDate = date
	}
}

// WithVariableSymbol sets the variable symbol.
func WithVariableSymbol(vs string) Option {
	return func(in *Instruction) {
		in.variableSymbol = sanitizer.FieldText(vs)
	}
}

// WithConstantSymbol sets the constant symbol.
func WithConstantSymbol(cs string) Option {
	return func(in *Instruction) {
		in.constantSymbol = sanitizer.FieldText(cs)
	}
}

// WithSpecificSymbol sets the specific symbol.
func WithSpecificSymbol(ss string) Option {
	return func(in *Instruction) {
		in.specificSymbol = sanitizer.FieldText(ss)
	}
}

// WithNote sets the message for the beneficiary.
func WithNote(note string) Option {
	return func(in *Instruction) {
		in.note = sanitizer.FieldText(note)
	}
}

// WithRecipient sets the beneficiary name. It is not encoded.
func WithRecipient(name string) Option {
	return func(in *Instruction) {
		in.recipient = strings.TrimSpace(sanitizer.FieldText(name))
	}
}

func (in Instruction) IBAN() string           { return in.iban }
func (in Instruction) SWIFT() string          { return in.swift }
func (in Instruction) Amount() Amount         { return in.amount }
func (in Instruction) Currency() string       { return in.currency }
func (in Instruction) VariableSymbol() string { return in.variableSymbol }
func (in Instruction) ConstantSymbol() string { return in.constantSymbol }
func (in Instruction) SpecificSymbol() string { return in.specificSymbol }
func (in Instruction) Note() string           { return in.note }
func (in Instruction) Recipient() string      { return in.recipient }

// DueDate returns the due date and whether one was set.
func (in Instruction) DueDate() (time.Time, bool) {
	return in.dueDate, !in.dueDate.IsZero()
}
