package validator

import (
	"fmt"
	"unicode/utf8"
)

// Rule is a single check. Check returns true when the value is valid.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failures,
// or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Required fails on an empty string.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("%s is required", field),
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// Positive fails when value is zero or negative.
func Positive[N ~int | ~int64 | ~float64](field string, value N) Rule {
	return Rule{
		Check: func() bool { return value > 0 },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("%s must be greater than 0", field),
			TranslationKey:    "validation.positive",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MaxLenString fails when value has more than max characters (runes).
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("%s must be at most %d characters", field, max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

// Digits fails when a non-empty value contains anything but ASCII digits.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for i := 0; i < len(value); i++ {
				if value[i] < '0' || value[i] > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("%s must contain only digits", field),
			TranslationKey:    "validation.digits",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// WithMessage returns a copy of r reporting the given message and translation key.
func (r Rule) WithMessage(key, message string) Rule {
	r.Error.TranslationKey = key
	r.Error.Message = message
	return r
}
