package validator

import (
	"errors"
	"strings"
)

// ErrValidation is matched by errors.Is for every ValidationErrors value.
var ErrValidation = errors.New("validation failed")

// ValidationError describes one failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error implements error.
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the ordered set of failures returned by Apply.
type ValidationErrors []ValidationError

// Error joins the messages with "; ".
func (e ValidationErrors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Is makes errors.Is(err, ErrValidation) true.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a failure.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// Messages returns the messages in order.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Message
	}
	return msgs
}

// Fields returns the failing field names in order, with duplicates kept.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, ve := range e {
		fields[i] = ve.Field
	}
	return fields
}
