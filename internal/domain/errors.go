package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags which validation failed while building a quote
type ErrorKind string

const (
	UnknownAge         ErrorKind = "UnknownAge"
	UnknownTerm        ErrorKind = "UnknownTerm"
	InvalidTerm        ErrorKind = "InvalidTerm"
	InvalidSumAssured  ErrorKind = "InvalidSumAssured"
	TableInconsistency ErrorKind = "TableInconsistency"
	InvalidBonusConfig ErrorKind = "InvalidBonusConfig"
	UnknownGoal        ErrorKind = "UnknownGoal"
	RiderNotAvailable  ErrorKind = "RiderNotAvailable"
	InvalidDeathYear   ErrorKind = "InvalidDeathYear"
)

// IsSelectionError reports whether the kind comes from a user picking a
// combination the product does not offer. Everything else is a caller or
// data bug.
func (k ErrorKind) IsSelectionError() bool {
	switch k {
	case UnknownAge, UnknownTerm, UnknownGoal, RiderNotAvailable, InvalidDeathYear:
		return true
	}
	return false
}

// QuoteError represents a failure from the quote engine
type QuoteError struct {
	Kind      ErrorKind
	Operation string
	Message   string
	Cause     error
}

func (e *QuoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Operation, e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Operation, e.Kind, e.Message)
}

func (e *QuoteError) Unwrap() error {
	return e.Cause
}

// NewQuoteError creates a new QuoteError.
func NewQuoteError(kind ErrorKind, operation, message string, cause error) error {
	return &QuoteError{
		Kind:      kind,
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

// KindOf extracts the ErrorKind from anywhere in an error chain
func KindOf(err error) (ErrorKind, bool) {
	var qe *QuoteError
	if errors.As(err, &qe) {
		return qe.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
