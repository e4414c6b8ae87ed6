// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// UndefinedInput indicates an n for which no survivor count is defined.
	UndefinedInput Kind = "undefined_input"
	// TableBoundExceeded indicates a query needing primes past the table bound.
	TableBoundExceeded Kind = "table_bound_exceeded"
	// NotPrime indicates a rank lookup for a value absent from the prime sequence.
	NotPrime Kind = "not_prime"
	// InvalidBound indicates an unusable sieve or table bound.
	InvalidBound Kind = "invalid_bound"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf extracts the Kind from an error chain; empty when none is present.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
