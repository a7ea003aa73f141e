package errors

import (
	"errors"
	"fmt"
	"strings"
)

// PersistenceError reports a failed read or write against the durable slot.
// The storage layer logs and swallows these; they never reach the entry store.
type PersistenceError struct {
	Op  string // "load", "save", ...
	Key string // slot key
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// GatewayError reports a failed AI call. It never carries a partial result.
type GatewayError struct {
	Op  string // "analyze" or "suggest"
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ValidationError is returned when input is rejected before it reaches the
// entry store or the gateway.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: strings.ToLower(field), Reason: reason}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsGateway reports whether err is, or wraps, a GatewayError.
func IsGateway(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge)
}
