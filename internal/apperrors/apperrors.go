// Package apperrors defines the error taxonomy shared by services and
// handlers: validation failures (rejected before any write), store failures
// (persistence layer), and notification failures (outbound webhook, never
// propagated to the caller's success path).
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or rule-violating request. Handlers map
// it to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError reports a read or write failure at the persistence layer.
// Handlers map it to HTTP 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

// Storef wraps err as a StoreError for the named operation.
func Storef(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStore reports whether err is (or wraps) a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// NotificationError reports a failed outbound notification. It is logged by
// callers and never surfaced to the order-creation response.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string { return fmt.Sprintf("notification: %v", e.Err) }

func (e *NotificationError) Unwrap() error { return e.Err }

// WrapNotification wraps err as a NotificationError.
func WrapNotification(err error) error {
	return &NotificationError{Err: err}
}
