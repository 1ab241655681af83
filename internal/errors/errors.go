// Package errors defines the typed errors surfaced by the order pipeline.
package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were missing or empty in a
// submission. It maps to a 400 response.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError creates a validation error for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PersistenceError reports a failure to durably record an order. It maps to a
// 500 response; the order is not recorded and no notification is attempted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a storage failure from the given operation.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// NotificationError reports a failed notification delivery. It is logged and
// counted but never surfaced to the caller and never retried.
type NotificationError struct {
	Channel string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification via %s failed: %v", e.Channel, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError wraps a delivery failure on the given channel.
func NewNotificationError(channel string, err error) *NotificationError {
	return &NotificationError{Channel: channel, Err: err}
}
