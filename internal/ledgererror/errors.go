// Package ledgererror defines the error kinds surfaced by the ledger and its
// persistence boundary.
package ledgererror

import (
	"errors"
	"fmt"
)

// Field names reported by ValidationError.
const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldKind        = "kind"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldID          = "id"
)

// ErrInvalidField is matched by every ValidationError through errors.Is.
var ErrInvalidField = errors.New("invalid field")

// ValidationError reports the first field of an entry that failed validation.
// Nothing is applied to the ledger when one is returned.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidField) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidField
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// FieldOf returns the offending field name if err is a ValidationError.
func FieldOf(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field, true
	}
	return "", false
}

// Persistence operations.
const (
	OpLoad = "load"
	OpSave = "save"
)

// PersistenceError represents a read or write failure in a storage backend.
// The in-memory ledger stays authoritative when a save fails.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed for key '%s': %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err is, or wraps, a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
