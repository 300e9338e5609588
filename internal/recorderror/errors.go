// Package recorderror defines the typed errors returned by the record store,
// its persistence backends and the output writers.
package recorderror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("record not found")

// ErrInvalid is matched by every ValidationError through errors.Is.
var ErrInvalid = errors.New("invalid record")

// Entity kinds used in error messages.
const (
	KindItem     = "item"
	KindGuest    = "guest"
	KindCategory = "category"
)

// NotFoundError reports a lookup by identifier that matched nothing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a rejected create or update.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// DecodeError represents a persisted record whose content could not be
// decoded into the expected collection.
type DecodeError struct {
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode record '%s': %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError represents an output format outside the supported set.
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s. Supported formats are %s",
		e.Format, strings.Join(e.Supported, ", "))
}
