package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewFieldError returns a ValidationError for a single field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the failing fields in sorted order so the message is stable.
func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// JoinValidation merges the fields of every *ValidationError in errs into a
// single ValidationError. Nil entries are skipped and nil is returned when
// nothing failed. Errors that are not validation errors are joined unchanged
// after the merged validation error.
func JoinValidation(errs ...error) error {
	fields := make(map[string]string)
	var other []error

	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			maps.Copy(fields, verr.Fields)
			continue
		}
		other = append(other, err)
	}

	if len(fields) == 0 {
		return errors.Join(other...)
	}

	merged := &ValidationError{Fields: fields}
	if len(other) == 0 {
		return merged
	}
	return errors.Join(append([]error{merged}, other...)...)
}

// RepositoryError wraps a storage failure. The message names only the failed
// operation; backend detail stays reachable through Unwrap for logging and
// errors.Is checks but is never part of Error().
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error: %s failed", e.Op)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// ServiceError is a generic failure surfaced by an application service, such
// as "record not found" when the fetch before an update fails.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return "service error: " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
