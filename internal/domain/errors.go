package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrUnavailable      = errors.New("unavailable")
	ErrPersistenceRead  = errors.New("persistence read failed")
	ErrPersistenceWrite = errors.New("persistence write failed")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Persistence operations reported by PersistenceError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// PersistenceError describes a failed save or load of the contact file.
// It matches both its kind sentinel (ErrPersistenceRead or ErrPersistenceWrite)
// and the underlying cause under errors.Is.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

// NewReadError wraps err as a read failure of path.
func NewReadError(path string, err error) *PersistenceError {
	return &PersistenceError{Op: OpRead, Path: path, Err: err}
}

// NewWriteError wraps err as a write failure of path.
func NewWriteError(path string, err error) *PersistenceError {
	return &PersistenceError{Op: OpWrite, Path: path, Err: err}
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.kind().Error(), e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.kind().Error(), e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *PersistenceError) kind() error {
	if e.Op == OpWrite {
		return ErrPersistenceWrite
	}
	return ErrPersistenceRead
}
