package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrDuplicateName = errors.New("duplicate module name")
	ErrUnknownDomain = errors.New("no module registered for domain")
	ErrSystem        = errors.New("system error")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SystemError marks an infrastructure failure raised by a domain module during
// a coherence check. It is distinct from an invalid verdict: a module reporting
// issues produces a verdict, a module failing to answer produces a SystemError
// and no verdict at all. Use errors.As to recover the failing module's name.
type SystemError struct {
	Module string
	Err    error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%s: module %q: %v", ErrSystem.Error(), e.Module, e.Err)
}

// Unwrap returns both the ErrSystem sentinel and the underlying cause, so
// errors.Is matches either.
func (e *SystemError) Unwrap() []error {
	return []error{ErrSystem, e.Err}
}
