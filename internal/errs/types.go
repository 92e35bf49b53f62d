package errs

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-level messages keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

// Add appends a message for field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Has reports whether field already has a message.
func (e *ValidationError) Has(field string) bool { return len(e.Fields[field]) > 0 }

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool { return e == nil || len(e.Fields) == 0 }

// OrNil returns e as an error, or nil if nothing was recorded.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a single-field validation error.
func Invalid(field, msg string) error {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// ForbiddenError is raised when the acting member lacks a capability.
// It signals caller misuse rather than an expected business outcome.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	if e.Reason == "" {
		return ErrForbidden.Error()
	}
	return "forbidden: " + e.Reason
}

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// Forbidden builds a ForbiddenError.
func Forbidden(reason string) error { return &ForbiddenError{Reason: reason} }

// TransitionError names a rejected status target.
type TransitionError struct {
	From   string
	Target string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot set status to %s from %s", e.Target, e.From)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }
