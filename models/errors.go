package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProductNotFound is returned when a product id no longer exists.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when a category id no longer exists.
var ErrCategoryNotFound = errors.New("category not found")

// ErrUnknownCategory is returned when a product write references a category
// that does not exist.
var ErrUnknownCategory = errors.New("unknown category reference")

// FieldError describes one violated input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every violated field at once so the caller can
// render all of them in a single response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConflictError reports a uniqueness violation, or a delete blocked by
// dependent records. Dependents is zero for uniqueness conflicts.
type ConflictError struct {
	Resource   string
	Dependents int
}

func (e *ConflictError) Error() string {
	if e.Dependents > 0 {
		return fmt.Sprintf("%s has %d dependent products", e.Resource, e.Dependents)
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// TransportError wraps a store or driver failure so callers never see a raw
// driver error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
