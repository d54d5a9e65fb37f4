// Package apperr defines the domain error types the HTTP layer maps onto
// status codes: validation (400), not found (404), invalid state (409).
// Anything else is treated as a store failure (500).
package apperr

import "fmt"

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func Validation(field string) *ValidationError {
	return &ValidationError{Field: field}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

type InvalidStateError struct {
	Resource string
	ID       string
	Status   string
	Op       string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s while status is %q", e.Op, e.Resource, e.ID, e.Status)
}

func InvalidState(op, resource, id, status string) *InvalidStateError {
	return &InvalidStateError{Op: op, Resource: resource, ID: id, Status: status}
}
