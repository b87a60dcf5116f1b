// Package apperr defines the domain error types surfaced to API callers.
// Handlers map these to 4xx responses; anything else is an opaque 500.
package apperr

import (
	"errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

// NotFoundError marks a request that references an entity that does not
// exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InvalidTransactionTypeError rejects a stock movement whose type is not one
// of the enumerated movement types.
type InvalidTransactionTypeError struct {
	Type string
}

func (e *InvalidTransactionTypeError) Error() string {
	return fmt.Sprintf("invalid transaction type: %q", e.Type)
}

// InsufficientStockError rejects an outgoing movement that would drive a
// product's quantity below zero.
type InsufficientStockError struct {
	Available int `json:"available"`
	Requested int `json:"requested"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock available: %d available, %d requested", e.Available, e.Requested)
}

// DuplicateSKUError rejects a product create or update that would collide
// with another product's SKU.
type DuplicateSKUError struct {
	SKU string
}

func (e *DuplicateSKUError) Error() string {
	return fmt.Sprintf("product with SKU %q already exists", e.SKU)
}

// ConflictError marks a request refused because of the current state of a
// related entity, e.g. deleting a category that still has children.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// IsCallerError reports whether err is one of the caller-correctable domain
// errors, as opposed to an infrastructure failure.
func IsCallerError(err error) bool {
	var (
		ve *ValidationError
		nf *NotFoundError
		it *InvalidTransactionTypeError
		is *InsufficientStockError
		ds *DuplicateSKUError
		cf *ConflictError
	)
	return errors.As(err, &ve) ||
		errors.As(err, &nf) ||
		errors.As(err, &it) ||
		errors.As(err, &is) ||
		errors.As(err, &ds) ||
		errors.As(err, &cf)
}
