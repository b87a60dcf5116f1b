package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "product not found", NewNotFoundError("product").Error())
	assert.Equal(t, `invalid transaction type: "bogus"`, (&InvalidTransactionTypeError{Type: "bogus"}).Error())
	assert.Equal(t,
		"not enough stock available: 3 available, 10 requested",
		(&InsufficientStockError{Available: 3, Requested: 10}).Error(),
	)
	assert.Equal(t, `product with SKU "SKU-ABC123" already exists`, (&DuplicateSKUError{SKU: "SKU-ABC123"}).Error())
}

func TestIsCallerError(t *testing.T) {
	callerErrs := []error{
		NewValidationError("bad input"),
		NewNotFoundError("product"),
		&InvalidTransactionTypeError{Type: "bogus"},
		&InsufficientStockError{Available: 1, Requested: 2},
		&DuplicateSKUError{SKU: "SKU-X"},
		&ConflictError{Message: "busy"},
	}
	for _, err := range callerErrs {
		assert.True(t, IsCallerError(err), err.Error())
	}

	assert.False(t, IsCallerError(errors.New("connection refused")))
	assert.False(t, IsCallerError(NewInternalError("query failed", errors.New("timeout"))))
}

func TestIsCallerError_Wrapped(t *testing.T) {
	err := fmt.Errorf("applying movement: %w", NewNotFoundError("product"))
	assert.True(t, IsCallerError(err))
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := NewInternalError("query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed: timeout", err.Error())

	bare := NewInternalError("query failed", nil)
	assert.Equal(t, "query failed", bare.Error())
}
