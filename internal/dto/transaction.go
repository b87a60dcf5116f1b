package dto

import "github.com/google/uuid"

// CreateTransactionRequest is the body of POST /transactions. Quantity is
// always a positive magnitude; the ledger resolves the direction from the
// type.
type CreateTransactionRequest struct {
	Type      string    `json:"type" validate:"required"`
	ProductID uuid.UUID `json:"product" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64  `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Notes     string    `json:"notes,omitempty" validate:"max=500"`
}
