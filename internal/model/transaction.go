package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a stock movement. The movement direction is a
// property of the type: restock, adjustment and return add stock; sale and
// transfer remove it. Callers always submit a positive magnitude.
type TransactionType string

const (
	TxRestock    TransactionType = "restock"
	TxSale       TransactionType = "sale"
	TxAdjustment TransactionType = "adjustment"
	TxReturn     TransactionType = "return"
	TxTransfer   TransactionType = "transfer"
)

// Valid reports whether t is one of the five known movement types.
func (t TransactionType) Valid() bool {
	switch t {
	case TxRestock, TxSale, TxAdjustment, TxReturn, TxTransfer:
		return true
	}
	return false
}

// Outgoing reports whether the type removes stock.
func (t TransactionType) Outgoing() bool {
	return t == TxSale || t == TxTransfer
}

// SignedQuantity resolves a positive magnitude into the signed delta the
// type applies to a product's stock.
func (t TransactionType) SignedQuantity(magnitude int) int {
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if t.Outgoing() {
		return -magnitude
	}
	return magnitude
}

// Transaction is one immutable entry in the stock ledger. Entries are only
// ever created and read; correcting a mistake means recording a new
// adjustment, not editing history.
type Transaction struct {
	BaseModel
	Type      TransactionType `gorm:"type:varchar(20);not null" json:"type" validate:"required"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	// Quantity is signed: positive for incoming stock, negative for outgoing.
	Quantity  int     `gorm:"not null" json:"quantity" validate:"required"`
	UnitPrice float64 `gorm:"not null" json:"unit_price" validate:"gte=0"`
	// Total is derived from quantity and unit price, never supplied.
	Total float64 `gorm:"not null" json:"total"`

	Date  time.Time `gorm:"not null" json:"date"`
	Notes string    `gorm:"type:varchar(500)" json:"notes,omitempty" validate:"max=500"`

	PerformedByID *uuid.UUID `gorm:"type:uuid" json:"performed_by_id,omitempty"`
	PerformedBy   *User      `gorm:"foreignKey:PerformedByID" json:"performed_by,omitempty" validate:"-"`
}

// ComputeTotal derives the monetary total from the signed quantity and the
// unit price.
func (t *Transaction) ComputeTotal() float64 {
	qty := t.Quantity
	if qty < 0 {
		qty = -qty
	}
	return float64(qty) * t.UnitPrice
}
