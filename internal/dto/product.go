package dto

import "github.com/google/uuid"

// StockFilter buckets products by their stock level relative to the reorder
// level. The supported filters are a closed set; anything else is rejected.
type StockFilter string

const (
	StockFilterNone StockFilter = ""
	StockFilterLow  StockFilter = "low" // quantity <= min stock level
	StockFilterOut  StockFilter = "out" // quantity == 0
	StockFilterIn   StockFilter = "in"  // quantity > 0
)

func (f StockFilter) Valid() bool {
	switch f {
	case StockFilterNone, StockFilterLow, StockFilterOut, StockFilterIn:
		return true
	}
	return false
}

// ProductFilter is the typed query for product listings. It replaces
// free-form client-supplied query operators with an enumerated set of
// supported filters.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	Stock      StockFilter
	Page       int
	Limit      int
}

// Normalize clamps pagination to sane defaults.
func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// Offset is the row offset for the current page.
func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// PageRef points at an adjacent page in a paginated listing.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries next/prev cursors when more pages exist.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// BuildPagination computes next/prev refs for a page within total rows.
func BuildPagination(page, limit int, total int64) Pagination {
	var p Pagination
	if int64(page*limit) < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return p
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name          string     `json:"name" validate:"required,max=100"`
	Description   string     `json:"description,omitempty" validate:"max=1000"`
	SKU           string     `json:"sku,omitempty" validate:"max=50"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Quantity      int        `json:"quantity" validate:"gte=0"`
	UnitOfMeasure string     `json:"unit_of_measure,omitempty" validate:"omitempty,oneof=piece kg g mg L ml box pack set pair other"`
	UnitPrice     float64    `json:"unit_price" validate:"gte=0"`
	Currency      string     `json:"currency,omitempty" validate:"omitempty,oneof=MAD USD EUR GBP CAD AUD"`
	CostPrice     float64    `json:"cost_price,omitempty" validate:"gte=0"`
	MinStockLevel int        `json:"min_stock_level,omitempty" validate:"gte=0"`
	Location      string     `json:"location,omitempty"`
	SupplierID    *uuid.UUID `json:"supplier_id,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Barcode       string     `json:"barcode,omitempty"`
}

// UpdateProductRequest is the body of PUT /products/:id. Pointer fields
// distinguish "leave unchanged" from "set to the zero value".
type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	SKU           *string    `json:"sku,omitempty" validate:"omitempty,max=50"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Quantity      *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	UnitOfMeasure *string    `json:"unit_of_measure,omitempty" validate:"omitempty,oneof=piece kg g mg L ml box pack set pair other"`
	UnitPrice     *float64   `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Currency      *string    `json:"currency,omitempty" validate:"omitempty,oneof=MAD USD EUR GBP CAD AUD"`
	CostPrice     *float64   `json:"cost_price,omitempty" validate:"omitempty,gte=0"`
	MinStockLevel *int       `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
	Location      *string    `json:"location,omitempty"`
	SupplierID    *uuid.UUID `json:"supplier_id,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Barcode       *string    `json:"barcode,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}
