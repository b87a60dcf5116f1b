package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Units of measure a product quantity can be expressed in.
const (
	UnitPiece = "piece"
	UnitKg    = "kg"
	UnitG     = "g"
	UnitMg    = "mg"
	UnitL     = "L"
	UnitMl    = "ml"
	UnitBox   = "box"
	UnitPack  = "pack"
	UnitSet   = "set"
	UnitPair  = "pair"
	UnitOther = "other"
)

// Supported price currencies.
const (
	CurrencyMAD = "MAD"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyCAD = "CAD"
	CurrencyAUD = "AUD"
)

type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:varchar(1000)" json:"description,omitempty" validate:"max=1000"`
	SKU         string `gorm:"type:varchar(50);uniqueIndex" json:"sku"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`

	// Quantity is owned by the ledger: stock movements go through
	// transactions, never through ad-hoc writes.
	Quantity      int     `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	UnitOfMeasure string  `gorm:"type:varchar(10);default:'piece'" json:"unit_of_measure" validate:"omitempty,oneof=piece kg g mg L ml box pack set pair other"`
	UnitPrice     float64 `gorm:"not null" json:"unit_price" validate:"gte=0"`
	Currency      string  `gorm:"type:varchar(3);default:'MAD'" json:"currency" validate:"omitempty,oneof=MAD USD EUR GBP CAD AUD"`
	CostPrice     float64 `json:"cost_price,omitempty" validate:"gte=0"`
	MinStockLevel int     `gorm:"default:0" json:"min_stock_level" validate:"gte=0"`

	Location string `gorm:"type:varchar(255)" json:"location,omitempty"`

	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`

	ImageURL string `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	Barcode  string `gorm:"type:varchar(100)" json:"barcode,omitempty"`

	IsActive        bool       `gorm:"default:true" json:"is_active"`
	LastRestockDate *time.Time `json:"last_restock_date,omitempty"`

	Transactions []Transaction `json:"transactions,omitempty" validate:"-"`
}

// BeforeCreate assigns the UUID and auto-generates a SKU when none was given.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if err := p.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if p.SKU == "" {
		p.SKU = GenerateSKU()
	}
	return nil
}

// GenerateSKU produces a short random SKU of the form SKU-XXXXXX.
func GenerateSKU() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "SKU-" + strings.ToUpper(raw[:6])
}

// IsLowStock reports whether stock has fallen to or below the reorder level.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStockLevel
}

// StockValue is the valuation of the current stock at the selling price.
func (p *Product) StockValue() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// RestockPrice is the default price for incoming stock: the cost price when
// one is set, otherwise the selling price.
func (p *Product) RestockPrice() float64 {
	if p.CostPrice > 0 {
		return p.CostPrice
	}
	return p.UnitPrice
}
