package repository

import (
	"time"

	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(tx *gorm.DB, product *model.Product) error
	Find(filter dto.ProductFilter) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindLowStock() ([]model.Product, error)
	// FindByIDForUpdate loads the product inside tx holding a row lock, so
	// concurrent stock movements against the same product serialize.
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	Update(tx *gorm.DB, product *model.Product) error
	// ApplyStockDelta writes the new quantity (and, for restocks, the
	// restock timestamp) computed by the ledger.
	ApplyStockDelta(tx *gorm.DB, id uuid.UUID, newQuantity int, restockedAt *time.Time) error
	Deactivate(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(tx *gorm.DB, product *model.Product) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(product).Error
}

// Find applies the typed listing filter. Only the enumerated filters are
// supported; nothing client-supplied reaches the query as an operator.
func (r *productRepo) Find(filter dto.ProductFilter) ([]model.Product, int64, error) {
	filter.Normalize()

	q := r.db.Model(&model.Product{})
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	switch filter.Stock {
	case dto.StockFilterLow:
		q = q.Where("quantity <= min_stock_level")
	case dto.StockFilterOut:
		q = q.Where("quantity = 0")
	case dto.StockFilterIn:
		q = q.Where("quantity > 0")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Preload("Category").Preload("Supplier").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindLowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("quantity <= min_stock_level AND is_active = ?", true).
		Order("quantity ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(tx *gorm.DB, product *model.Product) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(product).Error
}

func (r *productRepo) ApplyStockDelta(tx *gorm.DB, id uuid.UUID, newQuantity int, restockedAt *time.Time) error {
	updates := map[string]interface{}{"quantity": newQuantity}
	if restockedAt != nil {
		updates["last_restock_date"] = *restockedAt
	}
	return tx.Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *productRepo) Deactivate(id uuid.UUID) error {
	return r.db.Model(&model.Product{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
