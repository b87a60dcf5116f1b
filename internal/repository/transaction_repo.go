package repository

import (
	"time"

	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindByProduct(productID uuid.UUID) ([]model.Transaction, error)
	CountByProduct(productID uuid.UUID) (int64, error)
	SummaryByType(startDate, endDate time.Time) ([]dto.TypeSummary, error)
	SummaryByDay(startDate, endDate time.Time) ([]dto.DailySummary, error)
	StockMovement(startDate, endDate time.Time) ([]dto.StockMovementPoint, error)
	DashboardStats() (*dto.DashboardStats, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Preload("PerformedBy").
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").Preload("PerformedBy").
		First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) FindByProduct(productID uuid.UUID) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("PerformedBy").
		Where("product_id = ?", productID).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) CountByProduct(productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *transactionRepo) SummaryByType(startDate, endDate time.Time) ([]dto.TypeSummary, error) {
	var results []dto.TypeSummary

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			type,
			COUNT(*) as count,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(total), 0) as total_value
		`).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("type").
		Order("type ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s dto.TypeSummary
		if err := rows.Scan(&s.Type, &s.Count, &s.TotalQuantity, &s.TotalValue); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (r *transactionRepo) SummaryByDay(startDate, endDate time.Time) ([]dto.DailySummary, error) {
	var results []dto.DailySummary

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			TO_CHAR(date, 'YYYY-MM-DD') as day,
			type,
			COUNT(*) as count,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(total), 0) as total_value
		`).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("day, type").
		Order("day ASC, type ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s dto.DailySummary
		if err := rows.Scan(&s.Date, &s.Type, &s.Count, &s.TotalQuantity, &s.TotalValue); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (r *transactionRepo) StockMovement(startDate, endDate time.Time) ([]dto.StockMovementPoint, error) {
	var results []dto.StockMovementPoint

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			TO_CHAR(date, 'YYYY-MM-DD') as day,
			COALESCE(SUM(CASE WHEN quantity > 0 THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN quantity < 0 THEN -quantity ELSE 0 END), 0) as outbound
		`).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("day").
		Order("day ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p dto.StockMovementPoint
		if err := rows.Scan(&p.Date, &p.Inbound, &p.Outbound); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func (r *transactionRepo) DashboardStats() (*dto.DashboardStats, error) {
	var stats dto.DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantity <= min_stock_level AND is_active = ?", true).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&stats.TotalValuation).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
