package service

import (
	"database/sql"
	"time"

	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mockTxManager runs the transaction body directly, with a nil tx handle the
// repository mocks ignore.
type mockTxManager struct{}

func (m *mockTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type mockPublisher struct {
	events []ws.StockEvent
}

func (m *mockPublisher) Publish(event ws.StockEvent) {
	m.events = append(m.events, event)
}

type mockProductRepo struct {
	CreateFunc            func(tx *gorm.DB, product *model.Product) error
	FindFunc              func(filter dto.ProductFilter) ([]model.Product, int64, error)
	FindByIDFunc          func(id uuid.UUID) (*model.Product, error)
	FindBySKUFunc         func(sku string) (*model.Product, error)
	FindLowStockFunc      func() ([]model.Product, error)
	FindByIDForUpdateFunc func(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateFunc            func(tx *gorm.DB, product *model.Product) error
	ApplyStockDeltaFunc   func(tx *gorm.DB, id uuid.UUID, newQuantity int, restockedAt *time.Time) error
	DeactivateFunc        func(id uuid.UUID) error
	DeleteFunc            func(id uuid.UUID) error

	deactivated []uuid.UUID
	deleted     []uuid.UUID
}

func (m *mockProductRepo) Create(tx *gorm.DB, product *model.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(tx, product)
	}
	return nil
}

func (m *mockProductRepo) Find(filter dto.ProductFilter) ([]model.Product, int64, error) {
	if m.FindFunc != nil {
		return m.FindFunc(filter)
	}
	return nil, 0, nil
}

func (m *mockProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) FindBySKU(sku string) (*model.Product, error) {
	if m.FindBySKUFunc != nil {
		return m.FindBySKUFunc(sku)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) FindLowStock() ([]model.Product, error) {
	if m.FindLowStockFunc != nil {
		return m.FindLowStockFunc()
	}
	return nil, nil
}

func (m *mockProductRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(tx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) Update(tx *gorm.DB, product *model.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(tx, product)
	}
	return nil
}

func (m *mockProductRepo) ApplyStockDelta(tx *gorm.DB, id uuid.UUID, newQuantity int, restockedAt *time.Time) error {
	if m.ApplyStockDeltaFunc != nil {
		return m.ApplyStockDeltaFunc(tx, id, newQuantity, restockedAt)
	}
	return nil
}

func (m *mockProductRepo) Deactivate(id uuid.UUID) error {
	m.deactivated = append(m.deactivated, id)
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(id)
	}
	return nil
}

func (m *mockProductRepo) Delete(id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type mockTransactionRepo struct {
	CreateFunc         func(tx *gorm.DB, transaction *model.Transaction) error
	FindAllFunc        func() ([]model.Transaction, error)
	FindByIDFunc       func(id uuid.UUID) (*model.Transaction, error)
	FindByProductFunc  func(productID uuid.UUID) ([]model.Transaction, error)
	CountByProductFunc func(productID uuid.UUID) (int64, error)
	SummaryByTypeFunc  func(startDate, endDate time.Time) ([]dto.TypeSummary, error)
	SummaryByDayFunc   func(startDate, endDate time.Time) ([]dto.DailySummary, error)
	StockMovementFunc  func(startDate, endDate time.Time) ([]dto.StockMovementPoint, error)
	DashboardStatsFunc func() (*dto.DashboardStats, error)

	created []*model.Transaction
}

func (m *mockTransactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	m.created = append(m.created, transaction)
	if m.CreateFunc != nil {
		return m.CreateFunc(tx, transaction)
	}
	return nil
}

func (m *mockTransactionRepo) FindAll() ([]model.Transaction, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *mockTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTransactionRepo) FindByProduct(productID uuid.UUID) ([]model.Transaction, error) {
	if m.FindByProductFunc != nil {
		return m.FindByProductFunc(productID)
	}
	return nil, nil
}

func (m *mockTransactionRepo) CountByProduct(productID uuid.UUID) (int64, error) {
	if m.CountByProductFunc != nil {
		return m.CountByProductFunc(productID)
	}
	return 0, nil
}

func (m *mockTransactionRepo) SummaryByType(startDate, endDate time.Time) ([]dto.TypeSummary, error) {
	if m.SummaryByTypeFunc != nil {
		return m.SummaryByTypeFunc(startDate, endDate)
	}
	return nil, nil
}

func (m *mockTransactionRepo) SummaryByDay(startDate, endDate time.Time) ([]dto.DailySummary, error) {
	if m.SummaryByDayFunc != nil {
		return m.SummaryByDayFunc(startDate, endDate)
	}
	return nil, nil
}

func (m *mockTransactionRepo) StockMovement(startDate, endDate time.Time) ([]dto.StockMovementPoint, error) {
	if m.StockMovementFunc != nil {
		return m.StockMovementFunc(startDate, endDate)
	}
	return nil, nil
}

func (m *mockTransactionRepo) DashboardStats() (*dto.DashboardStats, error) {
	if m.DashboardStatsFunc != nil {
		return m.DashboardStatsFunc()
	}
	return &dto.DashboardStats{}, nil
}

type mockUserRepo struct {
	CreateFunc         func(user *model.User) error
	FindAllFunc        func() ([]model.User, error)
	FindByIDFunc       func(id uuid.UUID) (*model.User, error)
	FindByEmailFunc    func(email string) (*model.User, error)
	UpdateFunc         func(user *model.User) error
	UpdateLastSeenFunc func(id uuid.UUID, seenAt time.Time) error
	DeleteFunc         func(id uuid.UUID) error

	updated []*model.User
}

func (m *mockUserRepo) Create(user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	return nil
}

func (m *mockUserRepo) FindAll() ([]model.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(user *model.User) error {
	m.updated = append(m.updated, user)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(user)
	}
	return nil
}

func (m *mockUserRepo) UpdateLastSeen(id uuid.UUID, seenAt time.Time) error {
	if m.UpdateLastSeenFunc != nil {
		return m.UpdateLastSeenFunc(id, seenAt)
	}
	return nil
}

func (m *mockUserRepo) Delete(id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type mockCategoryRepo struct {
	CreateFunc        func(category *model.Category) error
	FindAllFunc       func() ([]model.Category, error)
	FindByIDFunc      func(id uuid.UUID) (*model.Category, error)
	FindByNameFunc    func(name string) (*model.Category, error)
	CountChildrenFunc func(id uuid.UUID) (int64, error)
	UpdateFunc        func(category *model.Category) error
	DeleteFunc        func(id uuid.UUID) error

	deleted []uuid.UUID
}

func (m *mockCategoryRepo) Create(category *model.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(category)
	}
	return nil
}

func (m *mockCategoryRepo) FindAll() ([]model.Category, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) FindByName(name string) (*model.Category, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) CountChildren(id uuid.UUID) (int64, error) {
	if m.CountChildrenFunc != nil {
		return m.CountChildrenFunc(id)
	}
	return 0, nil
}

func (m *mockCategoryRepo) Update(category *model.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(category)
	}
	return nil
}

func (m *mockCategoryRepo) Delete(id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
