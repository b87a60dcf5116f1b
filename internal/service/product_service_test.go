package service

import (
	"testing"

	"go-stocktrack/internal/apperr"
	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type productFixture struct {
	service     ProductService
	productRepo *mockProductRepo
	txRepo      *mockTransactionRepo
	events      *mockPublisher
}

func newProductFixture() *productFixture {
	f := &productFixture{
		productRepo: &mockProductRepo{},
		txRepo:      &mockTransactionRepo{},
		events:      &mockPublisher{},
	}
	f.service = NewProductService(&mockTxManager{}, f.productRepo, f.txRepo, f.events, zap.NewNop())
	return f
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	f := newProductFixture()
	existing := stockProduct(3)
	f.productRepo.FindBySKUFunc = func(sku string) (*model.Product, error) {
		return existing, nil
	}

	_, err := f.service.Create(dto.CreateProductRequest{
		Name:      "Widget",
		SKU:       existing.SKU,
		UnitPrice: 20,
	}, uuid.New())

	var dup *apperr.DuplicateSKUError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, existing.SKU, dup.SKU)
}

func TestCreateProduct_SeedsInitialRestock(t *testing.T) {
	f := newProductFixture()
	actor := uuid.New()

	product, err := f.service.Create(dto.CreateProductRequest{
		Name:      "Widget",
		Quantity:  8,
		UnitPrice: 20,
		CostPrice: 14,
	}, actor)

	require.NoError(t, err)
	require.NotNil(t, product.LastRestockDate)

	require.Len(t, f.txRepo.created, 1)
	seed := f.txRepo.created[0]
	assert.Equal(t, model.TxRestock, seed.Type)
	assert.Equal(t, 8, seed.Quantity)
	assert.Equal(t, 14.0, seed.UnitPrice)
	assert.Equal(t, 112.0, seed.Total)
	assert.Equal(t, "Initial stock", seed.Notes)
	require.NotNil(t, seed.PerformedByID)
	assert.Equal(t, actor, *seed.PerformedByID)
}

func TestCreateProduct_NoSeedWhenEmpty(t *testing.T) {
	f := newProductFixture()

	product, err := f.service.Create(dto.CreateProductRequest{
		Name:      "Widget",
		Quantity:  0,
		UnitPrice: 20,
	}, uuid.New())

	require.NoError(t, err)
	assert.Nil(t, product.LastRestockDate)
	assert.Empty(t, f.txRepo.created)
}

func TestCreateProduct_RequiresName(t *testing.T) {
	f := newProductFixture()

	_, err := f.service.Create(dto.CreateProductRequest{UnitPrice: 20}, uuid.New())

	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateProduct_QuantityEditBecomesAdjustment(t *testing.T) {
	f := newProductFixture()
	product := stockProduct(10)
	f.productRepo.FindByIDForUpdateFunc = func(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
		return product, nil
	}
	actor := uuid.New()

	updated, err := f.service.Update(product.ID, dto.UpdateProductRequest{
		Quantity: intPtr(4),
	}, actor)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	require.Len(t, f.txRepo.created, 1)
	adjustment := f.txRepo.created[0]
	assert.Equal(t, model.TxAdjustment, adjustment.Type)
	assert.Equal(t, -6, adjustment.Quantity)
	assert.Equal(t, 120.0, adjustment.Total)
	require.NotNil(t, adjustment.PerformedByID)
	assert.Equal(t, actor, *adjustment.PerformedByID)
}

func TestUpdateProduct_UnchangedQuantityNoAdjustment(t *testing.T) {
	f := newProductFixture()
	product := stockProduct(10)
	f.productRepo.FindByIDForUpdateFunc = func(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
		return product, nil
	}

	_, err := f.service.Update(product.ID, dto.UpdateProductRequest{
		Quantity: intPtr(10),
		Name:     strPtr("Renamed"),
	}, uuid.New())

	require.NoError(t, err)
	assert.Empty(t, f.txRepo.created)
	assert.Equal(t, "Renamed", product.Name)
}

func TestUpdateProduct_SKUCollision(t *testing.T) {
	f := newProductFixture()
	product := stockProduct(10)
	other := stockProduct(1)
	other.SKU = "SKU-OTHER1"

	f.productRepo.FindByIDForUpdateFunc = func(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
		return product, nil
	}
	f.productRepo.FindBySKUFunc = func(sku string) (*model.Product, error) {
		if sku == other.SKU {
			return other, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	_, err := f.service.Update(product.ID, dto.UpdateProductRequest{
		SKU: strPtr(other.SKU),
	}, uuid.New())

	var dup *apperr.DuplicateSKUError
	require.ErrorAs(t, err, &dup)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	f := newProductFixture()

	_, err := f.service.Update(uuid.New(), dto.UpdateProductRequest{}, uuid.New())

	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteProduct_WithHistoryDeactivates(t *testing.T) {
	f := newProductFixture()
	product := stockProduct(10)
	f.productRepo.FindByIDFunc = func(id uuid.UUID) (*model.Product, error) {
		return product, nil
	}
	f.txRepo.CountByProductFunc = func(productID uuid.UUID) (int64, error) {
		return 3, nil
	}

	result, err := f.service.Delete(product.ID)

	require.NoError(t, err)
	assert.True(t, result.Deactivated)
	assert.Equal(t, []uuid.UUID{product.ID}, f.productRepo.deactivated)
	assert.Empty(t, f.productRepo.deleted)
}

func TestDeleteProduct_WithoutHistoryDeletes(t *testing.T) {
	f := newProductFixture()
	product := stockProduct(0)
	f.productRepo.FindByIDFunc = func(id uuid.UUID) (*model.Product, error) {
		return product, nil
	}

	result, err := f.service.Delete(product.ID)

	require.NoError(t, err)
	assert.False(t, result.Deactivated)
	assert.Equal(t, []uuid.UUID{product.ID}, f.productRepo.deleted)
	assert.Empty(t, f.productRepo.deactivated)
}

func TestListProducts_Pagination(t *testing.T) {
	f := newProductFixture()
	var captured dto.ProductFilter
	f.productRepo.FindFunc = func(filter dto.ProductFilter) ([]model.Product, int64, error) {
		captured = filter
		return []model.Product{*stockProduct(1)}, 25, nil
	}

	list, err := f.service.List(dto.ProductFilter{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), list.Count)
	require.NotNil(t, list.Pagination.Next)
	assert.Equal(t, 3, list.Pagination.Next.Page)
	require.NotNil(t, list.Pagination.Prev)
	assert.Equal(t, 1, list.Pagination.Prev.Page)
	assert.Equal(t, 2, captured.Page)
}
