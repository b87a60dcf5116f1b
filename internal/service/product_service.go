package service

import (
	"errors"
	"fmt"
	"time"

	"go-stocktrack/internal/apperr"
	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/repository"
	"go-stocktrack/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductList is a paginated product listing.
type ProductList struct {
	Count      int64           `json:"count"`
	Pagination dto.Pagination  `json:"pagination"`
	Data       []model.Product `json:"data"`
}

// DeleteResult reports how a product delete was applied.
type DeleteResult struct {
	Deactivated bool `json:"deactivated"`
}

type ProductService interface {
	Create(req dto.CreateProductRequest, actorID uuid.UUID) (*model.Product, error)
	List(filter dto.ProductFilter) (*ProductList, error)
	Get(id uuid.UUID) (*model.Product, error)
	LowStock() ([]model.Product, error)
	Update(id uuid.UUID, req dto.UpdateProductRequest, actorID uuid.UUID) (*model.Product, error)
	Delete(id uuid.UUID) (*DeleteResult, error)
}

type productService struct {
	db          TxManager
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	events      StockPublisher
	logger      *zap.Logger
}

func NewProductService(
	db TxManager,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	events StockPublisher,
	logger *zap.Logger,
) ProductService {
	return &productService{
		db:          db,
		productRepo: productRepo,
		txRepo:      txRepo,
		events:      events,
		logger:      logger,
	}
}

// Create inserts the product and, when it starts with stock, seeds the
// ledger with an initial restock entry so the log accounts for every unit
// from day one.
func (s *productService) Create(req dto.CreateProductRequest, actorID uuid.UUID) (*model.Product, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	if req.SKU != "" {
		existing, err := s.productRepo.FindBySKU(req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, &apperr.DuplicateSKUError{SKU: req.SKU}
		}
	}

	product := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		CategoryID:    req.CategoryID,
		Quantity:      req.Quantity,
		UnitOfMeasure: req.UnitOfMeasure,
		UnitPrice:     req.UnitPrice,
		Currency:      req.Currency,
		CostPrice:     req.CostPrice,
		MinStockLevel: req.MinStockLevel,
		Location:      req.Location,
		SupplierID:    req.SupplierID,
		ImageURL:      req.ImageURL,
		Barcode:       req.Barcode,
		IsActive:      true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.Quantity > 0 {
			now := time.Now()
			product.LastRestockDate = &now
		}
		if err := s.productRepo.Create(tx, product); err != nil {
			return err
		}

		if req.Quantity > 0 {
			seed := &model.Transaction{
				Type:          model.TxRestock,
				ProductID:     product.ID,
				Quantity:      req.Quantity,
				UnitPrice:     product.RestockPrice(),
				Date:          time.Now(),
				Notes:         "Initial stock",
				PerformedByID: &actorID,
			}
			seed.Total = seed.ComputeTotal()
			if err := s.txRepo.Create(tx, seed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
		zap.Int("quantity", product.Quantity),
	)

	s.events.Publish(ws.StockEvent{
		Type:   "stock_update",
		Action: "product_created",
		Product: map[string]interface{}{
			"id":       product.ID,
			"sku":      product.SKU,
			"name":     product.Name,
			"quantity": product.Quantity,
		},
		Message: fmt.Sprintf("product %q created", product.Name),
	})

	return product, nil
}

func (s *productService) List(filter dto.ProductFilter) (*ProductList, error) {
	filter.Normalize()
	products, total, err := s.productRepo.Find(filter)
	if err != nil {
		return nil, err
	}
	return &ProductList{
		Count:      total,
		Pagination: dto.BuildPagination(filter.Page, filter.Limit, total),
		Data:       products,
	}, nil
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("product")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) LowStock() ([]model.Product, error) {
	return s.productRepo.FindLowStock()
}

// Update edits catalog fields. A quantity change does not bypass the ledger:
// the difference is recorded as an implicit adjustment entry so transactions
// remain the complete movement log.
func (s *productService) Update(id uuid.UUID, req dto.UpdateProductRequest, actorID uuid.UUID) (*model.Product, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	var product *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		product, err = s.productRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFoundError("product")
			}
			return err
		}

		if req.SKU != nil && *req.SKU != product.SKU {
			existing, err := s.productRepo.FindBySKU(*req.SKU)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if existing != nil && existing.ID != product.ID {
				return &apperr.DuplicateSKUError{SKU: *req.SKU}
			}
			product.SKU = *req.SKU
		}

		applyProductEdits(product, req)

		if req.Quantity != nil && *req.Quantity != product.Quantity {
			delta := *req.Quantity - product.Quantity
			adjustment := &model.Transaction{
				Type:          model.TxAdjustment,
				ProductID:     product.ID,
				Quantity:      delta,
				UnitPrice:     product.UnitPrice,
				Date:          time.Now(),
				Notes:         "Quantity edit",
				PerformedByID: &actorID,
			}
			adjustment.Total = adjustment.ComputeTotal()
			if err := s.txRepo.Create(tx, adjustment); err != nil {
				return err
			}
			product.Quantity = *req.Quantity
		}

		return s.productRepo.Update(tx, product)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.String("product_id", product.ID.String()))

	s.events.Publish(ws.StockEvent{
		Type:   "stock_update",
		Action: "product_updated",
		Product: map[string]interface{}{
			"id":       product.ID,
			"sku":      product.SKU,
			"name":     product.Name,
			"quantity": product.Quantity,
		},
		Message: fmt.Sprintf("product %q updated", product.Name),
	})

	return product, nil
}

// applyProductEdits copies the non-nil catalog fields from the request.
// Quantity and SKU are handled separately by Update.
func applyProductEdits(product *model.Product, req dto.UpdateProductRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.UnitOfMeasure != nil {
		product.UnitOfMeasure = *req.UnitOfMeasure
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.Currency != nil {
		product.Currency = *req.Currency
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.MinStockLevel != nil {
		product.MinStockLevel = *req.MinStockLevel
	}
	if req.Location != nil {
		product.Location = *req.Location
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
}

// Delete removes a product without ledger history, and deactivates one that
// has history so its transactions keep a valid reference.
func (s *productService) Delete(id uuid.UUID) (*DeleteResult, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("product")
		}
		return nil, err
	}

	count, err := s.txRepo.CountByProduct(product.ID)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		if err := s.productRepo.Deactivate(product.ID); err != nil {
			return nil, err
		}
		s.logger.Info("product deactivated",
			zap.String("product_id", product.ID.String()),
			zap.Int64("ledger_entries", count),
		)
		return &DeleteResult{Deactivated: true}, nil
	}

	if err := s.productRepo.Delete(product.ID); err != nil {
		return nil, err
	}
	s.logger.Info("product deleted", zap.String("product_id", product.ID.String()))
	return &DeleteResult{Deactivated: false}, nil
}
