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

// LedgerService is the single sanctioned path for stock movements. Every
// movement is recorded as an immutable transaction and reflected on the
// product's quantity inside one database transaction, with the product row
// locked so concurrent movements serialize.
type LedgerService interface {
	Apply(req dto.CreateTransactionRequest, actorID uuid.UUID) (*model.Transaction, error)
	List() ([]model.Transaction, error)
	Get(id uuid.UUID) (*model.Transaction, error)
	ListByProduct(productID uuid.UUID) ([]model.Transaction, error)
}

type ledgerService struct {
	db          TxManager
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	events      StockPublisher
	logger      *zap.Logger
}

func NewLedgerService(
	db TxManager,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	events StockPublisher,
	logger *zap.Logger,
) LedgerService {
	return &ledgerService{
		db:          db,
		productRepo: productRepo,
		txRepo:      txRepo,
		events:      events,
		logger:      logger,
	}
}

// Apply validates the movement, records it and adjusts the product's stock.
//
// The direction is resolved from the movement type, never supplied by the
// caller: restock, adjustment and return add stock; sale and transfer remove
// it. The monetary total is always derived from quantity and unit price.
func (s *ledgerService) Apply(req dto.CreateTransactionRequest, actorID uuid.UUID) (*model.Transaction, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	txType := model.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, &apperr.InvalidTransactionTypeError{Type: req.Type}
	}

	var (
		entry   *model.Transaction
		product *model.Product
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		product, err = s.productRepo.FindByIDForUpdate(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFoundError("product")
			}
			return err
		}

		delta := txType.SignedQuantity(req.Quantity)
		if delta < 0 && product.Quantity+delta < 0 {
			return &apperr.InsufficientStockError{
				Available: product.Quantity,
				Requested: -delta,
			}
		}

		unitPrice := resolveUnitPrice(txType, req.UnitPrice, product)

		now := time.Now()
		entry = &model.Transaction{
			Type:          txType,
			ProductID:     product.ID,
			Quantity:      delta,
			UnitPrice:     unitPrice,
			Date:          now,
			Notes:         req.Notes,
			PerformedByID: &actorID,
		}
		entry.Total = entry.ComputeTotal()

		if err := s.txRepo.Create(tx, entry); err != nil {
			return err
		}

		var restockedAt *time.Time
		if txType == model.TxRestock {
			restockedAt = &now
		}
		newQuantity := product.Quantity + delta
		if err := s.productRepo.ApplyStockDelta(tx, product.ID, newQuantity, restockedAt); err != nil {
			return err
		}

		product.Quantity = newQuantity
		if restockedAt != nil {
			product.LastRestockDate = restockedAt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock movement applied",
		zap.String("transaction_id", entry.ID.String()),
		zap.String("type", string(entry.Type)),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", entry.Quantity),
		zap.Int("new_stock", product.Quantity),
	)

	s.events.Publish(ws.StockEvent{
		Type:   "stock_update",
		Action: "transaction_created",
		Transaction: map[string]interface{}{
			"id":         entry.ID,
			"type":       entry.Type,
			"quantity":   entry.Quantity,
			"product_id": product.ID,
			"new_stock":  product.Quantity,
		},
		Message: fmt.Sprintf("%s of %d units of %q", entry.Type, absInt(entry.Quantity), product.Name),
	})

	return entry, nil
}

// resolveUnitPrice picks the movement price: the caller's price when given,
// otherwise the product's cost price for restocks and its selling price for
// everything else.
func resolveUnitPrice(txType model.TransactionType, given *float64, product *model.Product) float64 {
	if given != nil {
		return *given
	}
	if txType == model.TxRestock {
		return product.RestockPrice()
	}
	return product.UnitPrice
}

func (s *ledgerService) List() ([]model.Transaction, error) {
	return s.txRepo.FindAll()
}

func (s *ledgerService) Get(id uuid.UUID) (*model.Transaction, error) {
	entry, err := s.txRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("transaction")
		}
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) ListByProduct(productID uuid.UUID) ([]model.Transaction, error) {
	return s.txRepo.FindByProduct(productID)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
