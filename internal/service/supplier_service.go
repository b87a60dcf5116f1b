package service

import (
	"errors"

	"go-stocktrack/internal/apperr"
	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	Create(req dto.CreateSupplierRequest) (*model.Supplier, error)
	List() ([]model.Supplier, error)
	Get(id uuid.UUID) (*model.Supplier, error)
	Update(id uuid.UUID, req dto.UpdateSupplierRequest) (*model.Supplier, error)
	Delete(id uuid.UUID) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(req dto.CreateSupplierRequest) (*model.Supplier, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("supplier")
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req dto.UpdateSupplierRequest) (*model.Supplier, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	supplier, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.PaymentTerms != nil {
		supplier.PaymentTerms = *req.PaymentTerms
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(id)
}
