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

type CategoryService interface {
	Create(req dto.CreateCategoryRequest) (*model.Category, error)
	List() ([]model.Category, error)
	Get(id uuid.UUID) (*model.Category, error)
	Update(id uuid.UUID, req dto.UpdateCategoryRequest) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(req dto.CreateCategoryRequest) (*model.Category, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &apperr.ConflictError{Message: "category with this name already exists"}
	}

	if req.ParentCategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.ParentCategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFoundError("parent category")
			}
			return nil, err
		}
	}

	category := &model.Category{
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) Get(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("category")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uuid.UUID, req dto.UpdateCategoryRequest) (*model.Category, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.categoryRepo.FindByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, &apperr.ConflictError{Message: "category with this name already exists"}
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentCategoryID != nil {
		if *req.ParentCategoryID == category.ID {
			return nil, apperr.NewValidationError("category cannot be its own parent")
		}
		category.ParentCategoryID = req.ParentCategoryID
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still has child categories.
func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	children, err := s.categoryRepo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return &apperr.ConflictError{
			Message: "cannot delete category with child categories; reassign or delete them first",
		}
	}

	return s.categoryRepo.Delete(id)
}
