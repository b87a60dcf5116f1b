package model

import "github.com/google/uuid"

// Category groups products. Categories form an optional tree through
// ParentCategoryID; a category with children cannot be deleted.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required,max=50"`
	Description string `gorm:"type:varchar(500)" json:"description,omitempty" validate:"max=500"`

	ParentCategoryID *uuid.UUID `gorm:"type:uuid;index" json:"parent_category_id,omitempty"`
	ParentCategory   *Category  `gorm:"foreignKey:ParentCategoryID" json:"parent_category,omitempty" validate:"-"`
}
