package model

// Supplier is a simple reference entity products can point at.
type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	ContactPerson string `gorm:"type:varchar(100)" json:"contact_person,omitempty"`
	Email         string `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address       string `gorm:"type:varchar(500)" json:"address,omitempty"`
	PaymentTerms  string `gorm:"type:varchar(255)" json:"payment_terms,omitempty"`
}
