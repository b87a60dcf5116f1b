package dto

type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	ContactPerson string `json:"contact_person,omitempty" validate:"max=100"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"max=30"`
	Address       string `json:"address,omitempty" validate:"max=500"`
	PaymentTerms  string `json:"payment_terms,omitempty" validate:"max=255"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=100"`
	ContactPerson *string `json:"contact_person,omitempty" validate:"omitempty,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=500"`
	PaymentTerms  *string `json:"payment_terms,omitempty" validate:"omitempty,max=255"`
}
