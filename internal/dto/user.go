package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"max=20"`
	RoleCode    string `json:"role_code" validate:"required,oneof=ADMIN MANAGER STAFF"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8"`
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	RoleCode    *string `json:"role_code,omitempty" validate:"omitempty,oneof=ADMIN MANAGER STAFF"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
