package model

// Role represents an access level in the system.
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Role codes as constants
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// DefaultRoles defines the roles seeded at boot.
var DefaultRoles = []Role{
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Full access including user management and deletions",
	},
	{
		Code:        RoleManager,
		Name:        "Manager",
		Description: "Catalog management and stock movements",
	},
	{
		Code:        RoleStaff,
		Name:        "Staff",
		Description: "Read access and stock movements",
	},
}
