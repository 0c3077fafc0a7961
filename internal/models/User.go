package models

import "gorm.io/gorm"

// Roles a user can hold. Exactly one per account; admin is its own
// role value rather than a superuser flag.
const (
	RolePassenger = "passenger"
	RoleStaff     = "staff"
	RoleAdmin     = "admin"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     string `json:"role"` // "passenger", "staff", "admin"

	// Only passengers carry a profile
	Profile *PassengerProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`
}

// ValidRole reports whether role is one of the recognised role values.
func ValidRole(role string) bool {
	switch role {
	case RolePassenger, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
