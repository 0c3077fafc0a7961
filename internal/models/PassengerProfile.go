package models

import "gorm.io/gorm"

// Gender choices for a passenger profile.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// PassengerProfile is the 1:1 extension of a passenger User.
type PassengerProfile struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex"`
	Gender string `json:"gender"`
}

// ValidGender reports whether g is an enumerated gender value.
func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
