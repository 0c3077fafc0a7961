package models

import (
	"fmt"

	"gorm.io/gorm"
)

// CoachTypes maps the stored coach type code to its display name.
var CoachTypes = map[string]string{
	"SL":  "Sleeper",
	"3A":  "AC 3-Tier",
	"2A":  "AC 2-Tier",
	"1A":  "AC First Class",
	"GEN": "General",
	"CC":  "Chair Car",
	"EC":  "Executive Chair Car",
}

// Coach is a single carriage of a train. The coach number is unique
// only within its train, not globally.
type Coach struct {
	gorm.Model
	CoachNumber string `json:"coach_number" gorm:"index:idx_train_coach,unique;not null" binding:"required"`
	CoachType   string `json:"coach_type" gorm:"default:SL"`
	TrainID     uint   `json:"train_id" gorm:"index:idx_train_coach,unique"`
	Train       Train  `gorm:"foreignKey:TrainID" json:"train,omitempty"`

	Defects []Defect `gorm:"foreignKey:CoachID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"defects,omitempty"`
}

// Label renders the coach with its type and train, the way report
// summaries refer to it. Expects Train to be preloaded.
func (co Coach) Label() string {
	return fmt.Sprintf("%s (%s) - %s - %s",
		co.CoachNumber, CoachTypes[co.CoachType], co.Train.Number, co.Train.Name)
}

// ValidCoachType reports whether code is an enumerated coach type.
func ValidCoachType(code string) bool {
	_, ok := CoachTypes[code]
	return ok
}
