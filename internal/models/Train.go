package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Train owns a set of coaches. Deleting a train cascades to its
// coaches and their defects.
type Train struct {
	gorm.Model
	Number string `json:"number" gorm:"uniqueIndex;not null" binding:"required"`
	Name   string `json:"name" binding:"required"`

	Coaches []Coach `gorm:"foreignKey:TrainID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"coaches,omitempty"`
}

// Label renders the train the way notification mails refer to it.
func (t Train) Label() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Number)
}
