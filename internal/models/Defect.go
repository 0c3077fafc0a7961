package models

import (
	"time"

	"gorm.io/gorm"
)

// Defect type choices offered on the report form. "Other" carries a
// free-text description alongside.
var DefectTypes = []string{"Light", "Fan", "Window", "Seat", "Other"}

// Defect statuses. Status is the only field that changes after a
// defect is created.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

// StatusTransitions lists which statuses a defect may move to from a
// given status. Every transition is currently allowed; narrowing the
// workflow only needs this table changed.
var StatusTransitions = map[string][]string{
	StatusPending:    {StatusPending, StatusInProgress, StatusResolved, StatusRejected},
	StatusInProgress: {StatusPending, StatusInProgress, StatusResolved, StatusRejected},
	StatusResolved:   {StatusPending, StatusInProgress, StatusResolved, StatusRejected},
	StatusRejected:   {StatusPending, StatusInProgress, StatusResolved, StatusRejected},
}

type Defect struct {
	gorm.Model
	CoachID      uint      `json:"coach_id" gorm:"index"`
	Coach        Coach     `gorm:"foreignKey:CoachID" json:"coach,omitempty"`
	DefectType   string    `json:"defect_type"`
	CustomText   string    `json:"custom_text,omitempty"` // blank unless DefectType == "Other"
	ImagePath    string    `json:"image_path,omitempty"`
	ReportedByID uint      `json:"reported_by_id" gorm:"index"`
	ReportedBy   User      `gorm:"foreignKey:ReportedByID" json:"reported_by,omitempty"`
	ReportedAt   time.Time `json:"reported_at"`
	Status       string    `json:"status" gorm:"default:Pending"`
}

// ValidDefectType reports whether t is one of the offered defect types.
func ValidDefectType(t string) bool {
	for _, dt := range DefectTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is an enumerated defect status.
func ValidStatus(s string) bool {
	_, ok := StatusTransitions[s]
	return ok
}

// CanTransition reports whether a defect may move from one status to
// another under the transition table.
func CanTransition(from, to string) bool {
	for _, next := range StatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
