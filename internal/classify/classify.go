// Package classify buckets defect types into maintenance categories
// for the admin dashboard.
package classify

import "strings"

// Category names in priority order.
const (
	CategoryElectrical = "Electrical"
	CategoryMechanical = "Mechanical"
	CategoryCivil      = "Civil"
	CategoryOthers     = "Others"
)

// categories is evaluated in order; a defect type is counted in the
// first category whose keyword list matches, so a type containing both
// "ac" and "window" lands in Electrical, not Civil.
var categories = []struct {
	Name     string
	Keywords []string
}{
	{CategoryElectrical, []string{"light", "fan", "charging", "ac"}},
	{CategoryMechanical, []string{"seat", "door", "chain", "handrest"}},
	{CategoryCivil, []string{"toilet", "mirror", "smell", "leak", "coach", "window"}},
}

// Classify returns the category for a defect type string via
// case-insensitive substring match, first matching category wins.
func Classify(defectType string) string {
	lower := strings.ToLower(defectType)
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name
			}
		}
	}
	return CategoryOthers
}

// CategoryCount is one dashboard row: a category and how many defects
// fell into it.
type CategoryCount struct {
	DefectType string `json:"defect_type"`
	Count      int    `json:"count"`
}

// Aggregate computes the dashboard numbers from the current defect
// set. Others is derived as total minus the matched categories, so the
// identity total == electrical+mechanical+civil+others always holds.
type Aggregate struct {
	Total        int             `json:"total_defects"`
	Categories   []CategoryCount `json:"defect_type_counts"`
	StatusCounts map[string]int  `json:"status_counts"`
	PendingCount int             `json:"pending_count"`
}

// Defect is the projection the aggregator needs: the type string and
// the literal status value.
type Defect struct {
	DefectType string
	Status     string
}

// Count recomputes all aggregates from defects. Pure function of its
// input; callers re-invoke it on every dashboard load.
func Count(defects []Defect) Aggregate {
	var electrical, mechanical, civil int
	statusCounts := make(map[string]int)
	pending := 0

	for _, d := range defects {
		switch Classify(d.DefectType) {
		case CategoryElectrical:
			electrical++
		case CategoryMechanical:
			mechanical++
		case CategoryCivil:
			civil++
		}
		statusCounts[d.Status]++
		if d.Status == "Pending" {
			pending++
		}
	}

	total := len(defects)
	others := total - (electrical + mechanical + civil)

	return Aggregate{
		Total: total,
		Categories: []CategoryCount{
			{CategoryElectrical, electrical},
			{CategoryMechanical, mechanical},
			{CategoryCivil, civil},
			{CategoryOthers, others},
		},
		StatusCounts: statusCounts,
		PendingCount: pending,
	}
}
