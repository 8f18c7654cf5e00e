// Package aggregate computes summary statistics over a schedule collection.
package aggregate

import "irricore/entities"

type Stats struct {
	PendingCount   int     `json:"pending_count"`
	CompletedCount int     `json:"completed_count"`
	SkippedCount   int     `json:"skipped_count"`
	TotalWaterUsed float64 `json:"total_water_used"` // liters
}

// Sum folds the collection in one pass. Order-independent; a completed
// schedule without a recorded actual amount contributes 0 liters.
func Sum(schedules []*entities.WateringSchedule) Stats {
	var st Stats
	for _, s := range schedules {
		switch s.Status {
		case entities.StatusPending:
			st.PendingCount++
		case entities.StatusCompleted:
			st.CompletedCount++
			if s.Execution.ActualAmount != nil {
				st.TotalWaterUsed += *s.Execution.ActualAmount
			}
		case entities.StatusSkipped:
			st.SkippedCount++
		}
	}
	return st
}
