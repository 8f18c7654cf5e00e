// Package lifecycle owns the watering-task state machine: pending is the
// only state transitions may leave, completed and skipped are terminal.
// Transitions mutate the schedule in memory only; persisting the result is
// the caller's concern.
package lifecycle

import (
	"time"

	"irricore/entities"
)

type Completion struct {
	ActualAmount *float64
	Notes        string
}

// Complete moves a pending schedule to completed and attaches execution
// details. The schedule is untouched on any error.
func Complete(s *entities.WateringSchedule, c Completion) error {
	if s.Status != entities.StatusPending {
		return &entities.StateConflictError{ID: s.ID, From: s.Status, To: entities.StatusCompleted}
	}
	if c.ActualAmount != nil && *c.ActualAmount < 0 {
		return &entities.ValidationError{Msg: "actual amount must be >= 0"}
	}
	now := time.Now()
	s.Status = entities.StatusCompleted
	s.Execution = entities.ExecutionDetails{
		ActualAmount: c.ActualAmount,
		ExecutedBy:   entities.ExecutedManual,
		Notes:        c.Notes,
		EndTime:      &now,
	}
	return nil
}

// Skip moves a pending schedule to skipped, recording the reason as the
// execution note.
func Skip(s *entities.WateringSchedule, reason entities.SkipReason) error {
	if s.Status != entities.StatusPending {
		return &entities.StateConflictError{ID: s.ID, From: s.Status, To: entities.StatusSkipped}
	}
	if err := reason.Validate(); err != nil {
		return err
	}
	s.Status = entities.StatusSkipped
	s.Execution = entities.ExecutionDetails{
		ExecutedBy: entities.ExecutedManual,
		Notes:      reason.Note(),
	}
	return nil
}
