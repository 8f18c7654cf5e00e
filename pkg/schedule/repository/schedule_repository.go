package repository

import (
	"time"

	"irricore/entities"
)

// ScheduleRepository is the persistence service the store talks to. Range
// bounds are inclusive calendar dates.
type ScheduleRepository interface {
	Create(s *entities.WateringSchedule) error
	Get(id uint) (*entities.WateringSchedule, error)
	InRange(locationID *uint, start, end time.Time) ([]*entities.WateringSchedule, error)
	ForToday(locationID *uint, today time.Time) ([]*entities.WateringSchedule, error)
	// UpdateStatus applies a terminal transition. The pending precondition is
	// enforced at the database so concurrent writers cannot double-transition
	// a row; returns the persisted schedule.
	UpdateStatus(id uint, status entities.Status, exec entities.ExecutionDetails) (*entities.WateringSchedule, error)
	Delete(id uint) error
}
