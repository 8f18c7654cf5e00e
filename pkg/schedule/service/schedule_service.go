package service

import (
	"time"

	"irricore/entities"
	"irricore/pkg/aggregate"
	"irricore/pkg/window"
)

type CreateRequest struct {
	LocationID    uint
	Sample        entities.SoilMoistureSample
	ScheduledDate *time.Time // defaults to now
	Notes         string
}

// ScheduleService is the consumer-facing surface of the schedule store: it
// owns the active time window and the cached collection behind it.
type ScheduleService interface {
	SetWindow(p window.Period, custom *window.Range) error
	Window() (window.Period, window.Range)
	ActiveSchedules() []*entities.WateringSchedule
	Stats() aggregate.Stats
	Bucket(day string) []*entities.WateringSchedule
	Create(req CreateRequest) (*entities.WateringSchedule, error)
	Complete(id uint, actualAmount *float64, notes string) error
	Skip(id uint, reason entities.SkipReason) error
	Delete(id uint) error
}
