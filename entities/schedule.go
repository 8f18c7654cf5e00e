package entities

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

// Terminal reports whether no further lifecycle transitions are permitted.
func (s Status) Terminal() bool { return s == StatusCompleted || s == StatusSkipped }

const (
	ExecutedManual    = "manual"
	ExecutedAutomatic = "automatic"
)

// ExecutionDetails records what actually happened once a schedule leaves
// pending. ActualAmount is independent of RecommendedAmount.
type ExecutionDetails struct {
	ActualAmount *float64   `json:"actual_amount,omitempty"`
	ExecutedBy   string     `json:"executed_by,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

type WateringSchedule struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	LocationID        uint             `gorm:"index" json:"location_id"`
	Date              time.Time        `json:"date"`
	RecommendedAmount float64          `json:"recommended_amount"` // liters, fixed at creation
	Status            Status           `gorm:"index" json:"status"` // pending|completed|skipped
	Notes             string           `json:"notes"`
	Execution         ExecutionDetails `gorm:"embedded;embeddedPrefix:exec_" json:"execution,omitzero"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Clone returns a shallow copy. Execution pointer fields still alias the
// original, which is fine because transitions replace Execution wholesale.
func (s *WateringSchedule) Clone() *WateringSchedule {
	cp := *s
	return &cp
}
