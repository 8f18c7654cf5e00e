package repositoryImp

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"irricore/entities"
	"irricore/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) Create(s *entities.WateringSchedule) error {
	if err := r.db.Create(s).Error; err != nil {
		return &entities.PersistenceError{Op: "create schedule", Err: err}
	}
	return nil
}

func (r *schedRepo) Get(id uint) (*entities.WateringSchedule, error) {
	var out entities.WateringSchedule
	if err := r.db.First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d: %w", id, entities.ErrNotFound)
		}
		return nil, &entities.PersistenceError{Op: "get schedule", Err: err}
	}
	return &out, nil
}

func (r *schedRepo) InRange(locationID *uint, start, end time.Time) ([]*entities.WateringSchedule, error) {
	var out []*entities.WateringSchedule
	q := r.db.Where("date >= ? AND date < ?", dayStart(start), dayStart(end).AddDate(0, 0, 1))
	if locationID != nil {
		q = q.Where("location_id = ?", *locationID)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, &entities.PersistenceError{Op: "list schedules", Err: err}
	}
	return out, nil
}

func (r *schedRepo) ForToday(locationID *uint, today time.Time) ([]*entities.WateringSchedule, error) {
	return r.InRange(locationID, today, today)
}

func (r *schedRepo) UpdateStatus(id uint, status entities.Status, exec entities.ExecutionDetails) (*entities.WateringSchedule, error) {
	upd := map[string]any{
		"status":           status,
		"exec_executed_by": exec.ExecutedBy,
		"exec_notes":       exec.Notes,
	}
	if exec.ActualAmount != nil {
		upd["exec_actual_amount"] = *exec.ActualAmount
	}
	if exec.StartTime != nil {
		upd["exec_start_time"] = *exec.StartTime
	}
	if exec.EndTime != nil {
		upd["exec_end_time"] = *exec.EndTime
	}
	res := r.db.Model(&entities.WateringSchedule{}).
		Where("id = ? AND status = ?", id, entities.StatusPending).
		Updates(upd)
	if res.Error != nil {
		return nil, &entities.PersistenceError{Op: "update schedule status", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		// either the row is gone or it already left pending
		cur, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		return nil, &entities.StateConflictError{ID: id, From: cur.Status, To: status}
	}
	return r.Get(id)
}

func (r *schedRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.WateringSchedule{}, id)
	if res.Error != nil {
		return &entities.PersistenceError{Op: "delete schedule", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("schedule %d: %w", id, entities.ErrNotFound)
	}
	return nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
