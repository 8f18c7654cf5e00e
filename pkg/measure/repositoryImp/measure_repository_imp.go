package repositoryImp

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"irricore/entities"
	"irricore/pkg/measure/repository"
)

type measureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MeasureRepository { return &measureRepo{db} }

func (r *measureRepo) Create(m *entities.SoilMoistureReading) error {
	if err := r.db.Create(m).Error; err != nil {
		return &entities.PersistenceError{Op: "create reading", Err: err}
	}
	return nil
}

func (r *measureRepo) Recent(locationID uint, days int) ([]entities.SoilMoistureReading, error) {
	var out []entities.SoilMoistureReading
	cut := time.Now().AddDate(0, 0, -days)
	err := r.db.Where("location_id = ? AND date >= ?", locationID, cut).
		Order("date ASC").Find(&out).Error
	if err != nil {
		return nil, &entities.PersistenceError{Op: "list readings", Err: err}
	}
	return out, nil
}

func (r *measureRepo) Latest(locationID uint) (*entities.SoilMoistureReading, error) {
	var out entities.SoilMoistureReading
	err := r.db.Where("location_id = ?", locationID).
		Order("date DESC").First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no readings for location %d: %w", locationID, entities.ErrNotFound)
		}
		return nil, &entities.PersistenceError{Op: "latest reading", Err: err}
	}
	return &out, nil
}
