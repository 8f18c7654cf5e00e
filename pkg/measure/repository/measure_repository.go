package repository

import "irricore/entities"

type MeasureRepository interface {
	Create(r *entities.SoilMoistureReading) error
	Recent(locationID uint, days int) ([]entities.SoilMoistureReading, error)
	Latest(locationID uint) (*entities.SoilMoistureReading, error)
}
